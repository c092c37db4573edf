/*
Package slice contains byte slice helpers.
*/
package slice

// CopyReverse returns a reversed copy of b, b itself is left untouched.
func CopyReverse(b []byte) []byte {
	dst := make([]byte, len(b))
	for i, j := 0, len(b)-1; j >= 0; i, j = i+1, j-1 {
		dst[i] = b[j]
	}
	return dst
}

// Reverse reverses b in place.
func Reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Clean zeroes b, it's used to wipe key material.
func Clean(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Copy returns a copy of b, nil stays nil.
func Copy(b []byte) []byte {
	if b == nil {
		return nil
	}
	dst := make([]byte, len(b))
	copy(dst, b)
	return dst
}
