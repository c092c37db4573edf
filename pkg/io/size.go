package io

// countingWriter only counts the bytes written into it.
type countingWriter int

func (c *countingWriter) Write(p []byte) (int, error) {
	*c += countingWriter(len(p))
	return len(p), nil
}

// GetVarSize returns the number of bytes needed to store the given value:
// a var-uint for integers, a length-prefixed string or byte slice, or the
// encoded size of a Serializable.
func GetVarSize(value any) int {
	switch v := value.(type) {
	case int:
		return getVarIntSize(uint64(v))
	case uint64:
		return getVarIntSize(v)
	case string:
		return getVarIntSize(uint64(len(v))) + len(v)
	case []byte:
		return getVarIntSize(uint64(len(v))) + len(v)
	case encodable:
		var c countingWriter
		v.EncodeBinary(NewBinWriterFromIO(&c))
		return int(c)
	default:
		panic("unable to calculate GetVarSize")
	}
}

// GetSize returns the size of a Serializable array with a var-uint length
// prefix.
func GetSize[T any, PT interface {
	*T
	encodable
}](arr []T) int {
	var c countingWriter
	WriteArray[T, PT](NewBinWriterFromIO(&c), arr)
	return int(c)
}

func getVarIntSize(value uint64) int {
	switch {
	case value < 0xFD:
		return 1
	case value <= 0xFFFF:
		return 3
	case value <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}
