// Package base58 wraps generic base58 encoding with checksum handling used
// for addresses and WIF keys.
package base58

import (
	"bytes"
	"errors"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/hash"
	"github.com/mr-tron/base58"
)

// Errors returned from CheckDecode.
var (
	ErrMissingChecksum = errors.New("invalid base-58 check string: missing checksum")
	ErrInvalidChecksum = errors.New("invalid base-58 check string: invalid checksum")
)

// CheckDecode implements base58-encoded string decoding with a hash-based
// checksum check.
func CheckDecode(s string) (b []byte, err error) {
	b, err = base58.Decode(s)
	if err != nil {
		return nil, err
	}

	if len(b) < 5 {
		return nil, ErrMissingChecksum
	}

	if !bytes.Equal(hash.Checksum(b[:len(b)-4]), b[len(b)-4:]) {
		return nil, ErrInvalidChecksum
	}
	b = b[:len(b)-4]

	return b, nil
}

// CheckEncode encodes the given byte slice into a base58 string with a
// hash-based checksum appended to it.
func CheckEncode(b []byte) string {
	b = append(b[:len(b):len(b)], hash.Checksum(b)...)

	return base58.Encode(b)
}
