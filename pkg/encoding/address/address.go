/*
Package address implements conversion of script hashes to/from Neo addresses.
*/
package address

import (
	"errors"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/base58"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

const (
	// NEO2Prefix is the first byte of an address for NEO2.
	NEO2Prefix byte = 0x17
	// NEO3Prefix is the first byte of an address for NEO3.
	NEO3Prefix byte = 0x35
)

// ErrInvalidAddress is returned (wrapped) for any string that can't be
// decoded into a script hash.
var ErrInvalidAddress = errors.New("invalid address")

// Uint160ToString returns the "NEO address" from the given Uint160 using
// the N3 address version.
func Uint160ToString(u util.Uint160) string {
	return Uint160ToStringWithPrefix(u, NEO3Prefix)
}

// Uint160ToStringWithPrefix returns the address from the given Uint160 using
// the given address version byte.
func Uint160ToStringWithPrefix(u util.Uint160, prefix byte) string {
	b := append([]byte{prefix}, u.BytesBE()...)
	return base58.CheckEncode(b)
}

// StringToUint160 attempts to decode the given N3 address string into a
// Uint160.
func StringToUint160(s string) (util.Uint160, error) {
	return StringToUint160WithPrefix(s, NEO3Prefix)
}

// StringToUint160WithPrefix attempts to decode the given address string
// into a Uint160 checking its version byte to be equal to prefix.
func StringToUint160WithPrefix(s string, prefix byte) (u util.Uint160, err error) {
	b, err := base58.CheckDecode(s)
	if err != nil {
		return u, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(b) != util.Uint160Size+1 {
		return u, fmt.Errorf("%w: wrong length %d", ErrInvalidAddress, len(b))
	}
	if b[0] != prefix {
		return u, fmt.Errorf("%w: wrong version %d (expected %d)", ErrInvalidAddress, b[0], prefix)
	}
	return util.Uint160DecodeBytesBE(b[1:])
}
