/*
Package flags contains custom CLI flag values and parsers shared by
commands.
*/
package flags

import (
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// ParseAddress parses a script hash given either as an LE hex string
// (optionally 0x-prefixed) or as an address with the given version byte.
func ParseAddress(s string, version byte) (util.Uint160, error) {
	hexLen := 2 * util.Uint160Size
	if t := strings.TrimPrefix(s, "0x"); len(t) == hexLen && len(s) <= hexLen+2 {
		return util.Uint160DecodeStringLE(t)
	}
	return address.StringToUint160WithPrefix(s, version)
}
