package flags

import (
	"testing"

	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	h := util.Uint160{0xde, 0xad, 0xbe, 0xef}

	for name, in := range map[string]string{
		"address": address.Uint160ToString(h),
		"LE":      h.StringLE(),
		"LE + 0x": "0x" + h.StringLE(),
	} {
		t.Run(name, func(t *testing.T) {
			res, err := ParseAddress(in, address.NEO3Prefix)
			require.NoError(t, err)
			require.Equal(t, h, res)
		})
	}

	for _, in := range []string{
		"",
		"not an address",
		"0x" + h.StringLE()[2:],
		"zz" + h.StringLE()[2:],
	} {
		_, err := ParseAddress(in, address.NEO3Prefix)
		require.Error(t, err, in)
	}
}

func TestParseAddressVersion(t *testing.T) {
	const version = 0x17
	h := util.Uint160{1, 2, 3}

	res, err := ParseAddress(address.Uint160ToStringWithPrefix(h, version), version)
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = ParseAddress(address.Uint160ToString(h), version)
	require.ErrorIs(t, err, address.ErrInvalidAddress)

	// Hashes don't depend on the version.
	res, err = ParseAddress(h.StringLE(), version)
	require.NoError(t, err)
	require.Equal(t, h, res)
}
