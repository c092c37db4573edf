package util_test

import (
	"encoding/hex"
	"encoding/json"
	"sort"
	"testing"

	"github.com/R3E-Network/NeoRust-sub000/internal/testserdes"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/stretchr/testify/require"
)

// NEO native contract hash in both forms.
const (
	neoHashLE = "ef4073a0f2b305a38ec4050e4d3d28bc40ea63f5"
	neoHashBE = "f563ea40bc283d4d0e05c48ea305b3f2a07340ef"
)

func TestUint160Strings(t *testing.T) {
	le, err := util.Uint160DecodeStringLE(neoHashLE)
	require.NoError(t, err)
	be, err := util.Uint160DecodeStringBE(neoHashBE)
	require.NoError(t, err)

	require.Equal(t, le, be)
	require.Equal(t, neoHashLE, le.StringLE())
	require.Equal(t, neoHashBE, le.StringBE())
	require.Equal(t, neoHashBE, le.String())
	require.Equal(t, le, le.Reverse().Reverse())
	require.Equal(t, neoHashLE, le.Reverse().StringBE())

	for _, bad := range []string{neoHashLE[2:], neoHashLE + "00", "zz" + neoHashLE[2:], ""} {
		_, err = util.Uint160DecodeStringLE(bad)
		require.Error(t, err, bad)
		_, err = util.Uint160DecodeStringBE(bad)
		require.Error(t, err, bad)
	}
}

func TestUint160Bytes(t *testing.T) {
	b, err := hex.DecodeString(neoHashBE)
	require.NoError(t, err)

	be, err := util.Uint160DecodeBytesBE(b)
	require.NoError(t, err)
	require.Equal(t, b, be.BytesBE())
	require.Equal(t, neoHashLE, hex.EncodeToString(be.BytesLE()))

	le, err := util.Uint160DecodeBytesLE(be.BytesLE())
	require.NoError(t, err)
	require.Equal(t, be, le)

	_, err = util.Uint160DecodeBytesBE(b[1:])
	require.Error(t, err)
	_, err = util.Uint160DecodeBytesLE(append(b, 0))
	require.Error(t, err)
}

func TestUint160JSON(t *testing.T) {
	h, err := util.Uint160DecodeStringLE(neoHashLE)
	require.NoError(t, err)

	data, err := json.Marshal(h)
	require.NoError(t, err)
	require.Equal(t, `"0x`+neoHashLE+`"`, string(data))
	testserdes.MarshalUnmarshalJSON(t, &h, new(util.Uint160))

	var u util.Uint160
	require.NoError(t, json.Unmarshal([]byte(`"`+neoHashLE+`"`), &u))
	require.Equal(t, h, u)

	require.Error(t, json.Unmarshal([]byte(`42`), &u))
	require.Error(t, json.Unmarshal([]byte(`"0x`+neoHashLE[2:]+`"`), &u))
}

func TestUint160Less(t *testing.T) {
	// Ordering is by the LE string.
	hashes := make([]util.Uint160, 0, 3)
	for _, s := range []string{
		"3d3b96ae1bcc5a585e075e3b81920210dec16302",
		"2d3b96ae1bcc5a585e075e3b81920210dec16303",
		"2d3b96ae1bcc5a585e075e3b81920210dec16302",
	} {
		h, err := util.Uint160DecodeStringLE(s)
		require.NoError(t, err)
		hashes = append(hashes, h)
	}
	require.False(t, hashes[0].Less(hashes[0]))
	require.False(t, hashes[0].Equals(hashes[1]))

	sort.Slice(hashes, func(i, j int) bool { return hashes[i].Less(hashes[j]) })
	require.Equal(t, "2d3b96ae1bcc5a585e075e3b81920210dec16302", hashes[0].StringLE())
	require.Equal(t, "2d3b96ae1bcc5a585e075e3b81920210dec16303", hashes[1].StringLE())
	require.Equal(t, "3d3b96ae1bcc5a585e075e3b81920210dec16302", hashes[2].StringLE())
}

func TestUint160Binary(t *testing.T) {
	h := util.Uint160{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
	testserdes.EncodeDecodeBinary(t, &h, new(util.Uint160))

	data, err := testserdes.EncodeBinary(&h)
	require.NoError(t, err)
	require.Equal(t, h.BytesBE(), data)
}
