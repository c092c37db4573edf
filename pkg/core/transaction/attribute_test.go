package transaction

import (
	"encoding/json"
	"testing"

	"github.com/R3E-Network/NeoRust-sub000/internal/testserdes"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestAttribute_EncodeBinary(t *testing.T) {
	t.Run("HighPriority", func(t *testing.T) {
		attr := &Attribute{
			Type: HighPriority,
		}
		testserdes.EncodeDecodeBinary(t, attr, new(Attribute))
		data, err := testserdes.EncodeBinary(attr)
		require.NoError(t, err)
		require.Equal(t, []byte{byte(HighPriority)}, data)
	})
	t.Run("OracleResponse", func(t *testing.T) {
		attr := &Attribute{
			Type: OracleResponseT,
			Value: &OracleResponse{
				ID:     0x1122334455,
				Code:   Success,
				Result: []byte{1, 2, 3},
			},
		}
		testserdes.EncodeDecodeBinary(t, attr, new(Attribute))
		for _, code := range []OracleResponseCode{ProtocolNotSupported, ConsensusUnreachable,
			NotFound, Timeout, Forbidden, ResponseTooLarge, InsufficientFunds, ContentTypeNotSupported, Error} {
			attr = &Attribute{
				Type: OracleResponseT,
				Value: &OracleResponse{
					ID:     42,
					Code:   code,
					Result: []byte{},
				},
			}
			testserdes.EncodeDecodeBinary(t, attr, new(Attribute))
		}
	})
	t.Run("NotValidBefore", func(t *testing.T) {
		attr := &Attribute{
			Type: NotValidBeforeT,
			Value: &NotValidBefore{
				Height: 123,
			},
		}
		testserdes.EncodeDecodeBinary(t, attr, new(Attribute))
		data, err := testserdes.EncodeBinary(attr)
		require.NoError(t, err)
		require.Equal(t, []byte{byte(NotValidBeforeT), 123, 0, 0, 0}, data)
	})
	t.Run("Conflicts", func(t *testing.T) {
		attr := &Attribute{
			Type: ConflictsT,
			Value: &Conflicts{
				Hash: util.Uint256{1, 2, 3},
			},
		}
		testserdes.EncodeDecodeBinary(t, attr, new(Attribute))
		data, err := testserdes.EncodeBinary(attr)
		require.NoError(t, err)
		require.Equal(t, 1+util.Uint256Size, len(data))
	})
	t.Run("NotaryAssisted", func(t *testing.T) {
		attr := &Attribute{
			Type: NotaryAssistedT,
			Value: &NotaryAssisted{
				NKeys: 3,
			},
		}
		testserdes.EncodeDecodeBinary(t, attr, new(Attribute))
	})
	t.Run("no value", func(t *testing.T) {
		_, err := testserdes.EncodeBinary(&Attribute{Type: ConflictsT})
		require.Error(t, err)
	})
	t.Run("unknown type", func(t *testing.T) {
		_, err := testserdes.EncodeBinary(&Attribute{Type: 0x55})
		require.ErrorIs(t, err, ErrUnknownAttribute)
		require.ErrorIs(t, testserdes.DecodeBinary([]byte{0x55}, new(Attribute)), ErrUnknownAttribute)
	})
	t.Run("bad oracle response", func(t *testing.T) {
		attr := &Attribute{
			Type: OracleResponseT,
			Value: &OracleResponse{
				ID:     1,
				Code:   NotFound,
				Result: []byte{1},
			},
		}
		data, err := testserdes.EncodeBinary(attr)
		require.NoError(t, err)
		require.ErrorIs(t, testserdes.DecodeBinary(data, new(Attribute)), ErrInvalidResult)

		data[1+8] = 0x42 // Code byte.
		require.ErrorIs(t, testserdes.DecodeBinary(data, new(Attribute)), ErrInvalidResponseCode)
	})
}

func TestAttribute_MarshalJSON(t *testing.T) {
	t.Run("HighPriority", func(t *testing.T) {
		attr := &Attribute{Type: HighPriority}
		data, err := json.Marshal(attr)
		require.NoError(t, err)
		require.JSONEq(t, `{"type":"HighPriority"}`, string(data))

		actual := new(Attribute)
		require.NoError(t, json.Unmarshal(data, actual))
		require.Equal(t, attr, actual)
	})
	t.Run("OracleResponse", func(t *testing.T) {
		res := []byte{1, 2, 3}
		attr := &Attribute{
			Type: OracleResponseT,
			Value: &OracleResponse{
				ID:     123,
				Code:   Success,
				Result: res,
			},
		}
		data, err := json.Marshal(attr)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"type":"OracleResponse",
			"id": 123,
			"code": "Success",
			"result": "AQID"}`, string(data))

		actual := new(Attribute)
		require.NoError(t, json.Unmarshal(data, actual))
		require.Equal(t, attr, actual)
		testserdes.MarshalUnmarshalJSON(t, attr, new(Attribute))
	})
	t.Run("NotValidBefore", func(t *testing.T) {
		attr := &Attribute{
			Type:  NotValidBeforeT,
			Value: &NotValidBefore{Height: 123},
		}
		data, err := json.Marshal(attr)
		require.NoError(t, err)
		require.JSONEq(t, `{"type":"NotValidBefore","height":123}`, string(data))
		testserdes.MarshalUnmarshalJSON(t, attr, new(Attribute))
	})
	t.Run("Conflicts", func(t *testing.T) {
		attr := &Attribute{
			Type:  ConflictsT,
			Value: &Conflicts{Hash: util.Uint256{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
		}
		testserdes.MarshalUnmarshalJSON(t, attr, new(Attribute))
	})
	t.Run("NotaryAssisted", func(t *testing.T) {
		attr := &Attribute{
			Type:  NotaryAssistedT,
			Value: &NotaryAssisted{NKeys: 3},
		}
		data, err := json.Marshal(attr)
		require.NoError(t, err)
		require.JSONEq(t, `{"type":"NotaryAssisted","nkeys":3}`, string(data))
		testserdes.MarshalUnmarshalJSON(t, attr, new(Attribute))
	})
	t.Run("bad", func(t *testing.T) {
		require.Error(t, json.Unmarshal([]byte(`{"type":"Unknown"}`), new(Attribute)))
		require.Error(t, json.Unmarshal([]byte(`{"type":"OracleResponse","code":"Oops"}`), new(Attribute)))
		require.Error(t, json.Unmarshal([]byte(`[]`), new(Attribute)))
	})
}

func TestAttributeCopy(t *testing.T) {
	attr := &Attribute{
		Type:  OracleResponseT,
		Value: &OracleResponse{ID: 1, Code: Success, Result: []byte{1, 2}},
	}
	cp := attr.Copy()
	require.Equal(t, attr, cp)
	attr.Value.(*OracleResponse).Result[0] = 42
	require.NotEqual(t, attr, cp)
}
