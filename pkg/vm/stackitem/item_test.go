package stackitem

import (
	"math/big"
	"testing"

	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/stretchr/testify/require"
)

var makeStackItemTestCases = []struct {
	input  any
	result Item
}{
	{
		input:  int64(3),
		result: (*BigInteger)(big.NewInt(3)),
	},
	{
		input:  int16(3),
		result: (*BigInteger)(big.NewInt(3)),
	},
	{
		input:  uint64(3),
		result: (*BigInteger)(big.NewInt(3)),
	},
	{
		input:  []byte{1, 2, 3, 4},
		result: NewByteArray([]byte{1, 2, 3, 4}),
	},
	{
		input:  "bla",
		result: NewByteArray([]byte("bla")),
	},
	{
		input:  false,
		result: Bool(false),
	},
	{
		input:  []any{1, "2"},
		result: NewArray([]Item{(*BigInteger)(big.NewInt(1)), NewByteArray([]byte("2"))}),
	},
	{
		input:  util.Uint160{1, 2, 3},
		result: NewByteArray(util.Uint160{1, 2, 3}.BytesBE()),
	},
	{
		input:  nil,
		result: Null{},
	},
}

func TestMakeStackItem(t *testing.T) {
	for _, testCase := range makeStackItemTestCases {
		require.Equal(t, testCase.result, Make(testCase.input))
	}
	require.Panics(t, func() { Make(map[int]int{}) })
}

func TestConversions(t *testing.T) {
	b, err := NewByteArray([]byte{0xff}).TryInteger()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(-1), b)

	bs, err := Make(255).TryBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0}, bs)

	ok, err := NewByteArray([]byte{0, 0}).TryBool()
	require.NoError(t, err)
	require.False(t, ok)

	_, err = NewByteArray(make([]byte, 33)).TryInteger()
	require.ErrorIs(t, err, ErrTooBig)

	for _, it := range []Item{Null{}, NewArray(nil), NewStruct(nil), NewMap(), NewInterop(nil), NewPointer(1), NewBuffer(nil)} {
		_, err := it.TryInteger()
		require.ErrorIs(t, err, ErrInvalidConversion, it.String())
	}
	for _, it := range []Item{Null{}, NewArray(nil), NewStruct(nil), NewMap(), NewInterop(nil), NewPointer(1)} {
		_, err := it.TryBytes()
		require.ErrorIs(t, err, ErrInvalidConversion, it.String())
	}
}

func TestToString(t *testing.T) {
	s, err := ToString(Make("neo"))
	require.NoError(t, err)
	require.Equal(t, "neo", s)

	_, err = ToString(Make([]byte{0xff}))
	require.ErrorIs(t, err, ErrInvalidValue)

	_, err = ToString(Null{})
	require.Error(t, err)
}

func TestMapAdd(t *testing.T) {
	m := NewMap()
	m.Add(Make("a"), Make(1))
	m.Add(Make(1), Make(2))
	m.Add(Make("a"), Make(3))
	require.Equal(t, 2, m.Len())
	require.Equal(t, []MapElement{
		{Key: Make("a"), Value: Make(3)},
		{Key: Make(1), Value: Make(2)},
	}, m.Value())
}

func TestCheckIntegerSize(t *testing.T) {
	limit := new(big.Int).Lsh(big.NewInt(1), 255)
	require.ErrorIs(t, CheckIntegerSize(limit), ErrTooBig)
	require.NoError(t, CheckIntegerSize(new(big.Int).Sub(limit, big.NewInt(1))))
	require.NoError(t, CheckIntegerSize(new(big.Int).Neg(limit)))
	require.Panics(t, func() { NewBigInteger(limit) })
}
