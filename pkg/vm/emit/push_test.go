package emit

import (
	"encoding/binary"
	"math"
	"math/big"
	"testing"

	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/bigint"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/opcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitInt(t *testing.T) {
	testCases := []struct {
		num    int64
		result []byte
	}{
		{-1, []byte{byte(opcode.PUSHM1)}},
		{0, []byte{byte(opcode.PUSH0)}},
		{1, []byte{byte(opcode.PUSH1)}},
		{16, []byte{byte(opcode.PUSH16)}},
		{17, []byte{byte(opcode.PUSHINT8), 17}},
		{-2, []byte{byte(opcode.PUSHINT8), 0xfe}},
		{127, []byte{byte(opcode.PUSHINT8), 0x7f}},
		{128, []byte{byte(opcode.PUSHINT16), 0x80, 0x00}},
		{-128, []byte{byte(opcode.PUSHINT8), 0x80}},
		{-129, []byte{byte(opcode.PUSHINT16), 0x7f, 0xff}},
		{32767, []byte{byte(opcode.PUSHINT16), 0xff, 0x7f}},
		{32768, []byte{byte(opcode.PUSHINT32), 0x00, 0x80, 0x00, 0x00}},
		{-32769, []byte{byte(opcode.PUSHINT32), 0xff, 0x7f, 0xff, 0xff}},
		{1 << 31, []byte{byte(opcode.PUSHINT64), 0, 0, 0, 0x80, 0, 0, 0, 0}},
		{math.MaxInt64, []byte{byte(opcode.PUSHINT64), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
		{math.MinInt64, []byte{byte(opcode.PUSHINT64), 0, 0, 0, 0, 0, 0, 0, 0x80}},
	}
	for _, tc := range testCases {
		buf := io.NewBufBinWriter()
		Int(buf.BinWriter, tc.num)
		require.NoError(t, buf.Err)
		assert.Equal(t, tc.result, buf.Bytes(), tc.num)
	}
}

func TestEmitBigInt(t *testing.T) {
	t.Run("biggest positive number", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		bi := big.NewInt(1)
		bi.Lsh(bi, 255)
		bi.Sub(bi, big.NewInt(1))

		BigInt(buf.BinWriter, bi)
		require.NoError(t, buf.Err)

		expected := make([]byte, 33)
		expected[0] = byte(opcode.PUSHINT256)
		for i := 1; i < 32; i++ {
			expected[i] = 0xFF
		}
		expected[32] = 0x7F
		require.Equal(t, expected, buf.Bytes())
	})
	t.Run("smallest negative number", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		bi := big.NewInt(-1)
		bi.Lsh(bi, 255)

		BigInt(buf.BinWriter, bi)
		require.NoError(t, buf.Err)

		expected := make([]byte, 33)
		expected[0] = byte(opcode.PUSHINT256)
		expected[32] = 0x80
		require.Equal(t, expected, buf.Bytes())
	})
	t.Run("65-bit number", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		bi := new(big.Int).Lsh(big.NewInt(1), 64)

		BigInt(buf.BinWriter, bi)
		require.NoError(t, buf.Err)

		expected := make([]byte, 17)
		expected[0] = byte(opcode.PUSHINT128)
		expected[9] = 1
		require.Equal(t, expected, buf.Bytes())
	})
	t.Run("too big", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		bi := big.NewInt(1)
		bi.Lsh(bi, 255)

		BigInt(buf.BinWriter, bi)
		require.ErrorIs(t, buf.Err, ErrIntegerTooBig)
	})
	t.Run("small", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		BigInt(buf.BinWriter, big.NewInt(5))
		require.Equal(t, []byte{byte(opcode.PUSH5)}, buf.Bytes())
	})
}

func TestEmitIntRoundTrip(t *testing.T) {
	for _, n := range []int64{17, 127, 128, 32767, 32768, -129, math.MaxInt64, math.MinInt64} {
		buf := io.NewBufBinWriter()
		Int(buf.BinWriter, n)
		b := buf.Bytes()
		require.Equal(t, 1<<(b[0]-byte(opcode.PUSHINT8)), len(b)-1)
		require.Equal(t, n, bigint.FromBytes(b[1:]).Int64())
	}
}

func TestEmitBool(t *testing.T) {
	buf := io.NewBufBinWriter()
	Bool(buf.BinWriter, true)
	Bool(buf.BinWriter, false)
	require.Equal(t, []byte{byte(opcode.PUSHT), byte(opcode.PUSHF)}, buf.Bytes())
}

func TestEmitBytes(t *testing.T) {
	t.Run("PUSHDATA1", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		str := []byte("hello")
		Bytes(buf.BinWriter, str)
		result := buf.Bytes()
		assert.EqualValues(t, opcode.PUSHDATA1, result[0])
		assert.EqualValues(t, 5, result[1])
		assert.Equal(t, str, result[2:])
	})
	t.Run("empty", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		Bytes(buf.BinWriter, nil)
		assert.Equal(t, []byte{byte(opcode.PUSHDATA1), 0}, buf.Bytes())
	})
	t.Run("PUSHDATA1 edge", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		Bytes(buf.BinWriter, make([]byte, 0xff))
		result := buf.Bytes()
		assert.EqualValues(t, opcode.PUSHDATA1, result[0])
		assert.EqualValues(t, 0xff, result[1])
		assert.Len(t, result, 2+0xff)
	})
	t.Run("PUSHDATA2", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		str := make([]byte, 0x100)
		Bytes(buf.BinWriter, str)
		result := buf.Bytes()
		assert.EqualValues(t, opcode.PUSHDATA2, result[0])
		assert.EqualValues(t, 0x100, binary.LittleEndian.Uint16(result[1:3]))
		assert.Equal(t, str, result[3:])
	})
	t.Run("PUSHDATA4", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		str := make([]byte, 0x10000)
		Bytes(buf.BinWriter, str)
		result := buf.Bytes()
		assert.EqualValues(t, opcode.PUSHDATA4, result[0])
		assert.EqualValues(t, 0x10000, binary.LittleEndian.Uint32(result[1:5]))
		assert.Equal(t, str, result[5:])
	})
}

func TestEmitArray(t *testing.T) {
	t.Run("good", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		var p160 util.Uint160
		var p256 util.Uint256
		u160 := util.Uint160{1, 2, 3}
		u256 := util.Uint256{1, 2, 3}
		veryBig := new(big.Int).SetUint64(math.MaxUint64)
		veryBig.Add(veryBig, big.NewInt(1))
		Array(buf.BinWriter, p160, p256, &u160, &u256, u160, u256, big.NewInt(0), veryBig,
			[]any{int64(1), int64(2)}, nil, int64(1), "str", true, []byte{0xCA, 0xFE})
		require.Error(t, buf.Err, "pointers are not supported")

		buf.Reset()
		Array(buf.BinWriter, u160, u256, big.NewInt(0), veryBig,
			[]any{int64(1), int64(2)}, nil, int64(1), "str", true, []byte{0xCA, 0xFE})
		require.NoError(t, buf.Err)

		res := buf.Bytes()
		assert.EqualValues(t, opcode.PUSHDATA1, res[0])
		assert.EqualValues(t, 2, res[1])
		assert.EqualValues(t, []byte{0xCA, 0xFE}, res[2:4])
		assert.EqualValues(t, opcode.PUSHT, res[4])
		assert.EqualValues(t, opcode.PUSHDATA1, res[5])
		assert.EqualValues(t, 3, res[6])
		assert.EqualValues(t, []byte("str"), res[7:10])
		assert.EqualValues(t, opcode.PUSH1, res[10])
		assert.EqualValues(t, opcode.PUSHNULL, res[11])
		assert.EqualValues(t, opcode.PUSH2, res[12])
		assert.EqualValues(t, opcode.PUSH1, res[13])
		assert.EqualValues(t, opcode.PUSH2, res[14])
		assert.EqualValues(t, opcode.PACK, res[15])
		assert.EqualValues(t, opcode.PUSHINT128, res[16])
		assert.EqualValues(t, veryBig, bigint.FromBytes(res[17:33]))
		assert.EqualValues(t, opcode.PUSH0, res[33])
		assert.EqualValues(t, opcode.PUSHDATA1, res[34])
		assert.EqualValues(t, 32, res[35])
		assert.EqualValues(t, u256.BytesBE(), res[36:68])
		assert.EqualValues(t, opcode.PUSHDATA1, res[68])
		assert.EqualValues(t, 20, res[69])
		assert.EqualValues(t, u160.BytesBE(), res[70:90])
		assert.EqualValues(t, opcode.PUSH10, res[90])
		assert.EqualValues(t, opcode.PACK, res[91])
		assert.Len(t, res, 92)
	})

	t.Run("empty", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		Array(buf.BinWriter)
		require.NoError(t, buf.Err)
		assert.Equal(t, []byte{byte(opcode.NEWARRAY0)}, buf.Bytes())
	})

	t.Run("invalid type", func(t *testing.T) {
		buf := io.NewBufBinWriter()
		Array(buf.BinWriter, struct{}{})
		require.Error(t, buf.Err)
	})
}

func TestEmitString(t *testing.T) {
	buf := io.NewBufBinWriter()
	str := "City Of Zion"
	String(buf.BinWriter, str)
	assert.Equal(t, buf.Len(), len(str)+2)
	assert.Equal(t, buf.Bytes()[2:], []byte(str))
}
