package io

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSerializable uint16

func (t *testSerializable) EncodeBinary(w *BinWriter) {
	w.WriteU16LE(uint16(*t))
}

func (t *testSerializable) DecodeBinary(r *BinReader) {
	*t = testSerializable(r.ReadU16LE())
}

func TestWriteU64LE(t *testing.T) {
	var (
		val     uint64 = 0xbadc0de15a11dead
		readval uint64
		bin     = []byte{0xad, 0xde, 0x11, 0x5a, 0xe1, 0x0d, 0xdc, 0xba}
	)
	bw := NewBufBinWriter()
	bw.WriteU64LE(val)
	assert.Nil(t, bw.Err)
	wrotebin := bw.Bytes()
	assert.Equal(t, wrotebin, bin)
	br := NewBinReaderFromBuf(bin)
	readval = br.ReadU64LE()
	assert.Nil(t, br.Err)
	assert.Equal(t, val, readval)
}

func TestWriteU32LE(t *testing.T) {
	var (
		val uint32 = 0xdeadbeef
		bin        = []byte{0xef, 0xbe, 0xad, 0xde}
	)
	bw := NewBufBinWriter()
	bw.WriteU32LE(val)
	require.NoError(t, bw.Err)
	assert.Equal(t, bin, bw.Bytes())
	br := NewBinReaderFromBuf(bin)
	assert.Equal(t, val, br.ReadU32LE())
	require.NoError(t, br.Err)
}

func TestWriteU16LE(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteU16LE(0xbabe)
	assert.Equal(t, []byte{0xbe, 0xba}, bw.Bytes())
	br := NewBinReaderFromBuf([]byte{0xbe, 0xba})
	assert.Equal(t, uint16(0xbabe), br.ReadU16LE())
}

func TestWriteBool(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteBool(true)
	bw.WriteBool(false)
	bin := bw.Bytes()
	assert.Equal(t, []byte{0x01, 0x00}, bin)
	br := NewBinReaderFromBuf(bin)
	assert.True(t, br.ReadBool())
	assert.False(t, br.ReadBool())
	require.NoError(t, br.Err)
}

func TestReadPastEnd(t *testing.T) {
	br := NewBinReaderFromBuf([]byte{1, 2})
	assert.Equal(t, uint32(0), br.ReadU32LE())
	assert.True(t, errors.Is(br.Err, io.ErrUnexpectedEOF))

	br = NewBinReaderFromBuf(nil)
	br.ReadB()
	assert.True(t, errors.Is(br.Err, io.EOF))
}

func TestBufBinWriter_Drained(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteB(1)
	_ = bw.Bytes()
	bw.WriteB(2)
	require.ErrorIs(t, bw.Err, ErrDrained)
	require.Nil(t, bw.Bytes())

	bw.Reset()
	bw.WriteB(3)
	require.Equal(t, []byte{3}, bw.Bytes())
}

func TestVarUint(t *testing.T) {
	for _, tc := range []struct {
		val uint64
		enc []byte
	}{
		{0, []byte{0}},
		{0xfc, []byte{0xfc}},
		{0xfd, []byte{0xfd, 0xfd, 0x00}},
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{0x100000000, []byte{0xff, 0, 0, 0, 0, 1, 0, 0, 0}},
	} {
		bw := NewBufBinWriter()
		bw.WriteVarUint(tc.val)
		require.Equal(t, tc.enc, bw.Bytes(), tc.val)
		require.Equal(t, len(tc.enc), GetVarSize(tc.val))

		br := NewBinReaderFromBuf(tc.enc)
		require.Equal(t, tc.val, br.ReadVarUint())
		require.NoError(t, br.Err)
	}
}

func TestVarBytes(t *testing.T) {
	buf := []byte{0xde, 0xad, 0xbe, 0xef}
	bw := NewBufBinWriter()
	bw.WriteVarBytes(buf)
	bw.WriteString("neo")
	bin := bw.Bytes()
	require.Equal(t, GetVarSize(buf)+GetVarSize("neo"), len(bin))

	br := NewBinReaderFromBuf(bin)
	require.Equal(t, buf, br.ReadVarBytes())
	require.Equal(t, "neo", br.ReadString())
	br.CheckEOF()
	require.NoError(t, br.Err)

	br = NewBinReaderFromBuf(bin)
	br.ReadVarBytes(3)
	require.Error(t, br.Err)
}

func TestArray(t *testing.T) {
	arr := []testSerializable{1, 2, 3}
	bw := NewBufBinWriter()
	WriteArray(bw.BinWriter, arr)
	bin := bw.Bytes()
	require.Equal(t, []byte{3, 1, 0, 2, 0, 3, 0}, bin)
	require.Equal(t, len(bin), GetSize(arr))

	br := NewBinReaderFromBuf(bin)
	res := ReadArray[testSerializable](br)
	require.NoError(t, br.Err)
	require.Equal(t, arr, res)

	br = NewBinReaderFromBuf(bin)
	require.Nil(t, ReadArray[testSerializable](br, 2))
	require.Error(t, br.Err)
}

func TestCheckEOF(t *testing.T) {
	br := NewBinReaderFromBuf([]byte{1, 2})
	br.ReadB()
	br.CheckEOF()
	require.ErrorIs(t, br.Err, ErrTrailingData)
}
