package io

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxArraySize is the maximum size of an array which can be decoded.
// It is taken from https://github.com/neo-project/neo/blob/master/src/neo/IO/Helper.cs#L130
const MaxArraySize = 0x1000000

// ErrTrailingData is returned when there are unread bytes left after
// decoding a complete structure.
var ErrTrailingData = errors.New("unexpected trailing data")

// BinReader is a convenient wrapper around a byte buffer and err object.
// Used to simplify error handling when reading into a struct with many fields.
type BinReader struct {
	buf []byte
	pos int
	Err error
}

// NewBinReaderFromBuf makes a BinReader from a byte buffer.
func NewBinReaderFromBuf(b []byte) *BinReader {
	return &BinReader{buf: b}
}

// Len returns the number of unread bytes.
func (r *BinReader) Len() int {
	return len(r.buf) - r.pos
}

// ReadU64LE reads a little-endian encoded uint64 value from the buffer.
func (r *BinReader) ReadU64LE() uint64 {
	b := r.next(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadU32LE reads a little-endian encoded uint32 value from the buffer.
func (r *BinReader) ReadU32LE() uint32 {
	b := r.next(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadU16LE reads a little-endian encoded uint16 value from the buffer.
func (r *BinReader) ReadU16LE() uint16 {
	b := r.next(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// ReadB reads a byte from the buffer.
func (r *BinReader) ReadB() byte {
	b := r.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// ReadBool reads a boolean value encoded in a zero/non-zero byte from the
// buffer.
func (r *BinReader) ReadBool() bool {
	return r.ReadB() != 0
}

// ReadArray reads an array of elements prefixed with its length. The element
// count is limited by maxSize (MaxArraySize by default).
func ReadArray[T any, PT interface {
	*T
	decodable
}](r *BinReader, maxSize ...int) []T {
	ms := MaxArraySize
	if len(maxSize) != 0 {
		ms = maxSize[0]
	}
	lu := r.ReadVarUint()
	if r.Err != nil {
		return nil
	}
	if lu > uint64(ms) {
		r.Err = fmt.Errorf("array is too big (%d)", lu)
		return nil
	}
	arr := make([]T, int(lu))
	for i := range arr {
		PT(&arr[i]).DecodeBinary(r)
		if r.Err != nil {
			return nil
		}
	}
	return arr
}

// ReadVarUint reads a variable-length-encoded integer from the
// underlying reader.
func (r *BinReader) ReadVarUint() uint64 {
	if r.Err != nil {
		return 0
	}

	var b = r.ReadB()

	if b == 0xfd {
		return uint64(r.ReadU16LE())
	}
	if b == 0xfe {
		return uint64(r.ReadU32LE())
	}
	if b == 0xff {
		return r.ReadU64LE()
	}

	return uint64(b)
}

// ReadVarBytes reads the next set of bytes from the underlying reader.
// ReadVarUInt() is used to determine how large that slice is.
func (r *BinReader) ReadVarBytes(maxSize ...int) []byte {
	n := r.ReadVarUint()
	ms := MaxArraySize
	if len(maxSize) != 0 {
		ms = maxSize[0]
	}
	if r.Err != nil {
		return nil
	}
	if n > uint64(ms) {
		r.Err = fmt.Errorf("byte-slice is too big (%d)", n)
		return nil
	}
	b := make([]byte, n)
	r.ReadBytes(b)
	if r.Err != nil {
		return nil
	}
	return b
}

// ReadBytes copies a fixed-size buffer from the reader to the provided slice.
func (r *BinReader) ReadBytes(buf []byte) {
	b := r.next(len(buf))
	if b != nil {
		copy(buf, b)
	}
}

// ReadString calls ReadVarBytes and casts the results as a string.
func (r *BinReader) ReadString(maxSize ...int) string {
	b := r.ReadVarBytes(maxSize...)
	return string(b)
}

// CheckEOF sets ErrTrailingData if there are unread bytes left.
func (r *BinReader) CheckEOF() {
	if r.Err == nil && r.Len() != 0 {
		r.Err = ErrTrailingData
	}
}

func (r *BinReader) next(n int) []byte {
	if r.Err != nil {
		return nil
	}
	if r.Len() < n {
		if r.Len() == 0 {
			r.Err = io.EOF
		} else {
			r.Err = io.ErrUnexpectedEOF
		}
		r.pos = len(r.buf)
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}
