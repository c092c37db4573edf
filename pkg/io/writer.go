package io

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// ErrDrained is returned on an attempt to use an already drained write buffer.
var ErrDrained = errors.New("buffer already drained")

// BinWriter writes Neo binary encoding into an io.Writer. The first error
// is kept in Err, all subsequent writes are no-ops then, so it's enough to
// check Err once after encoding the whole structure.
type BinWriter struct {
	w       io.Writer
	Err     error
	scratch [9]byte
}

// NewBinWriterFromIO makes a BinWriter from io.Writer.
func NewBinWriterFromIO(iow io.Writer) *BinWriter {
	return &BinWriter{w: iow}
}

// BufBinWriter is a BinWriter writing into its own buffer, the result is
// available via Bytes.
type BufBinWriter struct {
	*BinWriter
	buf bytes.Buffer
}

// NewBufBinWriter makes a BufBinWriter with an empty buffer.
func NewBufBinWriter() *BufBinWriter {
	b := new(BufBinWriter)
	b.BinWriter = NewBinWriterFromIO(&b.buf)
	return b
}

// Len returns the number of bytes written so far.
func (bw *BufBinWriter) Len() int {
	return bw.buf.Len()
}

// Bytes returns the buffer contents (nil if there was an error). Further
// writes fail with ErrDrained until Reset.
func (bw *BufBinWriter) Bytes() []byte {
	if bw.Err != nil {
		return nil
	}
	bw.Err = ErrDrained
	return bw.buf.Bytes()
}

// Reset clears the buffer and the error. The slice returned by Bytes shares
// memory with the buffer, so it must be copied if needed after Reset.
func (bw *BufBinWriter) Reset() {
	bw.Err = nil
	bw.buf.Reset()
}

// WriteBytes writes b as is, without length prefix.
func (w *BinWriter) WriteBytes(b []byte) {
	if w.Err != nil {
		return
	}
	_, w.Err = w.w.Write(b)
}

// WriteB writes a single byte.
func (w *BinWriter) WriteB(u8 byte) {
	w.scratch[0] = u8
	w.WriteBytes(w.scratch[:1])
}

// WriteBool writes b as a 0 or 1 byte.
func (w *BinWriter) WriteBool(b bool) {
	if b {
		w.WriteB(1)
	} else {
		w.WriteB(0)
	}
}

// WriteU16LE writes a little-endian uint16.
func (w *BinWriter) WriteU16LE(u16 uint16) {
	binary.LittleEndian.PutUint16(w.scratch[:], u16)
	w.WriteBytes(w.scratch[:2])
}

// WriteU32LE writes a little-endian uint32.
func (w *BinWriter) WriteU32LE(u32 uint32) {
	binary.LittleEndian.PutUint32(w.scratch[:], u32)
	w.WriteBytes(w.scratch[:4])
}

// WriteU64LE writes a little-endian uint64.
func (w *BinWriter) WriteU64LE(u64 uint64) {
	binary.LittleEndian.PutUint64(w.scratch[:], u64)
	w.WriteBytes(w.scratch[:8])
}

// WriteVarUint writes val in the variable-length form: values below 0xfd take
// one byte, larger ones are prefixed with 0xfd, 0xfe or 0xff followed by 2, 4
// or 8 bytes.
func (w *BinWriter) WriteVarUint(val uint64) {
	var n int
	switch {
	case val < 0xfd:
		w.scratch[0] = byte(val)
		n = 1
	case val <= 0xffff:
		w.scratch[0] = 0xfd
		binary.LittleEndian.PutUint16(w.scratch[1:], uint16(val))
		n = 3
	case val <= 0xffffffff:
		w.scratch[0] = 0xfe
		binary.LittleEndian.PutUint32(w.scratch[1:], uint32(val))
		n = 5
	default:
		w.scratch[0] = 0xff
		binary.LittleEndian.PutUint64(w.scratch[1:], val)
		n = 9
	}
	w.WriteBytes(w.scratch[:n])
}

// WriteVarBytes writes b prefixed with its length.
func (w *BinWriter) WriteVarBytes(b []byte) {
	w.WriteVarUint(uint64(len(b)))
	w.WriteBytes(b)
}

// WriteString writes s prefixed with its length.
func (w *BinWriter) WriteString(s string) {
	w.WriteVarUint(uint64(len(s)))
	if w.Err != nil {
		return
	}
	_, w.Err = io.WriteString(w.w, s)
}

// WriteArray writes arr prefixed with its length, nil and empty slices are
// encoded the same way.
func WriteArray[T any, PT interface {
	*T
	encodable
}](w *BinWriter, arr []T) {
	w.WriteVarUint(uint64(len(arr)))
	for i := 0; i < len(arr) && w.Err == nil; i++ {
		PT(&arr[i]).EncodeBinary(w)
	}
}
