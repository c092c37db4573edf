package emit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/bigint"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/opcode"
)

// ErrIntegerTooBig is set for integers not fitting into 256 bits.
var ErrIntegerTooBig = errors.New("integer is too big for PUSHINT256")

// Bool emits PUSHT or PUSHF.
func Bool(w *io.BinWriter, ok bool) {
	op := opcode.PUSHF
	if ok {
		op = opcode.PUSHT
	}
	Opcodes(w, op)
}

// Int emits an integer with the shortest instruction.
func Int(w *io.BinWriter, i int64) {
	if !pushSmall(w, i) {
		BigInt(w, big.NewInt(i))
	}
}

// BigInt emits an integer with the shortest instruction, PUSHINT8 to
// PUSHINT256 operands are sign-extended to the instruction size.
func BigInt(w *io.BinWriter, n *big.Int) {
	if w.Err != nil {
		return
	}
	if n.IsInt64() && pushSmall(w, n.Int64()) {
		return
	}
	b := bigint.ToBytes(n)
	if len(b) > bigint.MaxBytesLen {
		w.Err = fmt.Errorf("%w: %d bytes", ErrIntegerTooBig, len(b))
		return
	}
	op, size := opcode.PUSHINT8, 1
	for size < len(b) {
		op++
		size *= 2
	}
	Instruction(w, op, signExtend(b, size))
}

// pushSmall emits PUSHM1..PUSH16 if i fits.
func pushSmall(w *io.BinWriter, i int64) bool {
	if i < -1 || i > 16 {
		return false
	}
	Opcodes(w, opcode.PUSHM1+opcode.Opcode(i+1))
	return true
}

// signExtend pads little-endian two's complement b to size bytes.
func signExtend(b []byte, size int) []byte {
	res := make([]byte, size)
	copy(res, b)
	if b[len(b)-1]&0x80 != 0 {
		for i := len(b); i < size; i++ {
			res[i] = 0xff
		}
	}
	return res
}

// String emits the UTF-8 bytes of s.
func String(w *io.BinWriter, s string) {
	Bytes(w, []byte(s))
}

// Bytes emits b with the shortest PUSHDATA instruction.
func Bytes(w *io.BinWriter, b []byte) {
	n := len(b)
	switch {
	case n <= math.MaxUint8:
		Instruction(w, opcode.PUSHDATA1, []byte{byte(n)})
	case n <= math.MaxUint16:
		Instruction(w, opcode.PUSHDATA2, binary.LittleEndian.AppendUint16(nil, uint16(n)))
	default:
		Instruction(w, opcode.PUSHDATA4, binary.LittleEndian.AppendUint32(nil, uint32(n)))
	}
	w.WriteBytes(b)
}

// Array emits the elements in reverse order followed by their number and
// PACK, so that the first element is the first item of the resulting array.
// Elements can be integers, *big.Int, bool, string, []byte, hashes, nil or
// []any for nested arrays.
func Array(w *io.BinWriter, es ...any) {
	if len(es) == 0 {
		Opcodes(w, opcode.NEWARRAY0)
		return
	}
	for i := len(es) - 1; i >= 0 && w.Err == nil; i-- {
		pushElement(w, es[i])
	}
	Int(w, int64(len(es)))
	Opcodes(w, opcode.PACK)
}

func pushElement(w *io.BinWriter, e any) {
	switch v := e.(type) {
	case nil:
		Opcodes(w, opcode.PUSHNULL)
	case bool:
		Bool(w, v)
	case int:
		Int(w, int64(v))
	case int64:
		Int(w, v)
	case uint32:
		Int(w, int64(v))
	case *big.Int:
		BigInt(w, v)
	case string:
		String(w, v)
	case []byte:
		Bytes(w, v)
	case util.Uint160:
		Bytes(w, v.BytesBE())
	case util.Uint256:
		Bytes(w, v.BytesBE())
	case []any:
		Array(w, v...)
	default:
		w.Err = fmt.Errorf("unsupported type: %T", e)
	}
}
