package vm

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/opcode"
)

// MaxItemSize is the maximum size of data that can be pushed by a single
// instruction.
const MaxItemSize = 1024 * 1024

var errNoInstParam = errors.New("failed to read instruction parameter")

// ScriptReader walks over the instructions of a script without executing
// them.
type ScriptReader struct {
	prog   []byte
	ip     int
	nextip int
}

// NewScriptReader returns a reader positioned before the first instruction
// of b.
func NewScriptReader(b []byte) *ScriptReader {
	return &ScriptReader{prog: b}
}

// IP returns the offset of the current instruction.
func (r *ScriptReader) IP() int {
	return r.ip
}

// NextIP returns the offset of the next instruction.
func (r *ScriptReader) NextIP() int {
	return r.nextip
}

// fixedParamSize returns the operand size of instructions with fixed-size
// operands.
func fixedParamSize(op opcode.Opcode) (int, bool) {
	switch op {
	case opcode.JMP, opcode.JMPIF, opcode.JMPIFNOT, opcode.JMPEQ, opcode.JMPNE,
		opcode.JMPGT, opcode.JMPGE, opcode.JMPLT, opcode.JMPLE,
		opcode.CALL, opcode.ISTYPE, opcode.CONVERT, opcode.NEWARRAYT,
		opcode.ENDTRY,
		opcode.INITSSLOT, opcode.LDSFLD, opcode.STSFLD, opcode.LDARG, opcode.STARG, opcode.LDLOC, opcode.STLOC:
		return 1, true
	case opcode.INITSLOT, opcode.TRY, opcode.CALLT:
		return 2, true
	case opcode.JMPL, opcode.JMPIFL, opcode.JMPIFNOTL, opcode.JMPEQL, opcode.JMPNEL,
		opcode.JMPGTL, opcode.JMPGEL, opcode.JMPLTL, opcode.JMPLEL,
		opcode.ENDTRYL,
		opcode.CALLL, opcode.SYSCALL, opcode.PUSHA:
		return 4, true
	case opcode.TRYL:
		return 8, true
	}
	if op <= opcode.PUSHINT256 {
		return 1 << op, true
	}
	return 0, op != opcode.PUSHDATA1 && op != opcode.PUSHDATA2 && op != opcode.PUSHDATA4
}

// dataParamSize reads the length prefix of PUSHDATA* operand at pos and
// returns the prefix and data sizes.
func (r *ScriptReader) dataParamSize(op opcode.Opcode, pos int) (int, int, error) {
	prefix := 1 << (op - opcode.PUSHDATA1)
	if pos+prefix > len(r.prog) {
		return 0, 0, errNoInstParam
	}
	var n uint32
	switch prefix {
	case 1:
		n = uint32(r.prog[pos])
	case 2:
		n = uint32(binary.LittleEndian.Uint16(r.prog[pos:]))
	default:
		n = binary.LittleEndian.Uint32(r.prog[pos:])
		if n > MaxItemSize {
			return 0, 0, errors.New("parameter is too big")
		}
	}
	return prefix, int(n), nil
}

// Next moves to the next instruction and returns it with its operand (without
// length prefix for PUSHDATA*). The operand shares memory with the script.
// RET is returned past the end of the script. Once an error is returned,
// the reader stays at the end of the script.
func (r *ScriptReader) Next() (opcode.Opcode, []byte, error) {
	r.ip = r.nextip
	if r.ip >= len(r.prog) {
		return opcode.RET, nil, nil
	}

	op := opcode.Opcode(r.prog[r.ip])
	if !opcode.IsValid(op) {
		return op, nil, fmt.Errorf("incorrect opcode %s", op.String())
	}
	pos := r.ip + 1
	size, ok := fixedParamSize(op)
	if !ok {
		prefix, n, err := r.dataParamSize(op, pos)
		if err != nil {
			r.nextip = len(r.prog)
			return op, nil, err
		}
		pos += prefix
		size = n
	}
	if pos+size > len(r.prog) {
		r.nextip = len(r.prog)
		return op, nil, errNoInstParam
	}
	r.nextip = pos + size
	if size == 0 {
		return op, nil, nil
	}
	return op, r.prog[pos:r.nextip], nil
}
