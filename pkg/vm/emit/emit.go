/*
Package emit implements low-level NeoVM instruction emitters writing into
io.BinWriter. Errors are reported via the writer's Err field.
*/
package emit

import (
	"encoding/binary"
	"errors"

	"github.com/R3E-Network/NeoRust-sub000/pkg/core/interop/interopnames"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract/callflag"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/opcode"
)

// Instruction emits op followed by its operand.
func Instruction(w *io.BinWriter, op opcode.Opcode, operand []byte) {
	w.WriteB(byte(op))
	w.WriteBytes(operand)
}

// Opcodes emits instructions without operands.
func Opcodes(w *io.BinWriter, ops ...opcode.Opcode) {
	for _, op := range ops {
		w.WriteB(byte(op))
	}
}

// Syscall emits SYSCALL of the interop with the given name.
func Syscall(w *io.BinWriter, api string) {
	if w.Err != nil {
		return
	}
	if api == "" {
		w.Err = errors.New("empty syscall name")
		return
	}
	Instruction(w, opcode.SYSCALL, binary.LittleEndian.AppendUint32(nil, interopnames.ToID([]byte(api))))
}

// AppCall emits a System.Contract.Call of the contract method with args
// packed into an array.
func AppCall(w *io.BinWriter, scriptHash util.Uint160, operation string, f callflag.CallFlag, args ...any) {
	Array(w, args...)
	AppCallNoArgs(w, scriptHash, operation, f)
}

// AppCallNoArgs emits a System.Contract.Call expecting the arguments array
// on the stack already.
func AppCallNoArgs(w *io.BinWriter, scriptHash util.Uint160, operation string, f callflag.CallFlag) {
	Int(w, int64(f))
	String(w, operation)
	Bytes(w, scriptHash.BytesBE())
	Syscall(w, interopnames.SystemContractCall)
}

// CheckSig emits the standard signature verification of the key.
func CheckSig(w *io.BinWriter, key []byte) {
	Bytes(w, key)
	Syscall(w, interopnames.SystemCryptoCheckSig)
}
