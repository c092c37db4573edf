// Package vm contains helpers inspecting NeoVM scripts without executing them,
// like standard verification script parsers.
package vm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/R3E-Network/NeoRust-sub000/pkg/core/interop/interopnames"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/bigint"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/opcode"
)

// MaxMultisigKeys is the maximum number of keys allowed for a correct
// multisig contract.
const MaxMultisigKeys = 1024

// ErrInvalidScript is returned when a script is neither a single-signature
// nor a multi-signature verification script.
var ErrInvalidScript = errors.New("not a standard verification script")

var (
	verifyInteropID   = interopnames.ToID([]byte(interopnames.SystemCryptoCheckSig))
	multisigInteropID = interopnames.ToID([]byte(interopnames.SystemCryptoCheckMultisig))
)

func getNumOfThingsFromInstr(instr opcode.Opcode, param []byte) (int, bool) {
	var nthings int

	switch {
	case opcode.PUSH1 <= instr && instr <= opcode.PUSH16:
		nthings = int(instr-opcode.PUSH1) + 1
	case instr <= opcode.PUSHINT256:
		n := bigint.FromBytes(param)
		if !n.IsInt64() || n.Int64() > MaxMultisigKeys {
			return 0, false
		}
		nthings = int(n.Int64())
	default:
		return 0, false
	}
	if nthings < 1 || nthings > MaxMultisigKeys {
		return 0, false
	}
	return nthings, true
}

// IsMultiSigContract checks whether the passed script is a multi-signature
// contract.
func IsMultiSigContract(script []byte) bool {
	_, _, ok := ParseMultiSigContract(script)
	return ok
}

// ParseMultiSigContract returns the number of signatures and a list of public keys
// from the verification script of the contract.
func ParseMultiSigContract(script []byte) (int, [][]byte, bool) {
	var nsigs, nkeys int
	if len(script) < 42 {
		return nsigs, nil, false
	}

	sr := NewScriptReader(script)
	instr, param, err := sr.Next()
	if err != nil {
		return nsigs, nil, false
	}
	nsigs, ok := getNumOfThingsFromInstr(instr, param)
	if !ok {
		return nsigs, nil, false
	}
	var pubs [][]byte
	for {
		instr, param, err = sr.Next()
		if err != nil {
			return nsigs, nil, false
		}
		if instr != opcode.PUSHDATA1 {
			break
		}
		if len(param) != 33 {
			return nsigs, nil, false
		}
		pubs = append(pubs, param)
		nkeys++
		if nkeys > MaxMultisigKeys {
			return nsigs, nil, false
		}
	}
	if nkeys < nsigs {
		return nsigs, nil, false
	}
	nkeys2, ok := getNumOfThingsFromInstr(instr, param)
	if !ok {
		return nsigs, nil, false
	}
	if nkeys2 != nkeys {
		return nsigs, nil, false
	}
	instr, param, err = sr.Next()
	if err != nil || instr != opcode.SYSCALL || binary.LittleEndian.Uint32(param) != multisigInteropID {
		return nsigs, nil, false
	}
	if sr.NextIP() != len(script) {
		return nsigs, nil, false
	}
	return nsigs, pubs, true
}

// IsSignatureContract checks whether the passed script is a signature check
// contract.
func IsSignatureContract(script []byte) bool {
	_, ok := ParseSignatureContract(script)
	return ok
}

// ParseSignatureContract parses a simple signature contract and returns
// a public key.
func ParseSignatureContract(script []byte) ([]byte, bool) {
	if len(script) != 40 {
		return nil, false
	}

	sr := NewScriptReader(script)
	instr, param, err := sr.Next()
	if err != nil || instr != opcode.PUSHDATA1 || len(param) != 33 {
		return nil, false
	}
	pub := param
	instr, param, err = sr.Next()
	if err != nil || instr != opcode.SYSCALL || binary.LittleEndian.Uint32(param) != verifyInteropID {
		return nil, false
	}
	return pub, true
}

// IsStandardContract checks whether the passed script is a signature or
// multi-signature contract.
func IsStandardContract(script []byte) bool {
	return IsSignatureContract(script) || IsMultiSigContract(script)
}

// GetSigningThreshold returns the number of signatures needed to satisfy the
// given verification script: 1 for a single-signature script and m for an
// m-out-of-n multisig one.
func GetSigningThreshold(script []byte) (int, error) {
	if IsSignatureContract(script) {
		return 1, nil
	}
	if m, _, ok := ParseMultiSigContract(script); ok {
		return m, nil
	}
	return 0, ErrInvalidScript
}

// GetNrOfAccounts returns the number of keys in the given verification
// script: 1 for a single-signature script and n for an m-out-of-n multisig
// one.
func GetNrOfAccounts(script []byte) (int, error) {
	if IsSignatureContract(script) {
		return 1, nil
	}
	if _, pubs, ok := ParseMultiSigContract(script); ok {
		return len(pubs), nil
	}
	return 0, ErrInvalidScript
}

// GetIntFromInstr returns the integer pushed by the given instruction.
func GetIntFromInstr(instr opcode.Opcode, param []byte) (*big.Int, error) {
	switch {
	case instr == opcode.PUSHM1:
		return big.NewInt(-1), nil
	case opcode.PUSH0 <= instr && instr <= opcode.PUSH16:
		return big.NewInt(int64(instr - opcode.PUSH0)), nil
	case instr <= opcode.PUSHINT256:
		return bigint.FromBytes(param), nil
	default:
		return nil, fmt.Errorf("not an integer push: %s", instr)
	}
}

// ParsePushInteger parses a script consisting of a single integer push
// instruction and returns the integer.
func ParsePushInteger(script []byte) (*big.Int, error) {
	sr := NewScriptReader(script)
	instr, param, err := sr.Next()
	if err != nil {
		return nil, err
	}
	if sr.NextIP() != len(script) {
		return nil, errors.New("trailing instructions after integer push")
	}
	return GetIntFromInstr(instr, param)
}
