package smartcontract

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/io"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract/callflag"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/emit"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/opcode"
)

// ErrInvalidArgument is returned for script building requests that can't
// produce a valid script (empty method name, bad multisignature parameters
// and the like).
var ErrInvalidArgument = errors.New("invalid argument")

// Builder is used to create arbitrary scripts from the set of methods it provides.
// Each method emits some set of opcodes performing an action and (in most cases)
// returning a result. These chunks of code can be composed together to perform
// several actions in the same script (and therefore in the same transaction), but
// the end result (in terms of state changes and/or resulting items) of the script
// totally depends on what it contains and that's the responsibility of the Builder
// user. Builder is mostly used to create transaction scripts (also known as
// "entry scripts"), so the set of methods it exposes is tailored to this model
// of use.
//
// Builder is append-only, the first error encountered sticks and is returned
// from Script, subsequent calls do nothing.
type Builder struct {
	bw *io.BufBinWriter
}

// NewBuilder creates a new Builder instance.
func NewBuilder() *Builder {
	return &Builder{bw: io.NewBufBinWriter()}
}

// PushInteger emits the shortest push instruction for the given integer.
func (b *Builder) PushInteger(n int64) {
	emit.Int(b.bw.BinWriter, n)
}

// PushBigInt emits the shortest push instruction for the given integer, values
// not fitting into 256 bits make the script invalid.
func (b *Builder) PushBigInt(n *big.Int) {
	emit.BigInt(b.bw.BinWriter, n)
}

// PushData emits the given byte slice using the shortest PUSHDATA instruction.
func (b *Builder) PushData(data []byte) {
	emit.Bytes(b.bw.BinWriter, data)
}

// PushString emits the given string as a byte string.
func (b *Builder) PushString(s string) {
	emit.String(b.bw.BinWriter, s)
}

// PushBool emits PUSHT or PUSHF.
func (b *Builder) PushBool(v bool) {
	emit.Bool(b.bw.BinWriter, v)
}

// PushNull emits PUSHNULL.
func (b *Builder) PushNull() {
	emit.Opcodes(b.bw.BinWriter, opcode.PUSHNULL)
}

// PushArray emits an array of parameters. Items are pushed in reverse order
// and then packed, so the first parameter becomes the first element of the
// resulting array. Empty array is created with NEWARRAY0.
func (b *Builder) PushArray(params []Parameter) {
	if len(params) == 0 {
		emit.Opcodes(b.bw.BinWriter, opcode.NEWARRAY0)
		return
	}
	for i := len(params) - 1; i >= 0; i-- {
		b.PushParam(params[i])
	}
	emit.Int(b.bw.BinWriter, int64(len(params)))
	emit.Opcodes(b.bw.BinWriter, opcode.PACK)
}

// PushMap emits a map made of the given key-value pairs. Pairs are pushed in
// reverse order (value first, then key) and then packed with PACKMAP. Empty
// map is created with NEWMAP.
func (b *Builder) PushMap(pairs []ParameterPair) {
	if len(pairs) == 0 {
		emit.Opcodes(b.bw.BinWriter, opcode.NEWMAP)
		return
	}
	for i := len(pairs) - 1; i >= 0; i-- {
		b.PushParam(pairs[i].Value)
		b.PushParam(pairs[i].Key)
	}
	emit.Int(b.bw.BinWriter, int64(len(pairs)))
	emit.Opcodes(b.bw.BinWriter, opcode.PACKMAP)
}

// PushParam emits the given Parameter choosing the instruction by its type.
// Any and nil values are emitted as PUSHNULL.
func (b *Builder) PushParam(p Parameter) {
	if b.bw.Err != nil {
		return
	}
	if p.Value == nil {
		switch p.Type {
		case AnyType, InteropInterfaceType, ByteArrayType, StringType, SignatureType,
			PublicKeyType, Hash160Type, Hash256Type, ArrayType, MapType:
			b.PushNull()
		default:
			b.fail(fmt.Errorf("%w: nil %s parameter", ErrInvalidArgument, p.Type))
		}
		return
	}
	var ok bool
	switch p.Type {
	case BoolType:
		var v bool
		if v, ok = p.Value.(bool); ok {
			b.PushBool(v)
		}
	case IntegerType:
		var v *big.Int
		if v, ok = p.Value.(*big.Int); ok {
			b.PushBigInt(v)
		}
	case ByteArrayType, SignatureType:
		var v []byte
		if v, ok = p.Value.([]byte); ok {
			b.PushData(v)
		}
	case PublicKeyType:
		switch v := p.Value.(type) {
		case []byte:
			ok = true
			b.PushData(v)
		case *keys.PublicKey:
			ok = true
			b.PushData(v.Bytes())
		}
	case StringType:
		var v string
		if v, ok = p.Value.(string); ok {
			b.PushString(v)
		}
	case Hash160Type:
		var v util.Uint160
		if v, ok = p.Value.(util.Uint160); ok {
			b.PushData(v.BytesBE())
		}
	case Hash256Type:
		var v util.Uint256
		if v, ok = p.Value.(util.Uint256); ok {
			b.PushData(v.BytesBE())
		}
	case ArrayType:
		var v []Parameter
		if v, ok = p.Value.([]Parameter); ok {
			b.PushArray(v)
		}
	case MapType:
		var v []ParameterPair
		if v, ok = p.Value.([]ParameterPair); ok {
			b.PushMap(v)
		}
	default:
		b.fail(fmt.Errorf("%w: unsupported parameter type %s", ErrInvalidArgument, p.Type))
		return
	}
	if !ok {
		b.fail(fmt.Errorf("%w: invalid %s parameter value %T", ErrInvalidArgument, p.Type, p.Value))
	}
}

// Opcodes emits the given opcodes without any parameters.
func (b *Builder) Opcodes(ops ...opcode.Opcode) {
	emit.Opcodes(b.bw.BinWriter, ops...)
}

// Syscall emits SYSCALL instruction for the given interop name.
func (b *Builder) Syscall(name string) {
	emit.Syscall(b.bw.BinWriter, name)
}

// ContractCall emits System.Contract.Call of the given contract method with
// the given parameters packed into an array and the given call flags.
func (b *Builder) ContractCall(contract util.Uint160, method string, params []Parameter, f callflag.CallFlag) {
	if method == "" {
		b.fail(fmt.Errorf("%w: empty method name", ErrInvalidArgument))
		return
	}
	if !f.IsValid() {
		b.fail(fmt.Errorf("%w: call flags %d", ErrInvalidArgument, f))
		return
	}
	b.PushArray(params)
	emit.AppCallNoArgs(b.bw.BinWriter, contract, method, f)
}

// InvokeMethod is the most generic contract method invoker, the code it produces
// packs all of the arguments given into an array and calls some method of the
// contract. The correctness of this invocation (number and type of parameters) is
// out of scope of this method, as well as return value, if contract's method returns
// something this value just remains on the execution stack. Any calls emitted don't
// limit flags in any way (always use callflag.All).
func (b *Builder) InvokeMethod(contract util.Uint160, method string, params ...any) {
	if method == "" {
		b.fail(fmt.Errorf("%w: empty method name", ErrInvalidArgument))
		return
	}
	emit.AppCall(b.bw.BinWriter, contract, method, callflag.All, params...)
}

// Assert emits an ASSERT opcode that expects a Boolean value to be on the stack,
// checks if it's true and aborts the transaction if it's not.
func (b *Builder) Assert() {
	emit.Opcodes(b.bw.BinWriter, opcode.ASSERT)
}

// InvokeWithAssert emits an invocation of the method (see InvokeMethod) with
// an ASSERT after the invocation. The presumption is that the method called
// returns a Boolean value signalling the success or failure of the operation.
// This pattern is pretty common, NEP-11 or NEP-17 'transfer' methods do exactly
// that as well as NEO's 'vote'. The ASSERT then allow to simplify transaction
// status checking, if action is successful then transaction is successful as
// well, if it went wrong than whole transaction fails (ends with vmstate.FAULT).
func (b *Builder) InvokeWithAssert(contract util.Uint160, method string, params ...any) {
	b.InvokeMethod(contract, method, params...)
	b.Assert()
}

// Len returns the current length of the script. It's useful to perform script
// length checks (wrt transaction or invocation limits).
func (b *Builder) Len() int {
	return b.bw.Len()
}

// Script return current script, you can't use Builder after invoking this method
// unless you Reset it.
func (b *Builder) Script() ([]byte, error) {
	err := b.bw.Err
	if err != nil {
		return nil, err
	}
	return b.bw.Bytes(), nil
}

// Reset resets the Builder, allowing to reuse the same script buffer (but
// previous script will be overwritten there).
func (b *Builder) Reset() {
	b.bw.Reset()
}

func (b *Builder) fail(err error) {
	if b.bw.Err == nil {
		b.bw.Err = err
	}
}
