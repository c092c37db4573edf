/*
Package unwrap converts test invocation results into Go values. Every
function accepts the (*result.Invoke, error) pair returned by invocation
calls, so they can wrap them directly:

	balance, err := unwrap.BigInt(c.InvokeFunction(gas, "balanceOf", params, nil))

An error is returned for failed calls, non-HALT states and results with
anything but a single stack item.
*/
package unwrap

import (
	"crypto/elliptic"
	"errors"
	"fmt"
	"math/big"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/neorpc/result"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/vm/stackitem"
)

var (
	// ErrFault is returned (wrapped) for invocations that ended in any state
	// other than HALT.
	ErrFault = errors.New("invocation failed")
	// ErrUnexpectedStack is returned (wrapped) when the result stack doesn't
	// contain exactly one item.
	ErrUnexpectedStack = errors.New("unexpected result stack")
)

// Item returns the only item of a successful (HALT) invocation.
func Item(r *result.Invoke, err error) (stackitem.Item, error) {
	if err != nil {
		return nil, err
	}
	if !r.IsHalt() {
		return nil, fmt.Errorf("%w: %s state, %s", ErrFault, r.State, r.FaultException)
	}
	if len(r.Stack) != 1 {
		return nil, fmt.Errorf("%w: %d items", ErrUnexpectedStack, len(r.Stack))
	}
	return r.Stack[0], nil
}

func itemAs[T any](r *result.Invoke, err error, conv func(stackitem.Item) (T, error)) (T, error) {
	itm, err := Item(r, err)
	if err != nil {
		var zero T
		return zero, err
	}
	return conv(itm)
}

// BigInt returns the integer result.
func BigInt(r *result.Invoke, err error) (*big.Int, error) {
	return itemAs(r, err, stackitem.Item.TryInteger)
}

// Int64 returns the integer result that must fit into int64.
func Int64(r *result.Invoke, err error) (int64, error) {
	i, err := BigInt(r, err)
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, errors.New("int64 overflow")
	}
	return i.Int64(), nil
}

// Bool returns the boolean result.
func Bool(r *result.Invoke, err error) (bool, error) {
	return itemAs(r, err, stackitem.Item.TryBool)
}

// Bytes returns the byte string result.
func Bytes(r *result.Invoke, err error) ([]byte, error) {
	return itemAs(r, err, stackitem.Item.TryBytes)
}

// Uint160 returns the hash result, it's a 20-byte BE string on the stack.
func Uint160(r *result.Invoke, err error) (util.Uint160, error) {
	b, err := Bytes(r, err)
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

// Array returns elements of the Array (or Struct) result.
func Array(r *result.Invoke, err error) ([]stackitem.Item, error) {
	return itemAs(r, err, func(itm stackitem.Item) ([]stackitem.Item, error) {
		arr, ok := itm.Value().([]stackitem.Item)
		if !ok {
			return nil, fmt.Errorf("not an array: %s", itm.Type())
		}
		return arr, nil
	})
}

// ArrayOfPublicKeys returns the array of secp256r1 public keys (like the
// result of NEO getCommittee).
func ArrayOfPublicKeys(r *result.Invoke, err error) (keys.PublicKeys, error) {
	arr, err := Array(r, err)
	if err != nil {
		return nil, err
	}
	pks := make(keys.PublicKeys, len(arr))
	for i := range arr {
		b, err := arr[i].TryBytes()
		if err != nil {
			return nil, fmt.Errorf("element %d is not a byte string: %w", i, err)
		}
		pks[i], err = keys.NewPublicKeyFromBytes(b, elliptic.P256())
		if err != nil {
			return nil, fmt.Errorf("array element #%d in not a key: %w", i, err)
		}
	}
	return pks, nil
}
