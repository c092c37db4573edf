/*
Package stackitem implements the subset of VM stack items needed to decode
invocation results returned by RPC nodes and to build parameters for them.
*/
package stackitem

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"unicode/utf8"

	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// Item is a value on the VM stack.
type Item interface {
	fmt.Stringer
	Value() any
	// TryBool converts Item to a boolean value.
	TryBool() (bool, error)
	// TryBytes converts Item to a byte slice. Byte-backed items return their
	// underlying slice without copying.
	TryBytes() ([]byte, error)
	// TryInteger converts Item to an integer.
	TryInteger() (*big.Int, error)
	// Type returns stack item type.
	Type() Type
}

var (
	// ErrInvalidConversion is returned when an item can't be converted to
	// the requested type.
	ErrInvalidConversion = errors.New("invalid conversion")
	// ErrTooBig is returned when an item exceeds some size constraints.
	ErrTooBig = errors.New("too big")

	errTooBigInteger = fmt.Errorf("%w: integer", ErrTooBig)
)

func convErr(from, to Type) error {
	return fmt.Errorf("%w: %s to %s", ErrInvalidConversion, from, to)
}

// Make converts a Go value into a stack item. Integers of any width,
// strings, byte slices, hashes, slices of items or values and nil are
// supported. It panics for anything else.
func Make(v any) Item {
	switch val := v.(type) {
	case nil:
		return Null{}
	case Item:
		return val
	case bool:
		return Bool(val)
	case int:
		return (*BigInteger)(big.NewInt(int64(val)))
	case int64:
		return (*BigInteger)(big.NewInt(val))
	case uint64:
		return (*BigInteger)(new(big.Int).SetUint64(val))
	case *big.Int:
		return NewBigInteger(val)
	case string:
		return NewByteArray([]byte(val))
	case []byte:
		return NewByteArray(val)
	case util.Uint160:
		return NewByteArray(val.BytesBE())
	case util.Uint256:
		return NewByteArray(val.BytesBE())
	case []Item:
		return NewArray(val)
	case []any:
		items := make([]Item, 0, len(val))
		for _, elem := range val {
			items = append(items, Make(elem))
		}
		return NewArray(items)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return (*BigInteger)(big.NewInt(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return (*BigInteger)(new(big.Int).SetUint64(rv.Uint()))
	}
	panic(fmt.Sprintf("can't make stack item from %v (%T)", v, v))
}

// ToString returns the UTF-8 string contained in the item.
func ToString(item Item) (string, error) {
	bs, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bs) {
		return "", fmt.Errorf("%w: not UTF-8", ErrInvalidValue)
	}
	return string(bs), nil
}
