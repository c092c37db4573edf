package stackitem

import (
	"math/big"

	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/bigint"
)

// MaxBigIntegerSizeBits is the maximum size of a BigInt item in bits.
const MaxBigIntegerSizeBits = 32 * 8

const maxIntegerBytes = MaxBigIntegerSizeBits / 8

// Null is the null stack item.
type Null struct{}

func (Null) String() string { return "Null" }

// Value implements the Item interface.
func (Null) Value() any { return nil }

// TryBool implements the Item interface.
func (Null) TryBool() (bool, error) { return false, nil }

// TryBytes implements the Item interface.
func (Null) TryBytes() ([]byte, error) { return nil, convErr(AnyT, ByteArrayT) }

// TryInteger implements the Item interface.
func (Null) TryInteger() (*big.Int, error) { return nil, convErr(AnyT, IntegerT) }

// Type implements the Item interface.
func (Null) Type() Type { return AnyT }

// BigInteger is an integer stack item.
type BigInteger big.Int

// NewBigInteger wraps value into an item, it panics if the value doesn't fit
// into the VM integer limits.
func NewBigInteger(value *big.Int) *BigInteger {
	if err := CheckIntegerSize(value); err != nil {
		panic(err)
	}
	return (*BigInteger)(value)
}

// CheckIntegerSize returns an error if the value doesn't fit into the VM
// integer limits.
func CheckIntegerSize(value *big.Int) error {
	if len(bigint.ToBytes(value)) > maxIntegerBytes {
		return errTooBigInteger
	}
	return nil
}

// Big returns the item's value.
func (i *BigInteger) Big() *big.Int { return (*big.Int)(i) }

func (i *BigInteger) String() string { return "BigInteger" }

// Value implements the Item interface.
func (i *BigInteger) Value() any { return i.Big() }

// TryBool implements the Item interface.
func (i *BigInteger) TryBool() (bool, error) { return i.Big().Sign() != 0, nil }

// TryBytes implements the Item interface.
func (i *BigInteger) TryBytes() ([]byte, error) { return bigint.ToBytes(i.Big()), nil }

// TryInteger implements the Item interface.
func (i *BigInteger) TryInteger() (*big.Int, error) { return i.Big(), nil }

// Type implements the Item interface.
func (i *BigInteger) Type() Type { return IntegerT }

// Bool is a boolean stack item.
type Bool bool

// NewBool returns a Bool item.
func NewBool(val bool) Bool { return Bool(val) }

func (i Bool) String() string { return "Boolean" }

// Value implements the Item interface.
func (i Bool) Value() any { return bool(i) }

// TryBool implements the Item interface.
func (i Bool) TryBool() (bool, error) { return bool(i), nil }

// TryBytes implements the Item interface.
func (i Bool) TryBytes() ([]byte, error) {
	b := byte(0)
	if i {
		b = 1
	}
	return []byte{b}, nil
}

// TryInteger implements the Item interface.
func (i Bool) TryInteger() (*big.Int, error) {
	if i {
		return big.NewInt(1), nil
	}
	return big.NewInt(0), nil
}

// Type implements the Item interface.
func (i Bool) Type() Type { return BooleanT }

// ByteArray is an immutable byte string item.
type ByteArray []byte

// NewByteArray returns a ByteArray item backed by b.
func NewByteArray(b []byte) *ByteArray { return (*ByteArray)(&b) }

func (i *ByteArray) String() string { return "ByteString" }

// Value implements the Item interface.
func (i *ByteArray) Value() any { return []byte(*i) }

// TryBool implements the Item interface. Strings longer than the integer
// limit can't be converted.
func (i *ByteArray) TryBool() (bool, error) {
	if len(*i) > maxIntegerBytes {
		return false, errTooBigInteger
	}
	for _, b := range *i {
		if b != 0 {
			return true, nil
		}
	}
	return false, nil
}

// TryBytes implements the Item interface.
func (i *ByteArray) TryBytes() ([]byte, error) { return *i, nil }

// TryInteger implements the Item interface.
func (i *ByteArray) TryInteger() (*big.Int, error) {
	if len(*i) > maxIntegerBytes {
		return nil, errTooBigInteger
	}
	return bigint.FromBytes(*i), nil
}

// Type implements the Item interface.
func (i *ByteArray) Type() Type { return ByteArrayT }

// Buffer is a mutable byte array item.
type Buffer []byte

// NewBuffer returns a Buffer item backed by b.
func NewBuffer(b []byte) *Buffer { return (*Buffer)(&b) }

func (i *Buffer) String() string { return "Buffer" }

// Value implements the Item interface.
func (i *Buffer) Value() any { return []byte(*i) }

// TryBool implements the Item interface.
func (i *Buffer) TryBool() (bool, error) { return true, nil }

// TryBytes implements the Item interface.
func (i *Buffer) TryBytes() ([]byte, error) { return *i, nil }

// TryInteger implements the Item interface.
func (i *Buffer) TryInteger() (*big.Int, error) { return nil, convErr(BufferT, IntegerT) }

// Type implements the Item interface.
func (i *Buffer) Type() Type { return BufferT }
