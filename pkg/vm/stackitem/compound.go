package stackitem

import (
	"fmt"
	"math/big"
)

// reference implements the conversions shared by items that are only
// meaningful as references: they're always true and have no byte or integer
// representation.
type reference struct {
	typ Type
}

func (r reference) String() string { return r.typ.String() }

// TryBool implements the Item interface.
func (r reference) TryBool() (bool, error) { return true, nil }

// TryBytes implements the Item interface.
func (r reference) TryBytes() ([]byte, error) { return nil, convErr(r.typ, ByteArrayT) }

// TryInteger implements the Item interface.
func (r reference) TryInteger() (*big.Int, error) { return nil, convErr(r.typ, IntegerT) }

// Type implements the Item interface.
func (r reference) Type() Type { return r.typ }

// Array is an array of stack items.
type Array struct {
	reference
	value []Item
}

// NewArray returns an Array item holding items.
func NewArray(items []Item) *Array {
	return &Array{reference: reference{ArrayT}, value: items}
}

// Value implements the Item interface, it returns []Item.
func (i *Array) Value() any { return i.value }

// Len returns the number of elements.
func (i *Array) Len() int { return len(i.value) }

// Struct is a structure on the stack, it's an Array with value semantics in
// the VM.
type Struct struct {
	reference
	value []Item
}

// NewStruct returns a Struct item holding items.
func NewStruct(items []Item) *Struct {
	return &Struct{reference: reference{StructT}, value: items}
}

// Value implements the Item interface, it returns []Item.
func (i *Struct) Value() any { return i.value }

// Len returns the number of fields.
func (i *Struct) Len() int { return len(i.value) }

// MapElement is a key-value pair of a Map.
type MapElement struct {
	Key   Item
	Value Item
}

// Map is an ordered map item. Maps returned by nodes are small, so elements
// are kept in a slice in insertion order.
type Map struct {
	reference
	value []MapElement
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return NewMapWithValue(nil)
}

// NewMapWithValue returns a Map holding the given elements.
func NewMapWithValue(value []MapElement) *Map {
	if value == nil {
		value = []MapElement{}
	}
	return &Map{reference: reference{MapT}, value: value}
}

// Value implements the Item interface, it returns []MapElement.
func (i *Map) Value() any { return i.value }

// Len returns the number of elements.
func (i *Map) Len() int { return len(i.value) }

// Add sets value for the key, the position of an existing key is kept.
func (i *Map) Add(key, value Item) {
	if idx := i.index(key); idx >= 0 {
		i.value[idx].Value = value
		return
	}
	i.value = append(i.value, MapElement{Key: key, Value: value})
}

func (i *Map) index(key Item) int {
	kb, err := key.TryBytes()
	if err != nil {
		return -1
	}
	for j, elem := range i.value {
		if elem.Key.Type() != key.Type() {
			continue
		}
		if b, err := elem.Key.TryBytes(); err == nil && string(b) == string(kb) {
			return j
		}
	}
	return -1
}

// IsValidMapKey returns an error if key can't be used as a Map key, only
// primitive items can.
func IsValidMapKey(key Item) error {
	switch key.(type) {
	case Bool, *BigInteger, *ByteArray:
		return nil
	}
	return fmt.Errorf("%w: %s map key", ErrInvalidType, key.Type())
}

// Interop is an opaque interop item. Nodes only report its type, the value
// is set by the client (e.g. to an iterator).
type Interop struct {
	reference
	value any
}

// NewInterop returns an Interop item holding value.
func NewInterop(value any) *Interop {
	return &Interop{reference: reference{InteropT}, value: value}
}

func (i *Interop) String() string { return "InteropInterface" }

// Value implements the Item interface.
func (i *Interop) Value() any { return i.value }

// Pointer is an instruction pointer item.
type Pointer struct {
	reference
	pos int
}

// NewPointer returns a Pointer to pos.
func NewPointer(pos int) *Pointer {
	return &Pointer{reference: reference{PointerT}, pos: pos}
}

// Value implements the Item interface.
func (p *Pointer) Value() any { return p.pos }

// Position returns the instruction offset.
func (p *Pointer) Position() int { return p.pos }
