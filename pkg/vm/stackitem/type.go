package stackitem

import "fmt"

// Type is the type of a VM stack item.
type Type byte

// Stack item types.
const (
	AnyT       Type = 0x00
	PointerT   Type = 0x10
	BooleanT   Type = 0x20
	IntegerT   Type = 0x21
	ByteArrayT Type = 0x28
	BufferT    Type = 0x30
	ArrayT     Type = 0x40
	StructT    Type = 0x41
	MapT       Type = 0x48
	InteropT   Type = 0x60
	InvalidT   Type = 0xFF
)

var typeNames = map[Type]string{
	AnyT:       "Any",
	PointerT:   "Pointer",
	BooleanT:   "Boolean",
	IntegerT:   "Integer",
	ByteArrayT: "ByteString",
	BufferT:    "Buffer",
	ArrayT:     "Array",
	StructT:    "Struct",
	MapT:       "Map",
	InteropT:   "Interop",
}

// String implements the fmt.Stringer interface.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "INVALID"
}

// IsValid checks whether t is one of the known stack item types.
func (t Type) IsValid() bool {
	_, ok := typeNames[t]
	return ok
}

// Alternative names used by nodes in RPC results.
var typeAliases = map[string]Type{
	"InteropInterface": InteropT,
}

// FromString returns the stack item type with the given name (as used in the
// JSON representation of RPC results).
func FromString(s string) (Type, error) {
	if t, ok := typeAliases[s]; ok {
		return t, nil
	}
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return InvalidT, fmt.Errorf("invalid stack item type %q", s)
}
