package stackitem

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

// MaxJSONDepth is the maximum nesting level of compound items in JSON.
const MaxJSONDepth = 10

var (
	// ErrInvalidValue is returned for item values that can't be encoded or
	// decoded.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidType is returned for unknown or unexpected item types.
	ErrInvalidType = errors.New("invalid type")
	// ErrTooDeep is returned when items are nested deeper than MaxJSONDepth.
	ErrTooDeep = errors.New("too deep")
	// ErrRecursive is returned for compound items containing themselves.
	ErrRecursive = errors.New("recursive item")
)

// typedJSON is the typed JSON form of an item used by RPC nodes.
type typedJSON struct {
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

type typedRaw struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

type mapElementJSON struct {
	Key   any `json:"key"`
	Value any `json:"value"`
}

type mapElementRaw struct {
	Key   json.RawMessage `json:"key"`
	Value json.RawMessage `json:"value"`
}

// ToJSONWithTypes encodes the item into typed JSON that can be decoded back
// with FromJSONWithTypes.
func ToJSONWithTypes(item Item) ([]byte, error) {
	enc := typedEncoder{path: make(map[Item]bool)}
	js, err := enc.encode(item)
	if err != nil {
		return nil, err
	}
	return json.Marshal(js)
}

// typedEncoder tracks compound items on the current path to detect
// recursion and limit depth.
type typedEncoder struct {
	path map[Item]bool
}

func (e *typedEncoder) encode(item Item) (*typedJSON, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidValue)
	}
	js := &typedJSON{Type: item.Type().String()}
	switch it := item.(type) {
	case Bool:
		js.Value = bool(it)
	case *BigInteger:
		js.Value = it.Big().String()
	case *ByteArray, *Buffer:
		b, _ := it.TryBytes()
		js.Value = base64.StdEncoding.EncodeToString(b)
	case *Pointer:
		js.Value = it.pos
	case *Array:
		return js, e.compound(it, js, func() (any, error) { return e.encodeItems(it.value) })
	case *Struct:
		return js, e.compound(it, js, func() (any, error) { return e.encodeItems(it.value) })
	case *Map:
		return js, e.compound(it, js, func() (any, error) { return e.encodeMap(it.value) })
	}
	return js, nil
}

func (e *typedEncoder) compound(item Item, js *typedJSON, encodeValue func() (any, error)) error {
	if e.path[item] {
		return ErrRecursive
	}
	if len(e.path) >= MaxJSONDepth {
		return ErrTooDeep
	}
	e.path[item] = true
	defer delete(e.path, item)

	v, err := encodeValue()
	if err != nil {
		return err
	}
	js.Value = v
	return nil
}

func (e *typedEncoder) encodeItems(items []Item) ([]*typedJSON, error) {
	res := make([]*typedJSON, 0, len(items))
	for _, it := range items {
		js, err := e.encode(it)
		if err != nil {
			return nil, err
		}
		res = append(res, js)
	}
	return res, nil
}

func (e *typedEncoder) encodeMap(elems []MapElement) ([]mapElementJSON, error) {
	res := make([]mapElementJSON, 0, len(elems))
	for _, elem := range elems {
		k, err := e.encode(elem.Key)
		if err != nil {
			return nil, err
		}
		v, err := e.encode(elem.Value)
		if err != nil {
			return nil, err
		}
		res = append(res, mapElementJSON{Key: k, Value: v})
	}
	return res, nil
}

// FromJSONWithTypes decodes an item from typed JSON. Interop items are
// decoded with nil value.
func FromJSONWithTypes(data []byte) (Item, error) {
	return decodeTyped(data, MaxJSONDepth)
}

func decodeTyped(data []byte, depth int) (Item, error) {
	if depth < 0 {
		return nil, ErrTooDeep
	}
	var raw typedRaw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	typ, err := FromString(raw.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, raw.Type)
	}
	switch typ {
	case AnyT:
		return Null{}, nil
	case InteropT:
		return NewInterop(nil), nil
	case BooleanT:
		b, err := decodeValue[bool](raw.Value)
		if err != nil {
			return nil, err
		}
		return NewBool(b), nil
	case PointerT:
		pos, err := decodeValue[int](raw.Value)
		if err != nil {
			return nil, err
		}
		return NewPointer(pos), nil
	case IntegerT:
		return decodeInteger(raw.Value)
	case ByteArrayT, BufferT:
		b, err := decodeValue[[]byte](raw.Value)
		if err != nil {
			return nil, err
		}
		if typ == BufferT {
			return NewBuffer(b), nil
		}
		return NewByteArray(b), nil
	case ArrayT, StructT:
		items, err := decodeItems(raw.Value, depth-1)
		if err != nil {
			return nil, err
		}
		if typ == StructT {
			return NewStruct(items), nil
		}
		return NewArray(items), nil
	case MapT:
		return decodeMap(raw.Value, depth-1)
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidType, typ)
}

// decodeValue unmarshals the value, []byte is expected to be base64-encoded.
func decodeValue[T any](data json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return v, nil
}

func decodeInteger(data json.RawMessage) (Item, error) {
	s, err := decodeValue[string](data)
	if err != nil {
		return nil, err
	}
	val, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: not an integer", ErrInvalidValue)
	}
	if err := CheckIntegerSize(val); err != nil {
		return nil, err
	}
	return NewBigInteger(val), nil
}

func decodeItems(data json.RawMessage, depth int) ([]Item, error) {
	raws, err := decodeValue[[]json.RawMessage](data)
	if err != nil {
		return nil, err
	}
	items := make([]Item, len(raws))
	for i := range raws {
		if items[i], err = decodeTyped(raws[i], depth); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func decodeMap(data json.RawMessage, depth int) (Item, error) {
	raws, err := decodeValue[[]mapElementRaw](data)
	if err != nil {
		return nil, err
	}
	m := NewMap()
	for _, elem := range raws {
		key, err := decodeTyped(elem.Key, depth)
		if err != nil {
			return nil, err
		}
		if err := IsValidMapKey(key); err != nil {
			return nil, err
		}
		value, err := decodeTyped(elem.Value, depth)
		if err != nil {
			return nil, err
		}
		m.Add(key, value)
	}
	return m, nil
}
