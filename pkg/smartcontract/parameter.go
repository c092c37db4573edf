package smartcontract

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// Parameter is a typed contract invocation argument. Value types depend on
// Type:
//
//   - BoolType: bool
//   - IntegerType: *big.Int
//   - StringType: string
//   - ByteArrayType, SignatureType: []byte
//   - PublicKeyType: []byte or *keys.PublicKey
//   - Hash160Type: util.Uint160
//   - Hash256Type: util.Uint256
//   - ArrayType: []Parameter
//   - MapType: []ParameterPair
//
// AnyType and InteropInterfaceType parameters have nil Value.
type Parameter struct {
	Type  ParamType `json:"type"`
	Value any       `json:"value"`
}

// ParameterPair is a key-value pair of MapType Parameter.
type ParameterPair struct {
	Key   Parameter `json:"key"`
	Value Parameter `json:"value"`
}

type parameterJSON struct {
	Type  ParamType       `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (p Parameter) MarshalJSON() ([]byte, error) {
	if !p.Type.isKnown() {
		return nil, fmt.Errorf("can't marshal %s parameter", p.Type)
	}
	js := parameterJSON{Type: p.Type}
	if p.Value != nil {
		var err error
		js.Value, err = p.marshalValue()
		if err != nil {
			return nil, fmt.Errorf("%s parameter: %w", p.Type, err)
		}
	}
	return json.Marshal(js)
}

func (p Parameter) marshalValue() (json.RawMessage, error) {
	switch p.Type {
	case BoolType, StringType, Hash160Type, Hash256Type:
		return json.Marshal(p.Value)
	case IntegerType:
		if v, ok := p.Value.(*big.Int); ok {
			return json.Marshal(v.String())
		}
	case PublicKeyType:
		switch v := p.Value.(type) {
		case []byte:
			return json.Marshal(hex.EncodeToString(v))
		case *keys.PublicKey:
			return json.Marshal(hex.EncodeToString(v.Bytes()))
		}
	case ByteArrayType, SignatureType:
		if v, ok := p.Value.([]byte); ok {
			return json.Marshal(base64.StdEncoding.EncodeToString(v))
		}
	case ArrayType:
		if v, ok := p.Value.([]Parameter); ok {
			if v == nil {
				v = []Parameter{}
			}
			return json.Marshal(v)
		}
	case MapType:
		if v, ok := p.Value.([]ParameterPair); ok {
			return json.Marshal(v)
		}
	case InteropInterfaceType, AnyType:
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected value of %T type", p.Value)
}

// UnmarshalJSON implements the json.Unmarshaler interface. Integers can be
// given either as JSON numbers or as decimal strings, values of AnyType and
// InteropInterfaceType parameters are ignored.
func (p *Parameter) UnmarshalJSON(data []byte) error {
	var js parameterJSON
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	p.Type = js.Type
	p.Value = nil
	if len(js.Value) == 0 || bytes.Equal(js.Value, []byte("null")) {
		return nil
	}
	v, err := unmarshalValue(js.Type, js.Value)
	if err != nil {
		return fmt.Errorf("%s parameter: %w", js.Type, err)
	}
	p.Value = v
	return nil
}

func unmarshalValue(typ ParamType, data json.RawMessage) (any, error) {
	switch typ {
	case BoolType:
		return unmarshalAs[bool](data)
	case StringType:
		return unmarshalAs[string](data)
	case Hash160Type:
		return unmarshalAs[util.Uint160](data)
	case Hash256Type:
		return unmarshalAs[util.Uint256](data)
	case ArrayType:
		return unmarshalAs[[]Parameter](data)
	case MapType:
		return unmarshalAs[[]ParameterPair](data)
	case IntegerType:
		return unmarshalInteger(data)
	case ByteArrayType, SignatureType, PublicKeyType:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		if typ == PublicKeyType {
			return hex.DecodeString(s)
		}
		return base64.StdEncoding.DecodeString(s)
	case InteropInterfaceType, AnyType:
		return nil, nil
	}
	return nil, errors.New("unsupported type")
}

func unmarshalAs[T any](data []byte) (any, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func unmarshalInteger(data []byte) (any, error) {
	var i int64
	if err := json.Unmarshal(data, &i); err == nil {
		return big.NewInt(i), nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if err := checkIntegerSize(bi); err != nil {
		return nil, err
	}
	return bi, nil
}
