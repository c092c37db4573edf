package smartcontract

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// Convertible is implemented by types that know their Parameter
// representation.
type Convertible interface {
	ToSCParameter() (Parameter, error)
}

// NewParameterFromValue creates a Parameter from a Go value inferring its
// type. Integers of any width, string, bool, []byte, *big.Int, hashes, public
// keys, Parameter and slices of any of them are supported. Nil (including nil
// hash pointers) becomes AnyType parameter.
func NewParameterFromValue(value any) (Parameter, error) {
	switch v := value.(type) {
	case nil:
		return Parameter{Type: AnyType}, nil
	case Parameter:
		return v, nil
	case []Parameter:
		return Parameter{Type: ArrayType, Value: v}, nil
	case []ParameterPair:
		return Parameter{Type: MapType, Value: v}, nil
	case bool:
		return Parameter{Type: BoolType, Value: v}, nil
	case string:
		return Parameter{Type: StringType, Value: v}, nil
	case []byte:
		return Parameter{Type: ByteArrayType, Value: v}, nil
	case *big.Int:
		return Parameter{Type: IntegerType, Value: v}, nil
	case util.Uint160:
		return Parameter{Type: Hash160Type, Value: v}, nil
	case util.Uint256:
		return Parameter{Type: Hash256Type, Value: v}, nil
	case *util.Uint160:
		if v == nil {
			return Parameter{Type: AnyType}, nil
		}
		return NewParameterFromValue(*v)
	case *util.Uint256:
		if v == nil {
			return Parameter{Type: AnyType}, nil
		}
		return NewParameterFromValue(*v)
	case keys.PublicKey:
		return Parameter{Type: PublicKeyType, Value: v.Bytes()}, nil
	case *keys.PublicKey:
		if v == nil {
			return Parameter{Type: AnyType}, nil
		}
		return Parameter{Type: PublicKeyType, Value: v.Bytes()}, nil
	case Convertible:
		return v.ToSCParameter()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Parameter{Type: IntegerType, Value: big.NewInt(rv.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Parameter{Type: IntegerType, Value: new(big.Int).SetUint64(rv.Uint())}, nil
	case reflect.Slice, reflect.Array:
		elems := make([]Parameter, rv.Len())
		for i := range elems {
			var err error
			elems[i], err = NewParameterFromValue(rv.Index(i).Interface())
			if err != nil {
				return Parameter{}, fmt.Errorf("element %d: %w", i, err)
			}
		}
		return Parameter{Type: ArrayType, Value: elems}, nil
	}
	return Parameter{}, fmt.Errorf("unsupported parameter %T", value)
}

// NewParametersFromValues converts each value with NewParameterFromValue.
func NewParametersFromValues(values ...any) ([]Parameter, error) {
	res := make([]Parameter, len(values))
	for i := range values {
		var err error
		res[i], err = NewParameterFromValue(values[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
