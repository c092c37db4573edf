package smartcontract

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/pkg/crypto/keys"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/bigint"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
)

// ParamType is the type of contract parameter as used in manifests and RPC.
type ParamType int

// Contract parameter types.
const (
	UnknownType          ParamType = -1
	AnyType              ParamType = 0x00
	BoolType             ParamType = 0x10
	IntegerType          ParamType = 0x11
	ByteArrayType        ParamType = 0x12
	StringType           ParamType = 0x13
	Hash160Type          ParamType = 0x14
	Hash256Type          ParamType = 0x15
	PublicKeyType        ParamType = 0x16
	SignatureType        ParamType = 0x17
	ArrayType            ParamType = 0x20
	MapType              ParamType = 0x22
	InteropInterfaceType ParamType = 0x30
	VoidType             ParamType = 0xff
)

// fileBytesParamType is a pseudo-type of ByteArray parameters read from
// files.
const fileBytesParamType = "filebytes"

// paramTypeNames holds the canonical name of each type followed by the
// aliases ParseParamType accepts.
var paramTypeNames = map[ParamType][]string{
	AnyType:              {"Any"},
	BoolType:             {"Boolean", "bool"},
	IntegerType:          {"Integer", "int"},
	ByteArrayType:        {"ByteArray", "bytes", "bytestring", fileBytesParamType},
	StringType:           {"String"},
	Hash160Type:          {"Hash160"},
	Hash256Type:          {"Hash256"},
	PublicKeyType:        {"PublicKey", "key"},
	SignatureType:        {"Signature"},
	ArrayType:            {"Array", "struct"},
	MapType:              {"Map"},
	InteropInterfaceType: {"InteropInterface"},
	VoidType:             {"Void"},
}

// paramTypesByName is a lowercase index of paramTypeNames.
var paramTypesByName = func() map[string]ParamType {
	m := make(map[string]ParamType)
	for t, names := range paramTypeNames {
		for _, n := range names {
			m[strings.ToLower(n)] = t
		}
	}
	return m
}()

func (pt ParamType) isKnown() bool {
	_, ok := paramTypeNames[pt]
	return ok
}

// String implements the stringer interface. It returns an empty string for
// unknown types.
func (pt ParamType) String() string {
	if names, ok := paramTypeNames[pt]; ok {
		return names[0]
	}
	return ""
}

// MarshalJSON implements the json.Marshaler interface.
func (pt ParamType) MarshalJSON() ([]byte, error) {
	return json.Marshal(pt.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (pt *ParamType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	p, err := ParseParamType(s)
	if err != nil {
		return err
	}
	*pt = p
	return nil
}

// ParseParamType returns the type for the given case-insensitive name. Besides
// canonical names (as returned by String) it accepts short forms like "int",
// "bool", "bytes" or "key".
func ParseParamType(typ string) (ParamType, error) {
	if t, ok := paramTypesByName[strings.ToLower(typ)]; ok {
		return t, nil
	}
	return UnknownType, fmt.Errorf("bad parameter type: %s", typ)
}

// ConvertToParamType converts a numeric type value to ParamType.
func ConvertToParamType(val int) (ParamType, error) {
	pt := ParamType(val)
	if pt == UnknownType || pt.isKnown() {
		return pt, nil
	}
	return UnknownType, errors.New("unknown parameter type")
}

// valueParsers convert string values of the types that can be given
// explicitly on the command line.
var valueParsers = map[ParamType]func(string) (any, error){
	SignatureType: func(val string) (any, error) {
		b, err := hex.DecodeString(val)
		if err != nil {
			return nil, err
		}
		if len(b) != keys.SignatureLen {
			return nil, errors.New("not a signature")
		}
		return b, nil
	},
	BoolType: func(val string) (any, error) {
		if val != "true" && val != "false" {
			return nil, errors.New("invalid boolean value")
		}
		return val == "true", nil
	},
	IntegerType: func(val string) (any, error) {
		bi, ok := new(big.Int).SetString(val, 10)
		if !ok || checkIntegerSize(bi) != nil {
			return nil, errors.New("invalid integer value")
		}
		return bi, nil
	},
	Hash160Type: func(val string) (any, error) {
		if u, err := address.StringToUint160(val); err == nil {
			return u, nil
		}
		return util.Uint160DecodeStringLE(val)
	},
	Hash256Type: func(val string) (any, error) {
		return util.Uint256DecodeStringLE(val)
	},
	ByteArrayType: func(val string) (any, error) {
		return hex.DecodeString(val)
	},
	PublicKeyType: func(val string) (any, error) {
		pub, err := keys.NewPublicKeyFromString(val)
		if err != nil {
			return nil, err
		}
		return pub.Bytes(), nil
	},
	StringType: func(val string) (any, error) {
		return val, nil
	},
}

// adjustValToType checks val against typ and converts it to the Parameter
// value representation.
func adjustValToType(typ ParamType, val string) (any, error) {
	parse, ok := valueParsers[typ]
	if !ok {
		return nil, errors.New("unsupported parameter type")
	}
	v, err := parse(val)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// inferParamType guesses the type of an untyped value. Decimal integers
// fitting into the VM range, booleans, addresses and public keys are detected
// first, then hex strings are classified by their length. Anything else is a
// string.
func inferParamType(val string) ParamType {
	bi, ok := new(big.Int).SetString(val, 10)
	switch {
	case ok && checkIntegerSize(bi) == nil:
		return IntegerType
	case val == "true" || val == "false":
		return BoolType
	}
	if _, err := address.StringToUint160(val); err == nil {
		return Hash160Type
	}
	if _, err := keys.NewPublicKeyFromString(val); err == nil {
		return PublicKeyType
	}
	unhexed, err := hex.DecodeString(val)
	if err != nil {
		return StringType
	}
	switch len(unhexed) {
	case util.Uint160Size:
		return Hash160Type
	case util.Uint256Size:
		return Hash256Type
	case keys.SignatureLen:
		return SignatureType
	default:
		return ByteArrayType
	}
}

// checkIntegerSize checks that bi fits into the VM integer range (256-bit
// signed).
func checkIntegerSize(bi *big.Int) error {
	if len(bigint.ToBytes(bi)) > bigint.MaxBytesLen {
		return errors.New("integer is too big")
	}
	return nil
}
