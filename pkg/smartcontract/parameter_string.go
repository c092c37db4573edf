package smartcontract

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// NewParameterFromString parses a "type:value" string given by the user. The
// type can be omitted, it's inferred from the value then. ':' and '\' can be
// escaped with '\'. The "filebytes" type reads ByteArray value from the file
// with the given name. Array, Map, InteropInterface and Void parameters can't
// be created this way.
func NewParameterFromString(in string) (*Parameter, error) {
	typStr, val, typed, err := splitTypedValue(in)
	if err != nil {
		return nil, err
	}
	res := new(Parameter)
	if !typed {
		res.Type = inferParamType(val)
	} else {
		res.Type, err = ParseParamType(typStr)
		if err != nil {
			return nil, err
		}
		switch res.Type {
		case ArrayType, MapType, InteropInterfaceType, VoidType:
			return nil, fmt.Errorf("unsupported parameter type %s", res.Type)
		}
		if strings.EqualFold(typStr, fileBytesParamType) {
			res.Value, err = os.ReadFile(val)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s parameter: %w", fileBytesParamType, err)
			}
			return res, nil
		}
	}
	res.Value, err = adjustValToType(res.Type, val)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// splitTypedValue unescapes in and splits it at the first unescaped ':'.
func splitTypedValue(in string) (typ string, val string, typed bool, err error) {
	if !utf8.ValidString(in) {
		return "", "", false, errors.New("bad UTF-8 string")
	}
	var (
		buf     strings.Builder
		escaped bool
	)
	for _, c := range in {
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
			continue
		case c == ':' && !typed:
			typ, typed = buf.String(), true
			buf.Reset()
			continue
		}
		buf.WriteRune(c)
	}
	return typ, buf.String(), typed, nil
}
