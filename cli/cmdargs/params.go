package cmdargs

import (
	"errors"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
)

// Special words of the parameter list.
const (
	// CosignersSeparator ends the parameter list, signers follow it.
	CosignersSeparator = "--"
	// ArrayStartSeparator opens an array.
	ArrayStartSeparator = "["
	// ArrayEndSeparator closes an array.
	ArrayEndSeparator = "]"
)

var (
	errNoClosingBracket = errors.New("invalid array syntax: missing closing bracket")
	errNoOpeningBracket = errors.New("invalid array syntax: missing opening bracket")

	// errSignersOnly is returned when the first word is a signer, urfave/cli
	// drops the leading '--' when there are no parameters before it.
	errSignersOnly = errors.New("no parameters before signers")
)

// paramReader walks over the words of a parameter list, nested arrays share
// the position with the outer list.
type paramReader struct {
	words []string
	pos   int
}

// ParseParams parses contract parameters from args. It returns the number of
// words consumed (including the trailing CosignersSeparator if any) along
// with parameters. topLevel is false for the words following an
// ArrayStartSeparator, such a list must end with an ArrayEndSeparator.
func ParseParams(args []string, topLevel bool) (int, []smartcontract.Parameter, error) {
	r := &paramReader{words: args}
	params, err := r.list(!topLevel)
	if err != nil {
		if errors.Is(err, errSignersOnly) {
			return 0, nil, nil
		}
		return 0, nil, err
	}
	return r.pos, params, nil
}

func (r *paramReader) list(nested bool) ([]smartcontract.Parameter, error) {
	res := []smartcontract.Parameter{}
	for r.pos < len(r.words) {
		w := r.words[r.pos]
		r.pos++
		switch w {
		case CosignersSeparator:
			if nested {
				return nil, errNoClosingBracket
			}
			return res, nil
		case ArrayEndSeparator:
			if !nested {
				return nil, errNoOpeningBracket
			}
			return res, nil
		case ArrayStartSeparator:
			arr, err := r.list(true)
			if err != nil {
				return nil, fmt.Errorf("failed to parse array: %w", err)
			}
			res = append(res, smartcontract.Parameter{
				Type:  smartcontract.ArrayType,
				Value: arr,
			})
		default:
			p, err := smartcontract.NewParameterFromString(w)
			if err != nil {
				if !nested && r.pos == 1 {
					if _, sErr := parseSigner(w, address.NEO3Prefix); sErr == nil {
						return nil, errSignersOnly
					}
				}
				return nil, fmt.Errorf("failed to parse argument #%d: %w", r.pos, err)
			}
			res = append(res, *p)
		}
	}
	if nested {
		return nil, errNoClosingBracket
	}
	return res, nil
}
