/*
Package fixedn implements fixed-point numbers used for GAS amounts.
*/
package fixedn

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

const (
	precision = 8
	decimals  = 100000000
)

var errInvalidString = errors.New("fixed-point number must have digits")

// Fixed8 represents a fixed-point number with precision 10^-8, it's the
// representation of GAS amounts where 1 is one datoshi.
type Fixed8 int64

// String implements the Stringer interface.
func (f Fixed8) String() string {
	buf := new(strings.Builder)
	val := int64(f)
	if val < 0 {
		buf.WriteRune('-')
		val = -val
	}
	buf.WriteString(strconv.FormatInt(val/decimals, 10))
	val %= decimals
	if val > 0 {
		str := strconv.FormatInt(val, 10)
		buf.WriteRune('.')
		buf.WriteString(strings.Repeat("0", precision-len(str)))
		buf.WriteString(strings.TrimRight(str, "0"))
	}
	return buf.String()
}

// BigString formats v datoshi the same way Fixed8.String does, v can be
// out of the Fixed8 range.
func BigString(v *big.Int) string {
	if v.IsInt64() {
		return Fixed8(v.Int64()).String()
	}
	q, r := new(big.Int).QuoRem(v, big.NewInt(decimals), new(big.Int))
	res := q.String()
	if r.Sign() != 0 {
		frac := strconv.FormatInt(r.Abs(r).Int64(), 10)
		res += "." + strings.TrimRight(strings.Repeat("0", precision-len(frac))+frac, "0")
	}
	return res
}

// IntegralValue returns an integer part of f.
func (f Fixed8) IntegralValue() int64 {
	return int64(f) / decimals
}

// FractionalValue returns a decimal part of f, it has the same sign as f.
func (f Fixed8) FractionalValue() int32 {
	return int32(int64(f) % decimals)
}

// Fixed8FromInt64 returns a new Fixed8 for the given number of whole units.
func Fixed8FromInt64(val int64) Fixed8 {
	return Fixed8(decimals * val)
}

// Fixed8FromString parses s which must be a decimal number with up to 8
// digits after the point.
func Fixed8FromString(s string) (Fixed8, error) {
	var neg bool
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	ip, fp, _ := strings.Cut(s, ".")
	if len(ip) == 0 && len(fp) == 0 {
		return 0, errInvalidString
	}
	if len(fp) > precision {
		return 0, errors.New("too many digits after the decimal point")
	}
	var val int64
	if len(ip) != 0 {
		i, err := strconv.ParseUint(ip, 10, 63)
		if err != nil {
			return 0, err
		}
		if i > uint64((1<<63-1)/decimals) {
			return 0, errors.New("value is too big")
		}
		val = int64(i) * decimals
	}
	if len(fp) != 0 {
		d, err := strconv.ParseUint(fp+strings.Repeat("0", precision-len(fp)), 10, 63)
		if err != nil {
			return 0, err
		}
		val += int64(d)
		if val < 0 {
			return 0, errors.New("value is too big")
		}
	}
	if neg {
		val = -val
	}
	return Fixed8(val), nil
}

// MarshalYAML implements the yaml marshaller interface.
func (f Fixed8) MarshalYAML() (any, error) {
	return f.String(), nil
}

// UnmarshalYAML implements the yaml unmarshaler interface.
func (f *Fixed8) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	err := unmarshal(&s)
	if err != nil {
		return err
	}
	p, err := Fixed8FromString(s)
	if err != nil {
		return err
	}
	*f = p
	return nil
}
