package flags

import (
	"flag"

	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/fixedn"
	"github.com/urfave/cli"
)

// Fixed8 is a wrapper for fixedn.Fixed8 with flag.Value methods.
type Fixed8 struct {
	Value fixedn.Fixed8
}

var _ flag.Value = (*Fixed8)(nil)

// NewFixed8Flag returns a cli.GenericFlag holding a Fixed8 value.
func NewFixed8Flag(name, usage string) cli.GenericFlag {
	return cli.GenericFlag{
		Name:  name,
		Usage: usage,
		Value: &Fixed8{},
	}
}

// String implements the fmt.Stringer interface.
func (a Fixed8) String() string {
	return a.Value.String()
}

// Set implements the flag.Value interface.
func (a *Fixed8) Set(s string) error {
	f, err := fixedn.Fixed8FromString(s)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	a.Value = f
	return nil
}

// Fixed8FromContext returns the parsed value of the flag with the given name,
// zero is returned for unknown flags.
func Fixed8FromContext(ctx *cli.Context, name string) fixedn.Fixed8 {
	f, ok := ctx.Generic(name).(*Fixed8)
	if !ok {
		return 0
	}
	return f.Value
}
