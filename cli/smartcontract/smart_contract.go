/*
Package smartcontract contains the "contract" command working with NEF files
and contract invocation scripts.
*/
package smartcontract

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/R3E-Network/NeoRust-sub000/cli/cmdargs"
	"github.com/R3E-Network/NeoRust-sub000/cli/flags"
	"github.com/R3E-Network/NeoRust-sub000/cli/options"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract/callflag"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract/nef"
	"github.com/urfave/cli"
)

var errNoInput = errors.New("no input file was found, specify an input file with the '--in or -i' flag")

// NewCommands returns 'contract' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "contract",
		Usage: "NEF files and invocation scripts",
		Subcommands: []cli.Command{
			{
				Name:      "inspect",
				Usage:     "Decode and check a NEF file",
				UsageText: "contract inspect -i file.nef [--json]",
				Action:    inspect,
				Flags: []cli.Flag{
					cli.StringFlag{
						Name:  "in, i",
						Usage: "Input file for the NEF",
					},
					cli.BoolFlag{
						Name:  "json",
						Usage: "Print the file as JSON",
					},
				},
			},
			{
				Name:      "script",
				Aliases:   []string{"invokescript"},
				Usage:     "Create a script calling a contract method",
				UsageText: "contract script [--callflags flags] [--hex] <hash> <method> [<arg1> ...]",
				Description: `Creates a NeoVM script invoking the given method of the given contract
   (address or LE hash) with the given arguments packed into an array via
   System.Contract.Call. The script is printed base64-encoded (or hex-encoded
   with --hex).

` + cmdargs.ParamsParsingDoc,
				Action: script,
				Flags: append([]cli.Flag{
					cli.StringFlag{
						Name:  "callflags",
						Value: callflag.All.String(),
						Usage: "Call flags to use",
					},
					cli.BoolFlag{
						Name:  "hex",
						Usage: "Use hex encoding",
					},
				}, options.Addressing...),
			},
		},
	}}
}

func inspect(ctx *cli.Context) error {
	if err := cmdargs.EnsureNone(ctx); err != nil {
		return err
	}
	in := ctx.String("in")
	if len(in) == 0 {
		return cli.NewExitError(errNoInput, 1)
	}
	b, err := os.ReadFile(in)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to read NEF file: %w", err), 1)
	}
	f, err := nef.FileFromBytes(b)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("invalid NEF file: %w", err), 1)
	}
	w := ctx.App.Writer
	if ctx.Bool("json") {
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	fmt.Fprintf(w, "Compiler: %s\n", f.Compiler)
	fmt.Fprintf(w, "Source: %s\n", f.Source)
	fmt.Fprintf(w, "Tokens: %d\n", len(f.Tokens))
	for i, t := range f.Tokens {
		fmt.Fprintf(w, "  #%d: 0x%s %s(%d params, return: %t) %s\n", i, t.Hash.StringLE(), t.Method, t.ParamCount, t.HasReturn, t.CallFlag)
	}
	fmt.Fprintf(w, "Script: %s\n", hex.EncodeToString(f.Script))
	fmt.Fprintf(w, "Checksum: %#08x\n", f.Checksum)
	return nil
}

func script(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return cli.NewExitError("contract hash and method are required", 1)
	}
	version, err := options.GetAddressVersion(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	h, err := flags.ParseAddress(args[0], version)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("invalid contract hash: %w", err), 1)
	}
	f, err := callflag.FromString(ctx.String("callflags"))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("invalid call flags: %w", err), 1)
	}
	_, params, err := cmdargs.ParseParams(args[2:], true)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	b := smartcontract.NewBuilder()
	b.ContractCall(h, args[1], params, f)
	s, err := b.Script()
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to create script: %w", err), 1)
	}
	if ctx.Bool("hex") {
		fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(s))
	} else {
		fmt.Fprintln(ctx.App.Writer, base64.StdEncoding.EncodeToString(s))
	}
	return nil
}
