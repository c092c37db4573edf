/*
Package util contains the "util" command with assorted helpers.
*/
package util

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/cli/options"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/urfave/cli"
)

// NewCommands returns util commands for the CLI.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:  "util",
			Usage: "Various helper commands",
			Subcommands: []cli.Command{
				{
					Name:  "convert",
					Usage: "Convert provided argument into other possible formats",
					UsageText: `convert <arg>

<arg> is an address or a script hash (hex, 20 bytes, with or without 0x prefix,
        both byte orders are tried). Every possible interpretation of it is printed.
        Addresses use the version byte of the configured network.`,
					Action: handleConvert,
					Flags:  options.Addressing,
				},
			},
		},
	}
}

func handleConvert(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 1 {
		return cli.NewExitError("exactly one argument is expected", 1)
	}
	version, err := options.GetAddressVersion(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if err := convert(ctx.App.Writer, args[0], version); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

// convert prints all known representations of the given address or hash.
func convert(w io.Writer, arg string, version byte) error {
	if u, err := address.StringToUint160WithPrefix(arg, version); err == nil {
		printHash(w, "Address to", u, version)
		return nil
	}
	b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil || len(b) != util.Uint160Size {
		return fmt.Errorf("%q is neither an address nor a 20-byte hex string", arg)
	}
	le, err := util.Uint160DecodeBytesLE(b)
	if err != nil {
		return err
	}
	be, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return err
	}
	printHash(w, "LE hash to", le, version)
	printHash(w, "BE hash to", be, version)
	return nil
}

func printHash(w io.Writer, prefix string, u util.Uint160, version byte) {
	fmt.Fprintf(w, "%-12s address: %s\n", prefix, address.Uint160ToStringWithPrefix(u, version))
	fmt.Fprintf(w, "%-12s LE hex: 0x%s\n", prefix, u.StringLE())
	fmt.Fprintf(w, "%-12s BE hex: 0x%s\n", prefix, u.StringBE())
	fmt.Fprintf(w, "%-12s base64 (BE bytes): %s\n", prefix, base64.StdEncoding.EncodeToString(u.BytesBE()))
}
