/*
Package txcmd contains the "tx" command creating, signing and sending
transactions via an RPC node.
*/
package txcmd

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"strings"

	"github.com/R3E-Network/NeoRust-sub000/cli/cmdargs"
	"github.com/R3E-Network/NeoRust-sub000/cli/flags"
	"github.com/R3E-Network/NeoRust-sub000/cli/options"
	"github.com/R3E-Network/NeoRust-sub000/pkg/core/transaction"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/address"
	"github.com/R3E-Network/NeoRust-sub000/pkg/encoding/fixedn"
	"github.com/R3E-Network/NeoRust-sub000/pkg/rpcclient/actor"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/pkg/smartcontract/callflag"
	"github.com/R3E-Network/NeoRust-sub000/pkg/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/wallet"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

type mode int

const (
	modeBuild mode = iota
	modeSign
	modeSend
)

const txUsageText = "[--script <script> | <contract> <method> [<arg1> ...]] [-- <signer1>[:<scope1>] ...]"

const txDescription = `The transaction script is either given via the --script flag (base64 or
   hex-encoded with --hex) or created from the contract (address or LE hash), method and
   arguments given. All signers must belong to the account of the key given
   with --wif (or entered in the terminal), it's the sender with
   CalledByEntry scope by default. Fees are calculated by the node, --sysfee
   and --netfee add to them. Network magic is taken from the node and must
   match the configured one.

`

// NewCommands returns 'tx' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "tx",
		Usage: "Create, sign and send transactions",
		Subcommands: []cli.Command{
			{
				Name:        "build",
				Usage:       "Create an unsigned transaction and print it base64-encoded",
				UsageText:   "tx build " + txUsageText,
				Description: txDescription + cmdargs.ParamsParsingDoc + "\n\n" + cmdargs.SignersParsingDoc,
				Action:      func(ctx *cli.Context) error { return handleTx(ctx, modeBuild) },
				Flags:       txFlags(),
			},
			{
				Name:        "sign",
				Usage:       "Create a signed transaction and print it base64-encoded",
				UsageText:   "tx sign " + txUsageText,
				Description: txDescription + cmdargs.ParamsParsingDoc + "\n\n" + cmdargs.SignersParsingDoc,
				Action:      func(ctx *cli.Context) error { return handleTx(ctx, modeSign) },
				Flags:       txFlags(),
			},
			{
				Name:        "send",
				Usage:       "Create a signed transaction and send it to the network",
				UsageText:   "tx send " + txUsageText,
				Description: txDescription + cmdargs.ParamsParsingDoc + "\n\n" + cmdargs.SignersParsingDoc,
				Action:      func(ctx *cli.Context) error { return handleTx(ctx, modeSend) },
				Flags:       txFlags(),
			},
		},
	}}
}

func txFlags() []cli.Flag {
	return append(append([]cli.Flag{}, options.Common...),
		options.WIF,
		cli.StringFlag{
			Name:  "script",
			Usage: "Transaction script (base64-encoded)",
		},
		cli.BoolFlag{
			Name:  "hex",
			Usage: "Script is hex-encoded",
		},
		flags.NewFixed8Flag("sysfee", "System fee to add to the calculated one (in GAS)"),
		flags.NewFixed8Flag("netfee", "Network fee to add to the calculated one (in GAS)"),
		cli.UintFlag{
			Name:  "nonce",
			Usage: "Transaction nonce (random if not set)",
		},
		cli.UintFlag{
			Name:  "vub",
			Usage: "ValidUntilBlock value (calculated from the current height if not set)",
		},
		cli.StringSliceFlag{
			Name:  "conflicts",
			Usage: "Hash of a conflicting transaction (can be repeated)",
		},
		cli.BoolFlag{
			Name:  "high-priority",
			Usage: "Add HighPriority attribute (requires a committee signer)",
		},
		cli.BoolFlag{
			Name:  "force",
			Usage: "Create a transaction even if the script faults",
		},
		cli.BoolFlag{
			Name:  "check-balance",
			Usage: "Fail if the sender can't pay the fees",
		},
		cli.BoolFlag{
			Name:  "warn-balance",
			Usage: "Print a warning if the sender can't pay the fees",
		},
	)
}

func handleTx(ctx *cli.Context, m mode) error {
	cfg, log, exitErr := options.GetConfigAndLogger(ctx)
	if exitErr != nil {
		return exitErr
	}
	defer func() { _ = log.Sync() }()
	addrVersion := cfg.ProtocolConfiguration.AddressVersion

	script, signerArgs, err := getScript(ctx, addrVersion)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	acc, err := options.GetAccount(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer acc.Close()
	signers, err := getSigners(acc, signerArgs, addrVersion)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	gctx, cancel := options.GetTimeoutContext(ctx)
	defer cancel()
	c, exitErr := options.GetRPCClient(gctx, ctx, cfg, log)
	if exitErr != nil {
		return exitErr
	}
	defer c.Close()

	act, err := actor.NewTuned(c, signers, actor.Options{Logger: log})
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to create actor: %w", err), 1)
	}
	if act.GetNetwork() != cfg.ProtocolConfiguration.Magic {
		return cli.NewExitError(fmt.Errorf("node network %s doesn't match configured %s",
			act.GetNetwork(), cfg.ProtocolConfiguration.Magic), 1)
	}
	b, err := configureBuilder(ctx, act.NewBuilder(script))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	var tx *transaction.Transaction
	if m == modeBuild {
		tx, err = b.GetUnsignedTx()
	} else {
		tx, err = b.Sign()
	}
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to create transaction: %w", err), 1)
	}
	log.Debug("transaction created",
		zap.Stringer("hash", tx.Hash()),
		zap.Int64("sysfee", tx.SystemFee),
		zap.Int64("netfee", tx.NetworkFee))

	if m != modeSend {
		fmt.Fprintln(ctx.App.Writer, base64.StdEncoding.EncodeToString(tx.Bytes()))
		return nil
	}
	h, vub, err := act.Send(tx)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to send transaction: %w", err), 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Sent transaction %s (valid until block %d)\n", h.StringLE(), vub)
	fmt.Fprintf(ctx.App.Writer, "System fee: %s GAS, network fee: %s GAS\n",
		fixedn.Fixed8(tx.SystemFee), fixedn.Fixed8(tx.NetworkFee))
	return nil
}

// getScript returns the transaction script and the remaining positional
// arguments that are expected to be signers.
func getScript(ctx *cli.Context, addrVersion byte) ([]byte, []string, error) {
	args := ctx.Args()
	if s := ctx.String("script"); s != "" {
		script, err := decodeScript(s, ctx.Bool("hex"))
		if err != nil {
			return nil, nil, err
		}
		return script, args, nil
	}
	if len(args) < 2 {
		return nil, nil, errors.New("either --script or contract and method are required")
	}
	h, err := flags.ParseAddress(args[0], addrVersion)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid contract hash: %w", err)
	}
	n, params, err := cmdargs.ParseParams(args[2:], true)
	if err != nil {
		return nil, nil, err
	}
	b := smartcontract.NewBuilder()
	b.ContractCall(h, args[1], params, callflag.All)
	script, err := b.Script()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create script: %w", err)
	}
	return script, args[2+n:], nil
}

func decodeScript(s string, isHex bool) ([]byte, error) {
	var (
		script []byte
		err    error
	)
	if isHex {
		script, err = hex.DecodeString(strings.TrimPrefix(s, "0x"))
	} else {
		script, err = base64.StdEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return script, nil
}

func getSigners(acc *wallet.Account, args []string, addrVersion byte) ([]actor.SignerAccount, error) {
	parsed, err := cmdargs.ParseSigners(args, addrVersion)
	if err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		parsed = []transaction.Signer{{
			Account: acc.ScriptHash(),
			Scopes:  transaction.CalledByEntry,
		}}
	}
	res := make([]actor.SignerAccount, 0, len(parsed))
	for i := range parsed {
		if !parsed[i].Account.Equals(acc.ScriptHash()) {
			return nil, fmt.Errorf("no key for signer %s", address.Uint160ToStringWithPrefix(parsed[i].Account, addrVersion))
		}
		res = append(res, actor.SignerAccount{Signer: parsed[i], Account: acc})
	}
	return res, nil
}

func configureBuilder(ctx *cli.Context, b *actor.Builder) (*actor.Builder, error) {
	var attrs []transaction.Attribute
	if ctx.Bool("high-priority") {
		attrs = append(attrs, transaction.Attribute{Type: transaction.HighPriority})
	}
	for _, s := range ctx.StringSlice("conflicts") {
		h, err := util.Uint256DecodeStringLE(s)
		if err != nil {
			return nil, fmt.Errorf("invalid conflicting transaction hash %s: %w", s, err)
		}
		attrs = append(attrs, transaction.Attribute{
			Type:  transaction.ConflictsT,
			Value: &transaction.Conflicts{Hash: h},
		})
	}
	if len(attrs) != 0 {
		b.SetAttributes(attrs...)
	}
	b.AddSystemFee(int64(flags.Fixed8FromContext(ctx, "sysfee")))
	b.AddNetworkFee(int64(flags.Fixed8FromContext(ctx, "netfee")))
	if ctx.IsSet("nonce") {
		nonce, err := uint32Flag(ctx, "nonce")
		if err != nil {
			return nil, err
		}
		b.SetNonce(nonce)
	}
	if ctx.IsSet("vub") {
		vub, err := uint32Flag(ctx, "vub")
		if err != nil {
			return nil, err
		}
		b.SetValidUntilBlock(vub)
	}
	if ctx.Bool("force") {
		b.AllowTransmissionOnFault()
	}
	if ctx.Bool("check-balance") {
		if err := b.ThrowIfSenderCannotCoverFees(nil); err != nil {
			return nil, err
		}
	}
	if ctx.Bool("warn-balance") {
		w := ctx.App.ErrWriter
		if w == nil {
			w = os.Stderr
		}
		err := b.DoIfSenderCannotCoverFees(func(required, balance *big.Int) {
			fmt.Fprintf(w, "Warning: sender balance %s GAS is less than required %s GAS\n",
				fixedn.BigString(balance), fixedn.BigString(required))
		})
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func uint32Flag(ctx *cli.Context, name string) (uint32, error) {
	v := ctx.Uint(name)
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("--%s value %d doesn't fit into 32 bits", name, v)
	}
	return uint32(v), nil
}
