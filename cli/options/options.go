package options

import (
	"context"
	"errors"
	"fmt"

	"github.com/R3E-Network/NeoRust-sub000/cli/input"
	"github.com/R3E-Network/NeoRust-sub000/pkg/config"
	"github.com/R3E-Network/NeoRust-sub000/pkg/config/netmode"
	"github.com/R3E-Network/NeoRust-sub000/pkg/rpcclient"
	"github.com/R3E-Network/NeoRust-sub000/pkg/wallet"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var errNoEndpoint = errors.New("no RPC endpoint specified, use --" + RPCEndpointFlag + " or set it in the configuration")

// networkFlags are checked in order, the last one set wins.
var networkFlags = []struct {
	name string
	net  netmode.Magic
}{
	{"testnet", netmode.TestNet},
	{"mainnet", netmode.MainNet},
	{"unittest", netmode.UnitTestNet},
}

// GetNetwork returns the network selected by flags, PrivNet by default.
func GetNetwork(ctx *cli.Context) netmode.Magic {
	net := netmode.PrivNet
	for _, f := range networkFlags {
		if ctx.Bool(f.name) {
			net = f.net
		}
	}
	return net
}

// GetTimeoutContext returns a context limited by the --timeout flag or
// DefaultTimeout.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	timeout := ctx.Duration(timeoutFlag)
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// GetConfigFromContext loads the configuration file given by flags or
// returns the built-in one for the selected network.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	if file := ctx.String(configFileFlag); file != "" {
		return config.LoadFile(file)
	}
	if dir := ctx.String(configPathFlag); dir != "" {
		return config.Load(dir, GetNetwork(ctx))
	}
	return config.Default(GetNetwork(ctx)), nil
}

// GetAddressVersion returns the address version of the configured network.
func GetAddressVersion(ctx *cli.Context) (byte, error) {
	cfg, err := GetConfigFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return cfg.ProtocolConfiguration.AddressVersion, nil
}

// GetConfigAndLogger loads the configuration and creates a logger for it.
func GetConfigAndLogger(ctx *cli.Context) (config.Config, *zap.Logger, cli.ExitCoder) {
	cfg, err := GetConfigFromContext(ctx)
	if err != nil {
		return cfg, nil, cli.NewExitError(err, 1)
	}
	log, _, err := NewLogger(ctx.Bool(debugFlag), cfg.ApplicationConfiguration)
	if err != nil {
		return cfg, nil, cli.NewExitError(err, 1)
	}
	return cfg, log, nil
}

// GetRPCClient creates a client for the endpoint from the flag or, if not
// set, from the configuration.
func GetRPCClient(gctx context.Context, ctx *cli.Context, cfg config.Config, log *zap.Logger) (*rpcclient.Client, cli.ExitCoder) {
	rpcCfg := cfg.ApplicationConfiguration.RPC
	endpoint := ctx.String(RPCEndpointFlag)
	if endpoint == "" {
		endpoint = rpcCfg.Endpoint
	}
	if endpoint == "" {
		return nil, cli.NewExitError(errNoEndpoint, 1)
	}
	c, err := rpcclient.New(gctx, endpoint, rpcclient.Options{
		DialTimeout:       rpcCfg.DialTimeout,
		RequestTimeout:    rpcCfg.RequestTimeout,
		RequestsPerSecond: rpcCfg.RequestsPerSecond,
		Burst:             rpcCfg.Burst,
		Logger:            log,
	})
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}

// GetAccount creates an account from the --wif flag, the key is read from
// the terminal without echo if the flag is empty.
func GetAccount(ctx *cli.Context) (*wallet.Account, error) {
	wif := ctx.String(wifFlag)
	if wif == "" {
		var err error
		if wif, err = input.ReadPassword(ctx.App.Writer, "Enter WIF > "); err != nil {
			return nil, fmt.Errorf("error reading WIF: %w", err)
		}
	}
	acc, err := wallet.NewAccountFromWIF(wif)
	if err != nil {
		return nil, fmt.Errorf("invalid WIF: %w", err)
	}
	return acc, nil
}
