/*
Package options holds the flags shared by CLI commands and the helpers that
turn them into configuration, loggers, RPC clients and accounts.
*/
package options

import (
	"time"

	"github.com/urfave/cli"
)

// DefaultTimeout is the overall timeout of a command's RPC interaction.
const DefaultTimeout = 10 * time.Second

// RPCEndpointFlag is the long name of the endpoint flag.
const RPCEndpointFlag = "rpc-endpoint"

const (
	configPathFlag = "config-path"
	configFileFlag = "config-file"
	debugFlag      = "debug"
	timeoutFlag    = "timeout"
	wifFlag        = "wif"
)

// Network flags select the network, PrivNet is used if none is given. They
// only matter when no configuration file is given.
var Network = []cli.Flag{
	cli.BoolFlag{Name: "privnet, p", Usage: "operate on the private network"},
	cli.BoolFlag{Name: "mainnet, m", Usage: "operate on the main network"},
	cli.BoolFlag{Name: "testnet, t", Usage: "operate on the test network"},
	cli.BoolFlag{Name: "unittest", Hidden: true},
}

// RPC flags configure the node connection.
var RPC = []cli.Flag{
	cli.StringFlag{
		Name:  RPCEndpointFlag + ", r",
		Usage: "RPC node URL, overrides the configured one",
	},
	cli.DurationFlag{
		Name:  timeoutFlag + ", s",
		Value: DefaultTimeout,
		Usage: "timeout for the whole operation",
	},
}

// Config is the flag pointing to a directory of per-network configuration
// files.
var Config = cli.StringFlag{
	Name:  configPathFlag,
	Usage: "directory with per-network configuration files",
}

// ConfigFile is the flag pointing to a single configuration file, it takes
// precedence over Config.
var ConfigFile = cli.StringFlag{
	Name:  configFileFlag,
	Usage: "configuration file, overrides --" + configPathFlag,
}

// Debug enables debug logging.
var Debug = cli.BoolFlag{
	Name:  debugFlag + ", d",
	Usage: "log debug messages regardless of the configured level",
}

// WIF is the signing key flag.
var WIF = cli.StringFlag{
	Name:  wifFlag,
	Usage: "WIF-encoded private key to sign with, asked for interactively if omitted",
}

// Addressing combines the flags selecting the configuration (and thus the
// address version) for commands working offline.
var Addressing = append([]cli.Flag{Config, ConfigFile}, Network...)

// Common combines the flags of commands talking to RPC nodes.
var Common = append(append([]cli.Flag{Config, ConfigFile, Debug}, Network...), RPC...)
