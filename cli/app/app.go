package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/R3E-Network/NeoRust-sub000/cli/smartcontract"
	"github.com/R3E-Network/NeoRust-sub000/cli/txcmd"
	"github.com/R3E-Network/NeoRust-sub000/cli/util"
	"github.com/R3E-Network/NeoRust-sub000/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "neotx\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates an instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "neotx"
	ctl.Version = config.Version
	ctl.Usage = "Neo N3 transaction construction and signing tool"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, txcmd.NewCommands()...)
	ctl.Commands = append(ctl.Commands, smartcontract.NewCommands()...)
	ctl.Commands = append(ctl.Commands, util.NewCommands()...)
	return ctl
}
