package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Server  ServerCmd        `cmd:"" help:"Run the spades table server"`
	Client  ClientCmd        `cmd:"" help:"Connect to a table as a player"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("spades"),
		kong.Description("Table server and client for four-player spades"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
