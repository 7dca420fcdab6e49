package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `name:"log-file" help:"Write logs to this file instead of stderr" type:"path"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play an interactive game in the terminal"`
	Replay   ReplayCmd        `cmd:"" help:"Apply a replay list and print the resulting state"`
	Simulate SimulateCmd      `cmd:"" help:"Play many random games and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("loveletter"),
		kong.Description("Love Letter card game engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
