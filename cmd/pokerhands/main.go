package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/pokerhands/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`
	NoColor  bool             `help:"Disable coloured output"`

	Compare  CompareCmd  `cmd:"" help:"Compare a hand against an opponent"`
	Classify ClassifyCmd `cmd:"" help:"Show the category and tie-break ranks of hands"`
	Check    CheckCmd    `cmd:"" help:"Check a file of hand pairs against expected results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhands"),
		kong.Description("Classify and compare five-card poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)

	app, err := newApp(&cli, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
