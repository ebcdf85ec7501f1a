package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// version is set by ldflags during build
var version = "dev"

// CLI is the hand analyzer command line
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Log every calculation"`
	Calc    CalcCmd          `cmd:"" help:"Find the winner(s) of a complete table"`
	Eval    EvalCmd          `cmd:"" help:"Classify the best hand out of seven cards"`
	Deal    DealCmd          `cmd:"" help:"Deal a random table and find the winner(s)"`
}

// AfterApply runs once the flags have been parsed
func (c *CLI) AfterApply() error {
	if c.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handanalyzer"),
		kong.Description("Texas Hold'em hand evaluator and showdown calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
