package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var CLI struct {
	Config string `help:"Path to an optional TOML config file." type:"path" env:"DIETLOG_CONFIG"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP server." default:"1"`
	Summary SummaryCmd `cmd:"" help:"Print today's summary as JSON."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("dietlog"),
		kong.Description("Personal diet and weight log"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&Globals{ConfigPath: CLI.Config}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
