package main

import (
	"os"

	"github.com/pluqqy/snipmux/cmd/commands"
	"github.com/pluqqy/snipmux/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		cli.PrintError(os.Stderr, "Error: %v", err)
		os.Exit(1)
	}
}
