// Package main is the entry point for the matcher CLI.
// Its sole responsibility is loading configuration and running the root
// command. No business logic belongs here.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lesterlimjj/tp-sub001/internal/cli"
	"github.com/lesterlimjj/tp-sub001/internal/config"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Commands ---------------------------------------------------------
	root := cli.NewRootCmd(cfg)
	root.Version = fmt.Sprintf("%s (commit: %s)", version, commit)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
