// Package main is the entry point for the atl CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"atl/internal/app"
	"atl/internal/cli"
	"atl/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	container, err := app.New()
	if err != nil {
		// Allow running without credentials for no-args/help/version
		if errors.Is(err, domain.ErrMissingCredentials) {
			return runWithoutContainer(err)
		}
		return err
	}
	defer container.Close()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles cases where no credentials are
// configured. This keeps help and version output reachable without a
// working configuration.
func runWithoutContainer(cfgErr error) error {
	if canRunWithoutConfig(os.Args[1:]) {
		rootCmd := cli.NewRootCommand(nil, version)
		return rootCmd.Execute()
	}
	// For actual commands, surface the configuration error
	return cfgErr
}

func canRunWithoutConfig(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
