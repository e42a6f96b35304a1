// Package main is the entry point for the todo-iq CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/todo-iq/internal/app"
	"github.com/runoshun/todo-iq/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	// Create dependency injection container
	container, err := app.New(app.Options{})
	if err != nil {
		// A broken config file must not hide help and version
		if canRunWithoutConfig(args) {
			return runWithoutContainer(args)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() {
		if closeErr := container.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// runWithoutContainer runs help and version output without loading the config.
func runWithoutContainer(args []string) error {
	rootCmd := cli.NewRootCommand(nil, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func canRunWithoutConfig(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
