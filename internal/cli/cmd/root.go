// Package cmd provides Cobra CLI commands for listnav.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/listnav/internal/cli"
	"github.com/bnema/listnav/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "listnav",
		Short: "Accessible listbox, tabs and combobox interaction engine",
		Long: `listnav - keyboard and pointer interaction for lists, tabs and comboboxes.

The engine implements the listbox, tabs and combobox interaction patterns:
navigation with wrap and disabled skipping, single and multi selection,
typeahead, roving tabindex or active-descendant focus, and filtering
comboboxes with inline completion.

Features:
  - Interactive terminal demos for every pattern
  - Scripted key sequences with JSON snapshots
  - Built-in item sources plus user sources stored in SQLite
  - Live config reload

Use 'listnav demo listbox' to try a pattern, or 'listnav simulate' to
replay a key script without a terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
