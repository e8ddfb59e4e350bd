// Package cmd contains the CLI commands for the fxa application.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eykd/fentarxiu-go/internal/config"
	"github.com/eykd/fentarxiu-go/internal/domain"
)

var rootCmd *cobra.Command

// verbose holds the global --verbose flag state.
var verbose bool

// jsonOutput holds the global --json flag state.
var jsonOutput bool

// configPath holds the global --config flag state.
var configPath string

// settings and logger are resolved before any subcommand runs.
var (
	settings = config.Defaults()
	logger   = slog.New(slog.DiscardHandler)
)

func init() {
	rootCmd = BuildCommandTree(domain.DefaultCatalogue())
}

// GetVerbose returns the current verbose flag state.
// This is used by other packages to check if debug logging is enabled.
func GetVerbose() bool {
	return verbose
}

// GetJSON returns the current global --json flag state.
func GetJSON() bool {
	return jsonOutput
}

// GetSettings returns the settings resolved from the environment and the
// config file.
func GetSettings() config.Settings {
	return settings
}

// NewRootCmd creates a new root command instance.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fxa",
		Short:         "Validate sheet-music archive file and folder names",
		Long:          "fxa checks that the files and folders of a sheet-music archive follow the naming conventions.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(cmd.ErrOrStderr(), verbose)
			s, err := loadSettings(configPath, os.Getenv, os.Getwd)
			if err != nil {
				return err
			}
			settings = s
			return nil
		},
	}

	// Add persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: nearest "+config.FileName+")")

	return cmd
}

// BuildCommandTree creates the root command with every subcommand wired to
// the given catalogue and the local filesystem.
func BuildCommandTree(cat *domain.Catalogue) *cobra.Command {
	root := NewRootCmd()
	runner := &serviceRunner{catalogue: cat}
	writer := &lockedLogWriter{}

	root.AddCommand(NewCheckCmd(runner))
	root.AddCommand(NewFilesCmd(runner, writer))
	root.AddCommand(NewFoldersCmd(runner, writer))
	root.AddCommand(NewCatalogueCmd(cat))
	return root
}

// Execute runs the root command and returns any error.
// Deprecated: Use ExecuteContext instead for proper signal handling.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
