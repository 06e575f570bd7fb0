// Package cli provides command-line interface setup for seqtest.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sequencer/internal/golden"
	"sequencer/internal/logger"
	"sequencer/internal/version"
)

// DefaultTestDir is where test scripts live relative to the repository root.
const DefaultTestDir = "internal/golden/testdata"

// App represents the seqtest CLI application.
type App struct {
	Config golden.Config
}

// NewApp creates a new seqtest CLI application.
func NewApp() *App {
	return &App{Config: golden.Config{TestDir: DefaultTestDir, Capacity: golden.DefaultCapacity}}
}

// CreateRootCommand creates and configures the root command.
func (app *App) CreateRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "seqtest",
		Short: "Golden file testing tool for sequencer scripts",
		Long: `seqtest runs .seq scripts in-process and compares their console transcript
with recorded .expected files. It can record, run, diff and verify test cases.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.Configure(logLevel, "", false)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&app.Config.Verbose, "verbose", "v", false, "Verbose output")
	flags.StringVar(&app.Config.TestDir, "test-dir", DefaultTestDir, "Test directory")
	flags.IntVarP(&app.Config.Capacity, "capacity", "m", golden.DefaultCapacity, "Fragment slots for each script")
	flags.StringVarP(&logLevel, "log-level", "l", "", "Set log level (debug|info|warn|error)")

	app.addGoldenFileCommands(rootCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion("seqtest"))
		},
	})
	return rootCmd
}
