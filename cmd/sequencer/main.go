// Package main provides the sequencer CLI entry point.
// The sequencer runs DNA/RNA fragment commands from a script file or an
// interactive shell.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sequencer/internal/commands"
	"sequencer/internal/config"
	"sequencer/internal/fragments"
	"sequencer/internal/logger"
	"sequencer/internal/orchestration"
	"sequencer/internal/output"
	"sequencer/internal/processor"
	"sequencer/internal/shell"
	"sequencer/internal/theme"
	"sequencer/internal/version"
)

// ErrNoFile is returned when the root command runs without -f.
var ErrNoFile = errors.New("File name is required")

// app holds the state resolved before a command runs.
type app struct {
	cfg     *config.Config
	printer *output.Printer
	theme   *theme.Theme
	dirs    []string
}

func main() {
	err := newRootCommand(config.DefaultSearchPaths()).Execute()
	if closeErr := logger.Close(); closeErr != nil {
		fmt.Fprintln(os.Stderr, "error closing log file:", closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(searchPaths []string) *cobra.Command {
	a := &app{dirs: searchPaths}

	rootCmd := &cobra.Command{
		Use:   "sequencer [-m #] [-l log_level] -f <file name>",
		Short: "Sequencer - DNA/RNA fragment command interpreter",
		Long: `Sequencer executes fragment commands from a plain text file, one command per line.
Commands are case-insensitive:

` + commands.UsageText(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			if a.cfg.File == "" {
				return ErrNoFile
			}
			return a.runBatch(a.cfg.File)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntP(config.KeyCapacity, "m", config.DefaultCapacity, "Max amount of space allocated for sequence fragments")
	flags.StringP(config.KeyLogLevel, "l", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyStrict, false, "Abort on malformed commands instead of skipping them")
	flags.String(config.KeyTheme, "default", "Color theme for the shell (default|dark|plain)")
	flags.Bool(config.KeyTestMode, false, "Run in deterministic test mode")
	rootCmd.Flags().StringP(config.KeyFile, "f", "", "File name containing commands for the sequencer")

	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a command file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runBatch(args[0])
		},
	}

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start interactive shell mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.runShell(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := version.ValidateVersion(); err != nil {
				return err
			}
			detailed, _ := cmd.Flags().GetBool("detailed")
			if detailed {
				a.printer.Println(version.GetDetailedVersion("Sequencer"))
			} else {
				a.printer.Println(version.GetFormattedVersion("Sequencer"))
			}
			return nil
		},
	}
	versionCmd.Flags().Bool("detailed", false, "Show detailed version information")

	rootCmd.AddCommand(runCmd, shellCmd, versionCmd)
	return rootCmd
}

// initConfig resolves configuration and sets up logging and output.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if err := config.BindFlags(v, cmd); err != nil {
		return err
	}

	cfg, err := config.Load(v, a.dirs...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}

	a.printer = newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), nil)
	if !cfg.TestMode {
		t, err := theme.ForTerminal(cfg.Theme)
		if err != nil {
			return err
		}
		a.theme = t
	}
	output.SetGlobalPrinter(a.printer)
	return nil
}

// newPrinter builds the console printer. Batch output stays plain so console
// lines are exact; only the shell passes a theme.
func newPrinter(stdout, stderr io.Writer, styles output.StyleProvider) *output.Printer {
	if styles == nil {
		return output.NewPrinter(output.WithWriter(stdout), output.WithErrorWriter(stderr), output.PlainText())
	}
	return output.NewPrinter(output.WithWriter(stdout), output.WithErrorWriter(stderr), output.WithStyles(styles))
}

func (a *app) newProcessor() *processor.Processor {
	return processor.New(
		fragments.New(a.cfg.Capacity),
		processor.WithPrinter(a.printer),
		processor.WithStrict(a.cfg.Strict),
	)
}

func (a *app) runBatch(scriptPath string) error {
	logger.Debug("Starting batch mode", "version", version.GetVersion(), "script", scriptPath, "capacity", a.cfg.Capacity)

	stats, err := orchestration.ExecuteScript(scriptPath, a.newProcessor(), orchestration.WithTestMode(a.cfg.TestMode))
	if err != nil {
		logger.Debug("Script execution failed", "script", scriptPath, "error", err)
		return err
	}

	logger.Debug("Script executed successfully", "script", scriptPath, "commands", stats.Commands, "run", stats.RunID)
	return nil
}

func (a *app) runShell(stdout, stderr io.Writer) {
	logger.Debug("Starting interactive shell", "version", version.GetVersion())

	var styles output.StyleProvider
	if a.theme != nil {
		styles = a.theme
		a.printer = newPrinter(stdout, stderr, styles)
	}
	renderer := output.NewMarkdownRenderer(styles, 80)
	shell.New(a.newProcessor(), a.printer, renderer).Run()
}
