package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"sequencer/internal/golden"
	"sequencer/internal/output"
)

// newPrinter writes plain results to the command's streams.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithErrorWriter(cmd.ErrOrStderr()),
		output.PlainText(),
	)
}

// addGoldenFileCommands adds golden file testing commands.
func (app *App) addGoldenFileCommands(rootCmd *cobra.Command) {
	runCmd := &cobra.Command{
		Use:   "run <testname>",
		Short: "Run a test script and print its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, err := app.Config.RunTest(args[0])
			if err != nil {
				return err
			}
			newPrinter(cmd).Print(transcript)
			return nil
		},
	}

	recordCmd := &cobra.Command{
		Use:   "record <testname>",
		Short: "Record the current transcript as expected output",
		Long: `Record a test case by running its .seq script and saving the transcript
as a golden file for future comparisons.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.Record(args[0]); err != nil {
				return err
			}
			if app.Config.Verbose {
				newPrinter(cmd).Success("Recorded expected output for test: " + golden.TestName(args[0]))
			}
			return nil
		},
	}

	verifyCmd := &cobra.Command{
		Use:   "verify <testname>",
		Short: "Compare a test script with its expected output",
		Long: `Run a test case and compare its transcript with the expected golden file.
Returns exit code 0 if the test passes, non-zero if it fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			err := app.Config.Verify(args[0])
			var mismatch *golden.Mismatch
			if errors.As(err, &mismatch) {
				printer.Print(mismatch.Diff())
				return err
			}
			if err == nil && app.Config.Verbose {
				printer.Success("Test passed: " + golden.TestName(args[0]))
			}
			return err
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff <testname>",
		Short: "Show differences between expected and actual output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showDiff(newPrinter(cmd), args[0])
		},
	}

	verifyAllCmd := &cobra.Command{
		Use:   "verify-all",
		Short: "Verify every test script in the test directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.verifyAll(newPrinter(cmd))
		},
	}

	rootCmd.AddCommand(runCmd, recordCmd, verifyCmd, diffCmd, verifyAllCmd)
}

func (app *App) showDiff(p *output.Printer, name string) error {
	p.Println(fmt.Sprintf("=== Test: %s ===", golden.TestName(name)))

	err := app.Config.Verify(name)
	var mismatch *golden.Mismatch
	switch {
	case err == nil:
		p.Success("No differences found - test passes!")
		return nil
	case errors.As(err, &mismatch):
		p.Print(mismatch.Diff())
		return nil
	default:
		return err
	}
}

func (app *App) verifyAll(p *output.Printer) error {
	result, err := app.Config.VerifyAll()
	if err != nil {
		return err
	}

	for _, name := range result.Passed {
		p.Println("PASS " + name)
	}
	failed := make([]string, 0, len(result.Failed))
	for name := range result.Failed {
		failed = append(failed, name)
	}
	sort.Strings(failed)
	for _, name := range failed {
		p.Println(fmt.Sprintf("FAIL %s: %v", name, result.Failed[name]))
	}
	p.Println(fmt.Sprintf("\nResults: %d passed, %d failed", len(result.Passed), len(result.Failed)))

	if !result.OK() {
		return fmt.Errorf("tests failed: %s", strings.Join(failed, ", "))
	}
	return nil
}
