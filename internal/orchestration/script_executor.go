// Package orchestration runs command scripts through a line processor.
package orchestration

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"sequencer/internal/logger"
	"sequencer/internal/testutils"
)

// maxLineSize bounds a single script line. Longer lines fail the run.
const maxLineSize = 1024 * 1024

var (
	// ErrOpen is wrapped when a script file cannot be opened.
	ErrOpen = errors.New("failed to open file")

	// ErrScript is wrapped by failures reading an opened script.
	ErrScript = errors.New("script error")
)

// LineProcessor executes one raw command line.
type LineProcessor interface {
	ProcessCommand(line string) error
}

// Option configures a script run.
type Option func(*runOptions)

type runOptions struct {
	testMode bool
}

// WithTestMode makes run ids deterministic.
func WithTestMode(testMode bool) Option {
	return func(o *runOptions) {
		o.testMode = testMode
	}
}

// Stats summarizes a script run.
type Stats struct {
	RunID    string
	Lines    int
	Commands int
	Blank    int
}

// LineError reports the script line that aborted a run.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ExecuteScript opens scriptPath and feeds every line, in file order, to proc.
func ExecuteScript(scriptPath string, proc LineProcessor, opts ...Option) (Stats, error) {
	file, err := os.Open(scriptPath)
	if err != nil {
		return Stats{}, fmt.Errorf("%w %s: %w", ErrOpen, scriptPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.Debug("Failed to close script", "script", scriptPath, "error", cerr)
		}
	}()

	logger.Debug("Starting script execution", "script", scriptPath)
	stats, err := ExecuteLines(file, proc, opts...)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", scriptPath, err)
	}

	logger.Debug("Script execution completed", "script", scriptPath, "run", stats.RunID, "commands", stats.Commands)
	return stats, nil
}

// ExecuteLines feeds every line of r to proc. A processor error stops the
// run and is returned as a *LineError carrying the 1-based line number.
func ExecuteLines(r io.Reader, proc LineProcessor, opts ...Option) (Stats, error) {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	stats := Stats{RunID: testutils.GenerateRunID(o.testMode)}
	runLog := logger.NewStyledLogger("Script").With("run", stats.RunID)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			stats.Blank++
			continue
		}

		stats.Commands++
		runLog.Debug("Executing line", "line", stats.Lines)
		if err := proc.ProcessCommand(line); err != nil {
			runLog.Debug("Line failed", "line", stats.Lines, "error", err)
			return stats, &LineError{Line: stats.Lines, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("%w: failed to read line %d: %w", ErrScript, stats.Lines+1, err)
	}
	return stats, nil
}
