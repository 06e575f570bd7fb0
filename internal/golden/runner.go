// Package golden records and verifies the console transcript of sequencer
// scripts against .expected files.
package golden

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sequencer/internal/fragments"
	"sequencer/internal/orchestration"
	"sequencer/internal/output"
	"sequencer/internal/processor"
)

const (
	// ScriptExt is the extension of test scripts.
	ScriptExt = ".seq"
	// ExpectedExt is the extension of recorded transcripts.
	ExpectedExt = ".expected"
	// StderrMarker separates regular output from error output in a transcript.
	StderrMarker = "--- stderr ---"
)

// DefaultCapacity is the slot count scripts run with unless configured.
const DefaultCapacity = 8

// ErrNoExpected is returned when a test has not been recorded yet.
var ErrNoExpected = errors.New("no expected output recorded")

// Config selects the test directory and list size.
type Config struct {
	TestDir  string
	Capacity int
	Verbose  bool
}

// Run executes the script at scriptPath in-process and returns its transcript:
// everything written to stdout, then StderrMarker, then the error stream.
func Run(scriptPath string, capacity int) (string, error) {
	printer, stdout, stderr := output.NewCapturePrinter()
	proc := processor.New(fragments.New(capacity), processor.WithPrinter(printer))

	if _, err := orchestration.ExecuteScript(scriptPath, proc, orchestration.WithTestMode(true)); err != nil {
		return "", err
	}
	return Transcript(stdout.String(), stderr.String()), nil
}

// Transcript joins captured stdout and stderr into the recorded form.
func Transcript(stdout, stderr string) string {
	var b strings.Builder
	b.WriteString(stdout)
	if stdout != "" && !strings.HasSuffix(stdout, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(StderrMarker)
	b.WriteString("\n")
	b.WriteString(stderr)
	return b.String()
}

// ScriptPath returns the script file for a test name, with or without
// the .seq extension.
func ScriptPath(testDir, name string) string {
	return filepath.Join(testDir, TestName(name)+ScriptExt)
}

// ExpectedPath returns the transcript file for a test name.
func ExpectedPath(testDir, name string) string {
	return filepath.Join(testDir, TestName(name)+ExpectedExt)
}

// TestName strips directories and the .seq extension from name.
func TestName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), ScriptExt)
}

// FindTests returns the sorted names of all scripts in testDir.
func FindTests(testDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(testDir, "*"+ScriptExt))
	if err != nil {
		return nil, fmt.Errorf("failed to list tests in %s: %w", testDir, err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, TestName(m))
	}
	sort.Strings(names)
	return names, nil
}

func (c Config) capacity() int {
	if c.Capacity < 0 {
		return DefaultCapacity
	}
	return c.Capacity
}

// RunTest runs one test script and returns its transcript.
func (c Config) RunTest(name string) (string, error) {
	scriptPath := ScriptPath(c.TestDir, name)
	if _, err := os.Stat(scriptPath); err != nil {
		return "", fmt.Errorf("test script not found: %s: %w", scriptPath, err)
	}
	return Run(scriptPath, c.capacity())
}

// readExpected loads the recorded transcript for name.
func (c Config) readExpected(name string) (string, error) {
	expectedPath := ExpectedPath(c.TestDir, name)
	content, err := os.ReadFile(expectedPath)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNoExpected, expectedPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read expected file %s: %w", expectedPath, err)
	}
	return string(content), nil
}
