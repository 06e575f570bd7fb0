package golden

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Mismatch reports a transcript that differs from its recorded output.
type Mismatch struct {
	Name     string
	Expected string
	Actual   string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("test %s: output doesn't match expected", m.Name)
}

// Diff renders a line diff from the expected to the actual transcript.
func (m *Mismatch) Diff() string {
	return LineDiff(m.Expected, m.Actual)
}

// Verify runs the named test and compares it with the recorded transcript.
// A difference is returned as a *Mismatch.
func (c Config) Verify(name string) error {
	expected, err := c.readExpected(name)
	if err != nil {
		return err
	}
	actual, err := c.RunTest(name)
	if err != nil {
		return err
	}

	if normalize(expected) != normalize(actual) {
		return &Mismatch{Name: TestName(name), Expected: expected, Actual: actual}
	}
	return nil
}

// Result is the outcome of VerifyAll.
type Result struct {
	Passed []string
	Failed map[string]error
}

// OK reports whether every test passed.
func (r Result) OK() bool {
	return len(r.Failed) == 0
}

// VerifyAll verifies every script in the test directory.
func (c Config) VerifyAll() (Result, error) {
	names, err := FindTests(c.TestDir)
	if err != nil {
		return Result{}, err
	}

	result := Result{Failed: make(map[string]error)}
	for _, name := range names {
		if err := c.Verify(name); err != nil {
			result.Failed[name] = err
			continue
		}
		result.Passed = append(result.Passed, name)
	}
	return result, nil
}

// LineDiff renders a line-level diff with "-" for expected-only lines,
// "+" for actual-only lines and two spaces for common lines.
func LineDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(normalize(expected)+"\n", normalize(actual)+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
		}
	}
	return out.String()
}

func normalize(transcript string) string {
	return strings.TrimRight(strings.ReplaceAll(transcript, "\r\n", "\n"), "\n")
}
