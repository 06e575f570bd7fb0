package orchestration

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequencer/internal/fragments"
	"sequencer/internal/output"
	"sequencer/internal/processor"
	"sequencer/internal/testutils"
)

type recordingProcessor struct {
	lines  []string
	failOn string
}

func (r *recordingProcessor) ProcessCommand(line string) error {
	r.lines = append(r.lines, line)
	if r.failOn != "" && line == r.failOn {
		return errors.New("boom")
	}
	return nil
}

func TestExecuteLines_Counts(t *testing.T) {
	proc := &recordingProcessor{}
	stats, err := ExecuteLines(strings.NewReader("INSERT 0 DNA A\n\n   \nPRINT\n"), proc)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 2, stats.Commands)
	assert.Equal(t, 2, stats.Blank)
	assert.Equal(t, []string{"INSERT 0 DNA A", "PRINT"}, proc.lines)

	_, err = uuid.Parse(stats.RunID)
	assert.NoError(t, err)
}

func TestExecuteLines_DeterministicRunID(t *testing.T) {
	testutils.ResetTestCounters()
	t.Cleanup(testutils.ResetTestCounters)

	stats, err := ExecuteLines(strings.NewReader("PRINT\n"), &recordingProcessor{}, WithTestMode(true))
	require.NoError(t, err)
	assert.Equal(t, "00000001-0000-4000-8000-000000000001", stats.RunID)
}

func TestExecuteLines_NoTrailingNewline(t *testing.T) {
	proc := &recordingProcessor{}
	stats, err := ExecuteLines(strings.NewReader("PRINT"), proc)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Commands)
}

func TestExecuteLines_StopsAtFailingLine(t *testing.T) {
	proc := &recordingProcessor{failOn: "BAD"}
	stats, err := ExecuteLines(strings.NewReader("PRINT\n\nBAD\nPRINT\n"), proc)

	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 3, lineErr.Line)
	assert.Equal(t, "BAD", lineErr.Text)
	assert.EqualError(t, err, "line 3: boom")
	assert.Equal(t, 3, stats.Lines)
	assert.Len(t, proc.lines, 2)
}

func TestExecuteLines_LineTooLong(t *testing.T) {
	proc := &recordingProcessor{}
	long := "INSERT 0 DNA " + strings.Repeat("A", maxLineSize)
	_, err := ExecuteLines(strings.NewReader(long), proc)
	assert.ErrorIs(t, err, ErrScript)
}

func TestExecuteScript(t *testing.T) {
	path := testutils.CreateTempFile(t, "basic.seq", "INSERT 0 DNA ACGT\nTRANSCRIBE 0\nPRINT 0\nREMOVE 5\n")

	printer, stdout, stderr := output.NewCapturePrinter()
	proc := processor.New(fragments.New(2), processor.WithPrinter(printer))

	stats, err := ExecuteScript(path, proc)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Commands)
	assert.Equal(t, "Position: 0, Type: RNA, Sequence: UCGT\n", stdout.String())
	assert.Equal(t, "The position out of range.\n", stderr.String())
}

func TestExecuteScript_StrictAbortsWithLineNumber(t *testing.T) {
	path := testutils.CreateTempFile(t, "strict.seq", "INSERT 0 DNA A\nCLIP 0\n")

	printer, _, _ := output.NewCapturePrinter()
	proc := processor.New(fragments.New(2), processor.WithPrinter(printer), processor.WithStrict(true))

	_, err := ExecuteScript(path, proc)
	require.Error(t, err)
	assert.ErrorIs(t, err, processor.ErrMalformedCommand)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), path)
}

func TestExecuteScript_MissingFile(t *testing.T) {
	_, err := ExecuteScript(filepath.Join(t.TempDir(), "missing.seq"), &recordingProcessor{})
	assert.ErrorIs(t, err, ErrOpen)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
