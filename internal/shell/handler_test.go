package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequencer/internal/fragments"
	"sequencer/internal/output"
	"sequencer/internal/processor"
)

func newTestShell(t *testing.T, strict bool) (*Shell, *output.CaptureBuffer, *output.CaptureBuffer) {
	t.Helper()
	printer, stdout, stderr := output.NewCapturePrinter()
	proc := processor.New(fragments.New(4), processor.WithPrinter(printer), processor.WithStrict(strict))
	return New(proc, printer, nil), stdout, stderr
}

func TestProcessInput(t *testing.T) {
	sh, stdout, stderr := newTestShell(t, false)

	sh.ProcessInput("  insert 0 dna acgt  ")
	sh.ProcessInput("print")
	sh.ProcessInput("")

	assert.Equal(t, "Position: 0, Type: DNA, Sequence: ACGT\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestProcessInput_DomainErrorsKeepSessionAlive(t *testing.T) {
	sh, stdout, stderr := newTestShell(t, false)

	sh.ProcessInput("PRINT 9")
	sh.ProcessInput("INSERT 1 RNA AU")
	sh.ProcessInput("PRINT 1")

	assert.Equal(t, "The position out of range.\n", stderr.String())
	assert.Equal(t, "Position: 1, Type: RNA, Sequence: AU\n", stdout.String())
}

func TestProcessInput_StrictErrorsArePrinted(t *testing.T) {
	sh, _, stderr := newTestShell(t, true)

	sh.ProcessInput("CLIP 0")

	lines := stderr.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, `Error: malformed command "CLIP 0": missing parameter start`, lines[0])
	assert.Equal(t, "⚠ Type 'help' for available commands", lines[1])
}

func TestDispatch_LinesReachProcessorUnchanged(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "quoted sequence", line: `INSERT 0 DNA "ACGT"`},
		{name: "unbalanced quote", line: `INSERT 0 DNA "ACGT`},
		{name: "plain insert", line: "INSERT 0 DNA ACGT"},
		{name: "extra spacing", line: "INSERT   0  RNA   AU"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, shellOut, shellErr := newTestShell(t, false)
			assert.True(t, sh.Dispatch(tt.line))
			sh.Dispatch("PRINT")

			printer, batchOut, batchErr := output.NewCapturePrinter()
			proc := processor.New(fragments.New(4), processor.WithPrinter(printer))
			require.NoError(t, proc.ProcessCommand(tt.line))
			require.NoError(t, proc.ProcessCommand("PRINT"))

			assert.Equal(t, batchOut.String(), shellOut.String())
			assert.Equal(t, batchErr.String(), shellErr.String())
		})
	}
}

func TestDispatch_QuotedSequenceIsInvalid(t *testing.T) {
	sh, stdout, stderr := newTestShell(t, false)

	sh.Dispatch(`INSERT 0 DNA "ACGT"`)

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Invalid sequence.")
}

func TestDispatch_Builtins(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		cont   bool
		stdout string
		stderr string
	}{
		{name: "blank", line: "   ", cont: true},
		{name: "exit", line: "exit", cont: false},
		{name: "quit upper", line: "QUIT", cont: false},
		{name: "help", line: "help swap", cont: true, stdout: "SWAP <pos1> <start1> <pos2> <start2>"},
		{name: "help unknown", line: "help fold", cont: true, stderr: "Unknown command: FOLD\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, stdout, stderr := newTestShell(t, false)

			assert.Equal(t, tt.cont, sh.Dispatch(tt.line))
			if tt.stdout == "" {
				assert.Empty(t, stdout.String())
			} else {
				assert.Contains(t, stdout.String(), tt.stdout)
			}
			assert.Equal(t, tt.stderr, stderr.String())
		})
	}
}

func TestHelp(t *testing.T) {
	sh, _, _ := newTestShell(t, false)

	tests := []struct {
		name     string
		args     []string
		contains string
		wantErr  bool
	}{
		{name: "overview", contains: "# Sequencer commands"},
		{name: "single command", args: []string{"swap"}, contains: "SWAP <pos1> <start1> <pos2> <start2>"},
		{name: "unknown command", args: []string{"fold"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := sh.Help(tt.args)
			if tt.wantErr {
				assert.EqualError(t, err, "Unknown command: FOLD")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, text, tt.contains)
		})
	}
}

func TestHelp_Rendered(t *testing.T) {
	printer, _, _ := output.NewCapturePrinter()
	proc := processor.New(fragments.New(1), processor.WithPrinter(printer))
	sh := New(proc, printer, output.NewMarkdownRenderer(nil, 80))

	text, err := sh.Help([]string{"transcribe"})
	require.NoError(t, err)
	assert.Contains(t, text, "TRANSCRIBE")
}

func TestBanner(t *testing.T) {
	assert.Contains(t, Banner(), "Sequencer v")
	assert.Contains(t, Banner(), "'exit'")
}
