package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequencer/internal/config"
	"sequencer/internal/logger"
	"sequencer/internal/orchestration"
	"sequencer/internal/processor"
	"sequencer/internal/testutils"
	"sequencer/internal/theme"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand([]string{t.TempDir()})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--test-mode"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	return testutils.CreateTempFile(t, "script.seq", content)
}

func TestRoot_RequiresFile(t *testing.T) {
	_, _, err := execute(t)
	assert.ErrorIs(t, err, ErrNoFile)
	assert.EqualError(t, err, "File name is required")
}

func TestRoot_RunsFile(t *testing.T) {
	path := writeScript(t, "INSERT 0 DNA AAAA\nINSERT 1 DNA CCCC\nSWAP 0 2 1 2\nPRINT\nPRINT 8\n")

	stdout, stderr, err := execute(t, "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "Position: 0, Type: DNA, Sequence: AACC\nPosition: 1, Type: DNA, Sequence: CCAA\n", stdout)
	assert.Equal(t, "The position out of range.\n", stderr)
}

func TestRoot_Capacity(t *testing.T) {
	path := writeScript(t, "INSERT 1 RNA ACGU\nPRINT\n")

	tests := []struct {
		name   string
		args   []string
		stdout string
		stderr string
	}{
		{name: "default capacity", args: []string{"-f", path}, stdout: "Position: 1, Type: RNA, Sequence: ACGU\n"},
		{name: "one slot", args: []string{"-m", "1", "-f", path}, stderr: "The position out of range.\n"},
		{name: "run subcommand", args: []string{"run", "--capacity", "2", path}, stdout: "Position: 1, Type: RNA, Sequence: ACGU\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.stdout, stdout)
			assert.Equal(t, tt.stderr, stderr)
		})
	}
}

func TestRoot_NegativeCapacity(t *testing.T) {
	path := writeScript(t, "PRINT\n")
	_, _, err := execute(t, "--capacity=-3", "-f", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_Strict(t *testing.T) {
	path := writeScript(t, "INSERT 0 DNA A\nINSERT 1 DNA\nPRINT\n")

	stdout, stderr, err := execute(t, "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "Position: 0, Type: DNA, Sequence: A\n", stdout)
	assert.Equal(t, "Malformed command \"INSERT 1 DNA\": missing parameter sequence\n", stderr)

	stdout, _, err = execute(t, "--strict", "-f", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, processor.ErrMalformedCommand)
	assert.Contains(t, err.Error(), "line 2")
	assert.Empty(t, stdout)
}

func TestRoot_MissingFile(t *testing.T) {
	_, _, err := execute(t, "-f", filepath.Join(t.TempDir(), "missing.seq"))
	assert.ErrorIs(t, err, orchestration.ErrOpen)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sequencer v")

	stdout, _, err = execute(t, "version", "--detailed")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Go Version:")
}

func TestNewPrinter(t *testing.T) {
	var stdout, stderr bytes.Buffer

	plain := newPrinter(&stdout, &stderr, nil)
	assert.False(t, plain.IsStylable())
	plain.Info("ready")
	plain.Warning("careful")
	assert.Equal(t, "ℹ ready\n", stdout.String())
	assert.Equal(t, "⚠ careful\n", stderr.String())

	th, err := theme.Load("dark")
	require.NoError(t, err)
	assert.True(t, newPrinter(&stdout, &stderr, th).IsStylable())
}

func TestRoot_LogFileIsReleased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequencer.log")
	script := writeScript(t, "PRINT\n")

	_, _, err := execute(t, "--log-file", path, "run", script)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	assert.FileExists(t, path)
	assert.NoError(t, logger.Close())
}
