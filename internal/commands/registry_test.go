package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequencer/internal/parser"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(HelpInfo{Command: "PRINT", Type: parser.Print}))

	info, ok := r.Get("PRINT")
	assert.True(t, ok)
	assert.Equal(t, parser.Print, info.Type)

	_, ok = r.Get("FOO")
	assert.False(t, ok)
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(HelpInfo{}))

	require.NoError(t, r.Register(HelpInfo{Command: "CLIP"}))
	err := r.Register(HelpInfo{Command: "CLIP"})
	assert.EqualError(t, err, "command CLIP already registered")
}

func TestRegistry_GetAllKeepsOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"SWAP", "COPY", "CLIP"} {
		require.NoError(t, r.Register(HelpInfo{Command: name}))
	}

	var names []string
	for _, info := range r.GetAll() {
		names = append(names, info.Command)
	}
	assert.Equal(t, []string{"SWAP", "COPY", "CLIP"}, names)
}

func TestCatalog_CoversEveryCommand(t *testing.T) {
	all := All()
	require.Len(t, all, 7)
	for _, info := range all {
		assert.Equal(t, info.Command, info.Type.String())
		assert.Equal(t, info.Type, parser.ParseCommandType(info.Command))
		assert.NotEmpty(t, info.Usage)
		assert.NotEmpty(t, info.Examples)
	}
}

func TestMarkdown(t *testing.T) {
	info, ok := Lookup("SWAP")
	require.True(t, ok)

	md := info.Markdown()
	assert.Contains(t, md, "## SWAP")
	assert.Contains(t, md, "`SWAP <pos1> <start1> <pos2> <start2>`")
	assert.Contains(t, md, "| start2 | int | yes |")
	assert.Contains(t, md, "> A start equal to the sequence length selects an empty tail")
}

func TestOverviewMarkdown(t *testing.T) {
	md := OverviewMarkdown()
	for _, info := range All() {
		assert.Contains(t, md, "| "+info.Command+" |")
	}
}

func TestUsageText(t *testing.T) {
	text := UsageText()
	assert.Contains(t, text, "INSERT <pos> <DNA|RNA> <sequence>")
	assert.Contains(t, text, "PRINT [pos]")
}
