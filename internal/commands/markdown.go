package commands

import (
	"fmt"
	"strings"
)

// Markdown renders the help of one command.
func (h HelpInfo) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", h.Command, h.Description)
	fmt.Fprintf(&b, "Usage: `%s`\n\n", h.Usage)

	if len(h.Parameters) > 0 {
		b.WriteString("| Parameter | Type | Required | Description |\n|---|---|---|---|\n")
		for _, p := range h.Parameters {
			required := "no"
			if p.Required {
				required = "yes"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Name, p.Type, required, p.Description)
		}
		b.WriteString("\n")
	}

	if len(h.Examples) > 0 {
		b.WriteString("Examples:\n\n")
		for _, e := range h.Examples {
			fmt.Fprintf(&b, "- `%s` %s\n", e.Command, e.Description)
		}
		b.WriteString("\n")
	}

	for _, note := range h.Notes {
		fmt.Fprintf(&b, "> %s\n\n", note)
	}
	return b.String()
}

// OverviewMarkdown renders a table of every command in the global registry.
func OverviewMarkdown() string {
	var b strings.Builder
	b.WriteString("# Sequencer commands\n\n| Command | Usage | Description |\n|---|---|---|\n")
	for _, h := range All() {
		fmt.Fprintf(&b, "| %s | `%s` | %s |\n", h.Command, h.Usage, h.Description)
	}
	b.WriteString("\nCommands are case-insensitive. Type `help <command>` for details.\n")
	return b.String()
}

// UsageText renders a plain usage summary for CLI help.
func UsageText() string {
	var b strings.Builder
	for _, h := range All() {
		fmt.Fprintf(&b, "  %-38s %s\n", h.Usage, h.Description)
	}
	return b.String()
}
