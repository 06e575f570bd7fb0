package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders help text written in markdown for the terminal.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer matching the style provider's theme.
// A nil provider renders without colors.
func NewMarkdownRenderer(styleProvider StyleProvider, width int) *MarkdownRenderer {
	themeStyle := "notty"
	if styleProvider != nil && styleProvider.IsAvailable() {
		themeStyle = styleProvider.GetThemeType()
	}

	var renderer *glamour.TermRenderer
	var err error
	if themeStyle != "auto" {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(themeStyle),
			glamour.WithWordWrap(width),
		)
	}

	if renderer == nil || err != nil {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
			glamour.WithEnvironmentConfig(),
		)
		if err != nil {
			renderer = nil
		}
	}

	return &MarkdownRenderer{renderer: renderer}
}

// IsAvailable reports whether glamour rendering is usable.
func (m *MarkdownRenderer) IsAvailable() bool {
	return m.renderer != nil
}

// Render returns the rendered markdown, or the source when rendering fails.
func (m *MarkdownRenderer) Render(markdown string) string {
	if m.renderer == nil {
		return markdown
	}
	rendered, err := m.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(rendered, "\n") + "\n"
}
