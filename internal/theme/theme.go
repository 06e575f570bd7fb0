// Package theme loads the embedded YAML color themes and exposes them as an
// output.StyleProvider backed by lipgloss styles.
package theme

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"sequencer/internal/logger"
	"sequencer/internal/output"
)

//go:embed themes/*.yaml
var themeFiles embed.FS

// StyleConfig is the YAML form of a single style.
type StyleConfig struct {
	Foreground interface{} `yaml:"foreground"`
	Background interface{} `yaml:"background"`
	Bold       *bool       `yaml:"bold"`
	Italic     *bool       `yaml:"italic"`
	Underline  *bool       `yaml:"underline"`
}

// File is the YAML form of a theme.
type File struct {
	Name    string                 `yaml:"name"`
	Glamour string                 `yaml:"glamour"`
	Styles  map[string]StyleConfig `yaml:"styles"`
}

// Theme maps semantic output types to lipgloss styles.
type Theme struct {
	Name    string
	glamour string
	styles  map[string]lipgloss.Style
	enabled bool
}

var _ output.StyleProvider = (*Theme)(nil)

// Parse builds a theme from YAML data.
func Parse(data []byte) (*Theme, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("theme file has no name")
	}

	t := &Theme{
		Name:    file.Name,
		glamour: file.Glamour,
		styles:  make(map[string]lipgloss.Style, len(file.Styles)),
		enabled: true,
	}
	if t.glamour == "" {
		t.glamour = "auto"
	}
	for semantic, cfg := range file.Styles {
		t.styles[semantic] = createStyle(cfg)
	}
	return t, nil
}

func createStyle(cfg StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()
	if color := parseColor(cfg.Foreground); color != nil {
		style = style.Foreground(color)
	}
	if color := parseColor(cfg.Background); color != nil {
		style = style.Background(color)
	}
	if cfg.Bold != nil && *cfg.Bold {
		style = style.Bold(true)
	}
	if cfg.Italic != nil && *cfg.Italic {
		style = style.Italic(true)
	}
	if cfg.Underline != nil && *cfg.Underline {
		style = style.Underline(true)
	}
	return style
}

// parseColor accepts a color string or a {light, dark} map.
func parseColor(value interface{}) lipgloss.TerminalColor {
	switch v := value.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}

// GetStyle implements output.StyleProvider. Semantics without a configured
// style render unchanged.
func (t *Theme) GetStyle(semantic string) output.TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return textStyle{style}
	}
	return textStyle{lipgloss.NewStyle()}
}

// textStyle adapts the variadic lipgloss Render to output.TextStyle.
type textStyle struct {
	style lipgloss.Style
}

func (s textStyle) Render(text string) string {
	return s.style.Render(text)
}

// IsAvailable implements output.StyleProvider.
func (t *Theme) IsAvailable() bool {
	return t.enabled
}

// GetThemeType implements output.StyleProvider.
func (t *Theme) GetThemeType() string {
	return t.glamour
}

// Names returns the embedded theme names, sorted.
func Names() []string {
	entries, err := themeFiles.ReadDir("themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load returns the embedded theme called name. Unknown names fall back to
// the plain theme with a debug log entry.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "plain"
	}

	data, err := themeFiles.ReadFile("themes/" + name + ".yaml")
	if err != nil {
		logger.Debug("Invalid theme requested, using plain theme", "theme", name, "available", Names())
		data, err = themeFiles.ReadFile("themes/plain.yaml")
		if err != nil {
			return nil, fmt.Errorf("plain theme missing: %w", err)
		}
	}
	return Parse(data)
}

// ForTerminal loads name and disables it when the terminal cannot show
// colors: NO_COLOR is set or termenv detects an ASCII profile.
func ForTerminal(name string) (*Theme, error) {
	t, err := Load(name)
	if err != nil {
		return nil, err
	}
	if os.Getenv("NO_COLOR") != "" || termenv.NewOutput(os.Stdout).Profile == termenv.Ascii || t.Name == "plain" {
		t.enabled = false
	}
	return t, nil
}
