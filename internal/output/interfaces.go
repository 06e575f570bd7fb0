// Package output provides the console output system for the sequencer.
// Results go to the standard writer and validation failures to the error
// writer; styling is optional and injected through a StyleProvider.
package output

// StyleProvider is implemented by styling back ends (see internal/theme)
// to render text according to its semantic type.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider is ready to style text.
	// Printers fall back to plain text otherwise.
	IsAvailable() bool

	// GetThemeType returns the glamour style name matching the provider
	// ("dark", "light", "notty" or "auto").
	GetThemeType() string
}

// TextStyle renders text with styling.
type TextStyle interface {
	Render(text string) string
}

// SemanticType names the role of a line for styling.
type SemanticType string

const (
	SemanticPlain   SemanticType = "plain"
	SemanticInfo    SemanticType = "info"
	SemanticSuccess SemanticType = "success"
	SemanticWarning SemanticType = "warning"
	// SemanticError marks validation failures. Plain rendering leaves
	// them untouched so console lines stay exact.
	SemanticError SemanticType = "error"
)
