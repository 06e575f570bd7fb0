package output

// plainStyle prepends a status marker and adds no escape codes.
type plainStyle string

func (s plainStyle) Render(text string) string {
	return string(s) + text
}

// plainStyles marks status lines with a symbol. Errors and plain text carry
// no marker so console lines stay exact.
type plainStyles struct{}

var plainProvider StyleProvider = plainStyles{}

func (plainStyles) GetStyle(semantic string) TextStyle {
	switch SemanticType(semantic) {
	case SemanticSuccess:
		return plainStyle("✓ ")
	case SemanticWarning:
		return plainStyle("⚠ ")
	case SemanticInfo:
		return plainStyle("ℹ ")
	default:
		return plainStyle("")
	}
}

func (plainStyles) IsAvailable() bool { return true }

// GetThemeType returns "notty" so markdown renders without colors.
func (plainStyles) GetThemeType() string { return "notty" }
