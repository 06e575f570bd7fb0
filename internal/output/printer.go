package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer writes results to one writer and validation failures to another,
// optionally styling both through a StyleProvider.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	errWriter     io.Writer
	forcePlain    bool

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default it writes to os.Stdout and os.Stderr.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Print outputs text without any semantic styling.
func (p *Printer) Print(text string) {
	p.output(p.writer, SemanticPlain, text, false)
}

// Println outputs text with a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(p.writer, SemanticPlain, text, true)
}

// Info outputs informational text.
func (p *Printer) Info(text string) {
	p.output(p.writer, SemanticInfo, text, true)
}

// Success outputs success text.
func (p *Printer) Success(text string) {
	p.output(p.writer, SemanticSuccess, text, true)
}

// Warning outputs warning text to the error writer.
func (p *Printer) Warning(text string) {
	p.output(p.errWriter, SemanticWarning, text, true)
}

// Error outputs a validation failure line to the error writer.
func (p *Printer) Error(text string) {
	p.output(p.errWriter, SemanticError, text, true)
}

// Write implements io.Writer. Bytes go to the regular writer unstyled.
func (p *Printer) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writer.Write(b)
}

func (p *Printer) output(w io.Writer, semantic SemanticType, text string, addNewline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	provider := plainProvider
	if p.IsStylable() {
		provider = p.styleProvider
	}
	finalText := provider.GetStyle(string(semantic)).Render(text)

	if addNewline && !strings.HasSuffix(finalText, "\n") {
		finalText += "\n"
	}

	_, _ = fmt.Fprint(w, finalText) // Ignore write errors for console output
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}
