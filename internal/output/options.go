package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithStyles configures the printer to use the provided StyleProvider.
// A nil or unavailable provider leaves the printer plain.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter sets the writer for regular output. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithErrorWriter sets the writer for Warning and Error output.
// Default is os.Stderr.
func WithErrorWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.errWriter = writer
		}
	}
}

// PlainText forces plain text output, ignoring any StyleProvider.
func PlainText() Option {
	return func(p *Printer) {
		p.forcePlain = true
	}
}
