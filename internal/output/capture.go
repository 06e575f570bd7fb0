package output

import (
	"bytes"
	"strings"
)

// CaptureBuffer collects printer output in tests.
type CaptureBuffer struct {
	buf bytes.Buffer
}

func (c *CaptureBuffer) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *CaptureBuffer) String() string {
	return c.buf.String()
}

// Lines splits the captured output at newlines, ignoring the final one.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// NewCapturePrinter returns a plain printer and the buffers holding its
// regular and error output.
func NewCapturePrinter() (*Printer, *CaptureBuffer, *CaptureBuffer) {
	stdout, stderr := &CaptureBuffer{}, &CaptureBuffer{}
	return NewPrinter(WithWriter(stdout), WithErrorWriter(stderr), PlainText()), stdout, stderr
}

// Len returns the number of captured bytes.
func (c *CaptureBuffer) Len() int {
	return c.buf.Len()
}
