// Package processor turns raw command lines into fragment list operations.
//
// Each line is uppercased, split into a command name and parameters, and
// dispatched to the matching fragments.List method. Validation failures and
// unknown commands are reported on the printer's error stream; processing
// always continues with the next line. Malformed parameters are reported
// and skipped, or returned to the caller in strict mode.
package processor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"sequencer/internal/fragments"
	"sequencer/internal/logger"
	"sequencer/internal/output"
	"sequencer/internal/parser"
)

// Processor executes command lines against a single fragment list.
type Processor struct {
	list    *fragments.List
	printer *output.Printer
	strict  bool
	log     *log.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithPrinter sets the printer used for results and errors.
// Default is the global printer.
func WithPrinter(printer *output.Printer) Option {
	return func(p *Processor) {
		if printer != nil {
			p.printer = printer
		}
	}
}

// WithStrict makes malformed parameters a returned error instead of a
// reported one.
func WithStrict(strict bool) Option {
	return func(p *Processor) {
		p.strict = strict
	}
}

// WithLogger sets the component logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a processor owning list.
func New(list *fragments.List, opts ...Option) *Processor {
	p := &Processor{
		list:    list,
		printer: output.GetGlobalPrinter(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.NewStyledLogger("Processor")
	}
	return p
}

// List returns the fragment list the processor operates on.
func (p *Processor) List() *fragments.List {
	return p.list
}

// Strict reports whether malformed parameters are returned to the caller.
func (p *Processor) Strict() bool {
	return p.strict
}

// ProcessCommand executes one raw line. Blank lines are ignored.
//
// The returned error is nil unless the line is malformed in strict mode
// (an *ArgumentError) or output could not be written.
func (p *Processor) ProcessCommand(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	p.log.Debug("Processing command", "line", line)

	cmd := parser.ParseCommand(strings.ToUpper(line))
	if cmd == nil {
		return nil
	}

	err := p.execute(cmd)
	var argErr *ArgumentError
	switch {
	case err == nil:
		return nil
	case fragments.IsValidation(err), errors.Is(err, ErrUnknownCommand):
		p.log.Debug("Command rejected", "command", cmd.Name, "error", err)
		p.printer.Error(err.Error())
		return nil
	case errors.As(err, &argErr):
		if p.strict {
			return err
		}
		p.log.Debug("Malformed command skipped", "command", cmd.Name, "error", err)
		p.printer.Error(fmt.Sprintf("Malformed command %q: %s", argErr.Command, argErr.Reason()))
		return nil
	default:
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
}

func (p *Processor) execute(cmd *parser.Command) error {
	logger.CommandExecution(cmd.Name, cmd.Parameters)

	a := newArgs(cmd)
	switch cmd.Type() {
	case parser.Insert:
		pos := a.integer(0, "pos")
		kind := a.kind(1, "type")
		seq := a.text(2, "sequence")
		if a.err != nil {
			return a.err
		}
		return p.list.Insert(pos, kind, seq)

	case parser.Remove:
		pos := a.integer(0, "pos")
		if a.err != nil {
			return a.err
		}
		return p.list.Remove(pos)

	case parser.Print:
		if len(cmd.Parameters) == 0 {
			return p.list.Print(p.printer)
		}
		pos := a.integer(0, "pos")
		if a.err != nil {
			return a.err
		}
		return p.list.PrintAt(p.printer, pos)

	case parser.Clip:
		pos := a.integer(0, "pos")
		start := a.integer(1, "start")
		if a.err != nil {
			return a.err
		}
		return p.list.Clip(pos, start)

	case parser.Copy:
		src := a.integer(0, "src")
		dst := a.integer(1, "dst")
		if a.err != nil {
			return a.err
		}
		return p.list.Copy(src, dst)

	case parser.Swap:
		pos1 := a.integer(0, "pos1")
		start1 := a.integer(1, "start1")
		pos2 := a.integer(2, "pos2")
		start2 := a.integer(3, "start2")
		if a.err != nil {
			return a.err
		}
		return p.list.Swap(pos1, start1, pos2, start2)

	case parser.Transcribe:
		pos := a.integer(0, "pos")
		if a.err != nil {
			return a.err
		}
		return p.list.Transcribe(pos)

	default:
		return &UnknownCommandError{Name: cmd.Name}
	}
}
