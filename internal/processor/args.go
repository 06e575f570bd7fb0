package processor

import (
	"fmt"
	"strconv"

	"sequencer/internal/parser"
	"sequencer/internal/sequence"
)

// args converts positional parameters, keeping the first failure.
type args struct {
	cmd *parser.Command
	err error
}

func newArgs(cmd *parser.Command) *args {
	return &args{cmd: cmd}
}

func (a *args) text(i int, name string) string {
	if a.err != nil {
		return ""
	}
	value, ok := a.cmd.Param(i)
	if !ok {
		a.err = &ArgumentError{Command: a.cmd.String(), Param: name}
		return ""
	}
	return value
}

func (a *args) integer(i int, name string) int {
	value := a.text(i, name)
	if a.err != nil {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		a.err = &ArgumentError{
			Command: a.cmd.String(),
			Param:   name,
			Value:   value,
			Err:     fmt.Errorf("%q is not a valid integer", value),
		}
		return 0
	}
	return n
}

func (a *args) kind(i int, name string) sequence.Kind {
	value := a.text(i, name)
	if a.err != nil {
		return sequence.Empty
	}
	kind, err := sequence.ParseKind(value)
	if err != nil {
		a.err = &ArgumentError{Command: a.cmd.String(), Param: name, Value: value, Err: err}
		return sequence.Empty
	}
	return kind
}
