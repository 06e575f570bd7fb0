package processor

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCommand marks a line whose parameters cannot be converted:
	// too few parameters, a non-integer position or an unknown sequence type.
	ErrMalformedCommand = errors.New("malformed command")

	// ErrUnknownCommand marks a line whose command name is not recognized.
	ErrUnknownCommand = errors.New("unknown command")
)

// ArgumentError describes a parameter that could not be converted.
type ArgumentError struct {
	Command string // normalized command line
	Param   string // parameter name
	Value   string // raw parameter text, empty when missing
	Err     error  // conversion failure, nil when missing
}

// Reason describes the failure without the command line.
func (e *ArgumentError) Reason() string {
	if e.Err == nil {
		return fmt.Sprintf("missing parameter %s", e.Param)
	}
	return fmt.Sprintf("parameter %s: %v", e.Param, e.Err)
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrMalformedCommand, e.Command, e.Reason())
}

// Unwrap lets errors.Is match ErrMalformedCommand.
func (e *ArgumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedCommand}
	}
	return []error{ErrMalformedCommand, e.Err}
}

// UnknownCommandError reports an unrecognized command name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "Unknown command: " + e.Name
}

// Unwrap lets errors.Is match ErrUnknownCommand.
func (e *UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}
