package fragments

import (
	"errors"
	"fmt"

	"sequencer/internal/sequence"
)

// Validation failures. The error text is the line reported on the console.
var (
	ErrPositionOutOfRange   = errors.New("The position out of range.")
	ErrNoSequence           = errors.New("There is no sequence at this position.")
	ErrNoSourceSequence     = errors.New("There is no sequence at the source position.")
	ErrSwapNoSequence       = errors.New("One or both positions do not contain a sequence.")
	ErrTypeMismatch         = errors.New("Sequences are not of the same type.")
	ErrClipStartOutOfRange  = errors.New("The start position out of range.")
	ErrSwapStartOutOfRange  = errors.New("Start position out of range.")
	ErrTranscribeNoSequence = errors.New("Position does not contain a sequence.")
	ErrNotDNA               = errors.New("Sequence is not DNA.")
	ErrInvalidSequence      = errors.New("invalid sequence")
)

// InvalidSequenceError reports a letter outside the alphabet of Kind.
type InvalidSequenceError struct {
	Kind     sequence.Kind
	Sequence string
	Index    int
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("Invalid sequence. The sequence %q contains invalid characters for the %s sequence.", e.Sequence, e.Kind)
}

// Unwrap lets errors.Is match ErrInvalidSequence.
func (e *InvalidSequenceError) Unwrap() error {
	return ErrInvalidSequence
}

var validationErrors = []error{
	ErrPositionOutOfRange,
	ErrNoSequence,
	ErrNoSourceSequence,
	ErrSwapNoSequence,
	ErrTypeMismatch,
	ErrClipStartOutOfRange,
	ErrSwapStartOutOfRange,
	ErrTranscribeNoSequence,
	ErrNotDNA,
	ErrInvalidSequence,
}

// IsValidation reports whether err is a list validation failure, as opposed
// to an output error from Print or PrintAt.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
