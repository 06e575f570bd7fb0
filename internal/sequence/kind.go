// Package sequence defines the sequence fragment held in each slot of a
// fragment list, together with the DNA/RNA alphabets and the transcription
// table used by the sequencer.
package sequence

import (
	"errors"
	"fmt"
)

// Kind identifies the type of a sequence fragment.
type Kind int

const (
	// Empty marks an unoccupied slot. Its content is always "".
	Empty Kind = iota
	// DNA sequences use the alphabet A, C, G, T.
	DNA
	// RNA sequences use the alphabet A, C, G, U.
	RNA
)

// ErrUnknownKind is returned by ParseKind for names other than DNA and RNA.
var ErrUnknownKind = errors.New("unknown sequence type")

// String returns the console name of the kind.
func (k Kind) String() string {
	switch k {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Empty:
		return "EMPTY"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps an uppercased type keyword to its Kind.
// EMPTY is not accepted since it cannot be inserted.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "DNA":
		return DNA, nil
	case "RNA":
		return RNA, nil
	default:
		return Empty, fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}
}
