package sequence

// Fragment is the content of one slot: a kind and its letters.
// The zero value is an unoccupied slot.
type Fragment struct {
	kind     Kind
	sequence string
}

// New creates a fragment. An Empty kind always yields an empty sequence.
func New(kind Kind, seq string) Fragment {
	if kind == Empty {
		return Fragment{}
	}
	return Fragment{kind: kind, sequence: seq}
}

// Type returns the fragment kind.
func (f Fragment) Type() Kind {
	return f.kind
}

// SetType reassigns the fragment kind.
func (f *Fragment) SetType(kind Kind) {
	f.kind = kind
	if kind == Empty {
		f.sequence = ""
	}
}

// Sequence returns the fragment letters.
func (f Fragment) Sequence() string {
	return f.sequence
}

// SetSequence replaces the fragment letters.
func (f *Fragment) SetSequence(seq string) {
	f.sequence = seq
}

// Len returns the number of letters in the fragment.
func (f Fragment) Len() int {
	return len(f.sequence)
}

// IsEmpty reports whether the fragment marks an unoccupied slot.
func (f Fragment) IsEmpty() bool {
	return f.kind == Empty
}
