// Package fragments implements the fixed-length fragment list and the
// operations the sequencer commands perform on it.
//
// Every operation validates its arguments before touching any slot, so a
// returned error always means the list is unchanged.
package fragments

import (
	"fmt"
	"io"

	"sequencer/internal/sequence"
)

// List is a fixed number of fragment slots addressed by 0-based position.
// Unoccupied slots hold the zero Fragment.
type List struct {
	slots []sequence.Fragment
}

// New creates a list with capacity unoccupied slots.
// A negative capacity yields an empty list.
func New(capacity int) *List {
	if capacity < 0 {
		capacity = 0
	}
	return &List{slots: make([]sequence.Fragment, capacity)}
}

// Len returns the number of slots.
func (l *List) Len() int {
	return len(l.slots)
}

func (l *List) inRange(pos int) bool {
	return pos >= 0 && pos < len(l.slots)
}

// At returns the fragment stored at pos.
func (l *List) At(pos int) (sequence.Fragment, error) {
	if !l.inRange(pos) {
		return sequence.Fragment{}, ErrPositionOutOfRange
	}
	return l.slots[pos], nil
}

// Snapshot returns a copy of every slot in position order.
func (l *List) Snapshot() []sequence.Fragment {
	out := make([]sequence.Fragment, len(l.slots))
	copy(out, l.slots)
	return out
}

// Insert stores a new fragment at pos, replacing whatever was there.
func (l *List) Insert(pos int, kind sequence.Kind, seq string) error {
	if !l.inRange(pos) {
		return ErrPositionOutOfRange
	}
	if i := sequence.Validate(kind, seq); i >= 0 {
		return &InvalidSequenceError{Kind: kind, Sequence: seq, Index: i}
	}
	l.slots[pos] = sequence.New(kind, seq)
	return nil
}

// Remove clears the slot at pos.
func (l *List) Remove(pos int) error {
	if !l.inRange(pos) {
		return ErrPositionOutOfRange
	}
	if l.slots[pos].IsEmpty() {
		return ErrNoSequence
	}
	l.slots[pos] = sequence.Fragment{}
	return nil
}

// Format renders one occupied slot as a console line without a newline.
func Format(pos int, f sequence.Fragment) string {
	return fmt.Sprintf("Position: %d, Type: %s, Sequence: %s", pos, f.Type(), f.Sequence())
}

// Print writes every occupied slot in ascending position order.
func (l *List) Print(w io.Writer) error {
	for i, f := range l.slots {
		if f.IsEmpty() {
			continue
		}
		if _, err := fmt.Fprintln(w, Format(i, f)); err != nil {
			return err
		}
	}
	return nil
}

// PrintAt writes the slot at pos.
func (l *List) PrintAt(w io.Writer, pos int) error {
	if !l.inRange(pos) {
		return ErrPositionOutOfRange
	}
	f := l.slots[pos]
	if f.IsEmpty() {
		return ErrNoSequence
	}
	_, err := fmt.Fprintln(w, Format(pos, f))
	return err
}

// Clip keeps the suffix of the fragment at pos starting at start.
// start must index an existing letter.
func (l *List) Clip(pos, start int) error {
	if !l.inRange(pos) {
		return ErrPositionOutOfRange
	}
	f := l.slots[pos]
	if f.IsEmpty() {
		return ErrNoSequence
	}
	if start < 0 || start >= f.Len() {
		return ErrClipStartOutOfRange
	}
	f.SetSequence(f.Sequence()[start:])
	l.slots[pos] = f
	return nil
}

// Copy duplicates the fragment at src into dst, overwriting dst.
func (l *List) Copy(src, dst int) error {
	if !l.inRange(src) || !l.inRange(dst) {
		return ErrPositionOutOfRange
	}
	f := l.slots[src]
	if f.IsEmpty() {
		return ErrNoSourceSequence
	}
	l.slots[dst] = sequence.New(f.Type(), f.Sequence())
	return nil
}

// Swap exchanges the tail of the fragment at pos1 starting at start1 with
// the tail of the fragment at pos2 starting at start2. A start equal to the
// fragment length selects an empty tail.
func (l *List) Swap(pos1, start1, pos2, start2 int) error {
	if !l.inRange(pos1) || !l.inRange(pos2) {
		return ErrPositionOutOfRange
	}
	f1, f2 := l.slots[pos1], l.slots[pos2]
	if f1.IsEmpty() || f2.IsEmpty() {
		return ErrSwapNoSequence
	}
	if f1.Type() != f2.Type() {
		return ErrTypeMismatch
	}
	if start1 < 0 || start1 > f1.Len() || start2 < 0 || start2 > f2.Len() {
		return ErrSwapStartOutOfRange
	}

	s1, s2 := f1.Sequence(), f2.Sequence()
	tail1, tail2 := s1[start1:], s2[start2:]
	f1.SetSequence(s1[:start1] + tail2)
	l.slots[pos1] = f1

	// A slot swapped with itself takes its second prefix from the first result.
	if pos1 == pos2 {
		f2 = f1
		s2 = f1.Sequence()
		if start2 > len(s2) {
			start2 = len(s2)
		}
	}
	f2.SetSequence(s2[:start2] + tail1)
	l.slots[pos2] = f2
	return nil
}

// Transcribe converts the DNA fragment at pos into RNA using
// sequence.Transcribe.
func (l *List) Transcribe(pos int) error {
	if !l.inRange(pos) {
		return ErrPositionOutOfRange
	}
	f := l.slots[pos]
	if f.IsEmpty() {
		return ErrTranscribeNoSequence
	}
	if f.Type() != sequence.DNA {
		return ErrNotDNA
	}
	f.SetType(sequence.RNA)
	f.SetSequence(sequence.Transcribe(f.Sequence()))
	l.slots[pos] = f
	return nil
}
