package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "DNA", DNA.String())
	assert.Equal(t, "RNA", RNA.String())
	assert.Equal(t, "EMPTY", Empty.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Kind
		wantErr  bool
	}{
		{name: "dna", input: "DNA", expected: DNA},
		{name: "rna", input: "RNA", expected: RNA},
		{name: "empty keyword rejected", input: "EMPTY", wantErr: true},
		{name: "lowercase rejected", input: "dna", wantErr: true},
		{name: "unknown", input: "XNA", wantErr: true},
		{name: "blank", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownKind)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestFragment_ZeroValueIsEmpty(t *testing.T) {
	var f Fragment
	assert.True(t, f.IsEmpty())
	assert.Equal(t, Empty, f.Type())
	assert.Equal(t, "", f.Sequence())
}

func TestFragment_Accessors(t *testing.T) {
	f := New(DNA, "ACGT")
	assert.Equal(t, DNA, f.Type())
	assert.Equal(t, "ACGT", f.Sequence())
	assert.Equal(t, 4, f.Len())

	f.SetType(RNA)
	f.SetSequence("ACGU")
	assert.Equal(t, RNA, f.Type())
	assert.Equal(t, "ACGU", f.Sequence())

	f.SetType(Empty)
	assert.True(t, f.IsEmpty())
	assert.Equal(t, "", f.Sequence())
}

func TestNew_EmptyDropsContent(t *testing.T) {
	f := New(Empty, "ACGT")
	assert.True(t, f.IsEmpty())
	assert.Equal(t, "", f.Sequence())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		seq      string
		expected int
	}{
		{name: "valid dna", kind: DNA, seq: "ACGTTGCA", expected: -1},
		{name: "valid rna", kind: RNA, seq: "ACGUUGCA", expected: -1},
		{name: "empty sequence is valid", kind: DNA, seq: "", expected: -1},
		{name: "u in dna", kind: DNA, seq: "ACGU", expected: 3},
		{name: "t in rna", kind: RNA, seq: "TCGA", expected: 0},
		{name: "x in dna", kind: DNA, seq: "ACGX", expected: 3},
		{name: "lowercase rejected", kind: DNA, seq: "acgt", expected: 0},
		{name: "empty kind accepts anything", kind: Empty, seq: "XYZ", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Validate(tt.kind, tt.seq))
		})
	}
}

func TestAlphabet(t *testing.T) {
	assert.Equal(t, "ACGT", Alphabet(DNA))
	assert.Equal(t, "ACGU", Alphabet(RNA))
	assert.Equal(t, "", Alphabet(Empty))
}

func TestTranscribe(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "ACGT", expected: "UCGT"},
		{input: "A", expected: "T"},
		{input: "T", expected: "U"},
		{input: "AAAA", expected: "TTTT"},
		{input: "GATTACA", expected: "TGTUUTC"},
		{input: "", expected: ""},
		{input: "AXG", expected: "CXT"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Transcribe(tt.input))
		})
	}
}

func TestTranscribe_NeverProducesA(t *testing.T) {
	out := Transcribe("AACCGGTTACGTGCAT")
	assert.NotContains(t, out, "A")
}
