package sequence

const (
	dnaAlphabet = "ACGT"
	rnaAlphabet = "ACGU"
)

var (
	dnaLetters [256]bool
	rnaLetters [256]bool
)

func init() {
	for i := 0; i < len(dnaAlphabet); i++ {
		dnaLetters[dnaAlphabet[i]] = true
	}
	for i := 0; i < len(rnaAlphabet); i++ {
		rnaLetters[rnaAlphabet[i]] = true
	}
}

// Alphabet returns the letters valid for kind. Empty has no alphabet.
func Alphabet(kind Kind) string {
	switch kind {
	case DNA:
		return dnaAlphabet
	case RNA:
		return rnaAlphabet
	default:
		return ""
	}
}

// Validate checks seq against the alphabet of kind and returns the index of
// the first invalid byte, or -1 when every byte is valid.
// Kinds without an alphabet accept anything.
func Validate(kind Kind, seq string) int {
	var letters *[256]bool
	switch kind {
	case DNA:
		letters = &dnaLetters
	case RNA:
		letters = &rnaLetters
	default:
		return -1
	}
	for i := 0; i < len(seq); i++ {
		if !letters[seq[i]] {
			return i
		}
	}
	return -1
}
