package sequence

var transcription [256]byte

// The sequencer's transcription table. It is not the biological pairing:
// A maps to T and only T maps to U.
func init() {
	for i := range transcription {
		transcription[i] = byte(i)
	}
	transcription['A'] = 'T'
	transcription['C'] = 'G'
	transcription['G'] = 'C'
	transcription['T'] = 'U'
}

// Transcribe maps every letter through the transcription table and returns
// the result reversed. Bytes outside A, C, G, T pass through unchanged.
func Transcribe(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = transcription[seq[i]]
	}
	return string(out)
}
