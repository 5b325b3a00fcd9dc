package temperament

import (
	"fmt"
	"strconv"
	"strings"
)

// Tones lists the 12 pitch-class names in table order, from C to B.
// Half tones are all sharps.
var Tones = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// ToneIndex returns the position of a pitch-class name in [Tones],
// or -1 if the name is unknown.
func ToneIndex(tone string) int {
	for i, t := range Tones {
		if t == tone {
			return i
		}
	}
	return -1
}

// Note is a single pitch: a pitch-class name plus an octave.
//
// Frequency is filled in by the temperament engine; a zero Frequency means
// it has not been computed yet. Identity is (Tone, Octave) only.
type Note struct {
	Tone      string
	Octave    int
	Frequency float64
}

// String returns the scientific pitch name, e.g. "A4" or "C#3".
func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Tone, n.Octave)
}

// Equal reports whether two notes name the same pitch.
// Frequency is not part of note identity.
func (n Note) Equal(other Note) bool {
	return n.Tone == other.Tone && n.Octave == other.Octave
}

// ParseNote parses a scientific pitch name such as "A4", "C#3" or "B-1".
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)

	split := 1
	if len(s) > 1 && s[1] == '#' {
		split = 2
	}
	if len(s) < split+1 {
		return Note{}, fmt.Errorf("invalid note %q: missing octave", s)
	}

	tone := strings.ToUpper(s[:split])
	if ToneIndex(tone) < 0 {
		return Note{}, fmt.Errorf("invalid note %q: unknown tone %q", s, tone)
	}

	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return Note{}, fmt.Errorf("invalid note %q: bad octave: %w", s, err)
	}

	return Note{Tone: tone, Octave: octave}, nil
}
