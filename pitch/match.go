package pitch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tuner/temperament"
)

// MatchResult is a detected frequency classified against a temperament:
// the nearest table note and the signed deviation from it in cents.
// Positive cents are sharp, negative flat, zero exact.
type MatchResult struct {
	Note      temperament.Note
	Frequency float64
	Cents     int
}

// String formats the reading for display, e.g. "A4 +3" or "D5 -12".
func (m MatchResult) String() string {
	sign := ""
	if m.Cents > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s %s%d", m.Note, sign, m.Cents)
}

// Match finds the table note nearest to peakFreq and the rounded cents
// deviation between them. notes and freqs are parallel, as produced by a
// [temperament.Temperament]; ties on distance resolve to the first index.
//
// Silence and transform artifacts legitimately produce zero or negative
// frequencies; those cases degrade to a 0-cent reading on the nearest
// note instead of failing, so a live loop keeps running on noisy input.
// An empty table yields a zero MatchResult.
func Match(peakFreq float64, notes []temperament.Note, freqs []float64) MatchResult {
	if len(freqs) == 0 || len(notes) != len(freqs) {
		return MatchResult{}
	}

	desired := 0
	for i, f := range freqs {
		if math.Abs(f-peakFreq) < math.Abs(freqs[desired]-peakFreq) {
			desired = i
		}
	}

	desiredFreq := freqs[desired]
	cents := 0
	if peakFreq > 0 && desiredFreq > 0 {
		c := 1200 * math.Log2(peakFreq/desiredFreq)
		if !math.IsNaN(c) && !math.IsInf(c, 0) {
			cents = int(math.Round(c))
		}
	}

	return MatchResult{
		Note:      notes[desired],
		Frequency: desiredFreq,
		Cents:     cents,
	}
}

// MatchTemperament is Match against a temperament's current note table.
func MatchTemperament(peakFreq float64, t *temperament.Temperament) MatchResult {
	return Match(peakFreq, t.Notes(), t.Frequencies())
}
