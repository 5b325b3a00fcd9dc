package temperament

import (
	"fmt"
	"math"
)

const (
	defaultReferenceFreq = 440.0
	defaultMinOctave     = 0
	defaultMaxOctave     = 8
)

// Definition is the data record for one concrete temperament: a name plus a
// 12-entry table of either frequency ratios or cent values relative to the
// first pitch class C. Exactly one of Ratios and Cents should be set; the
// engine derives the other.
type Definition struct {
	Name   string
	Ratios []float64
	Cents  []float64
}

// Config holds temperament engine settings.
type Config struct {
	ReferenceNote Note
	ReferenceFreq float64
	MinOctave     int
	MaxOctave     int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the conventional anchoring: A4 at 440 Hz over
// octaves 0 through 8.
func DefaultConfig() Config {
	return Config{
		ReferenceNote: Note{Tone: "A", Octave: 4},
		ReferenceFreq: defaultReferenceFreq,
		MinOctave:     defaultMinOctave,
		MaxOctave:     defaultMaxOctave,
	}
}

// WithReference sets the anchor note and its frequency in Hz.
func WithReference(note Note, freq float64) Option {
	return func(cfg *Config) {
		cfg.ReferenceNote = note
		if freq > 0 {
			cfg.ReferenceFreq = freq
		}
	}
}

// WithOctaveRange sets the inclusive octave bounds of the note table.
func WithOctaveRange(minOctave, maxOctave int) Option {
	return func(cfg *Config) {
		cfg.MinOctave = minOctave
		cfg.MaxOctave = maxOctave
	}
}

// Temperament assigns frequencies to every note across an octave range,
// derived from a 12-entry ratio table anchored at a reference note.
//
// The zero value is not usable; construct with [New].
type Temperament struct {
	name    string
	refNote Note
	refFreq float64

	minOctave int
	maxOctave int

	ratios []float64
	cents  []float64
	notes  []Note
}

// New builds a temperament engine from a definition.
//
// The reference note must use a known pitch-class name. A definition with
// neither ratios nor cents yields an engine whose note table carries no
// frequencies until [Temperament.SetRatios] or [Temperament.SetCents] is
// called.
func New(def Definition, opts ...Option) (*Temperament, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if ToneIndex(cfg.ReferenceNote.Tone) < 0 {
		return nil, fmt.Errorf("temperament: unknown reference tone %q", cfg.ReferenceNote.Tone)
	}

	t := &Temperament{
		name:      def.Name,
		refNote:   cfg.ReferenceNote,
		refFreq:   cfg.ReferenceFreq,
		minOctave: cfg.MinOctave,
		maxOctave: cfg.MaxOctave,
	}
	t.notes = t.buildNotes(t.minOctave, t.maxOctave)

	switch {
	case len(def.Ratios) > 0:
		t.SetRatios(def.Ratios)
	case len(def.Cents) > 0:
		t.SetCents(def.Cents)
	}

	return t, nil
}

// String describes the temperament and its anchor, e.g. "Just A4@440Hz".
func (t *Temperament) String() string {
	return fmt.Sprintf("%s %s@%gHz", t.name, t.refNote, t.refFreq)
}

// Name returns the temperament name.
func (t *Temperament) Name() string { return t.name }

// ReferenceNote returns the anchor note.
func (t *Temperament) ReferenceNote() Note { return t.refNote }

// ReferenceFreq returns the anchor frequency in Hz.
func (t *Temperament) ReferenceFreq() float64 { return t.refFreq }

// OctaveRange returns the inclusive octave bounds of the note table.
func (t *Temperament) OctaveRange() (minOctave, maxOctave int) {
	return t.minOctave, t.maxOctave
}

// Ratios returns a copy of the pitch-class ratio table.
func (t *Temperament) Ratios() []float64 {
	return append([]float64(nil), t.ratios...)
}

// Cents returns a copy of the pitch-class cent table.
func (t *Temperament) Cents() []float64 {
	return append([]float64(nil), t.cents...)
}

// Notes returns a copy of the note table in chronological order: for each
// octave from the lowest to the highest, the 12 tones in table order.
func (t *Temperament) Notes() []Note {
	return append([]Note(nil), t.notes...)
}

// Frequencies returns the frequency of each note in table order. Entries
// are zero until a ratio or cent table has been set.
func (t *Temperament) Frequencies() []float64 {
	out := make([]float64, len(t.notes))
	for i, n := range t.notes {
		out[i] = n.Frequency
	}
	return out
}

// SetRatios replaces the ratio table, derives the cent table and
// recomputes all note frequencies before returning.
//
// The table is expected to hold one entry per pitch class with ratios[0]
// equal to 1; a non-positive entry yields non-finite cents. Neither is
// validated here.
func (t *Temperament) SetRatios(ratios []float64) {
	t.ratios = append([]float64(nil), ratios...)
	t.cents = make([]float64, len(t.ratios))
	for i, r := range t.ratios {
		t.cents[i] = 1200 * math.Log2(r)
	}
	t.recalc()
}

// SetCents replaces the cent table, derives the ratio table and recomputes
// all note frequencies before returning.
func (t *Temperament) SetCents(cents []float64) {
	t.cents = append([]float64(nil), cents...)
	t.ratios = make([]float64, len(t.cents))
	for i, c := range t.cents {
		t.ratios[i] = math.Pow(2, c/1200)
	}
	t.recalc()
}

// SetReference moves the anchor note/frequency pair and recomputes all
// note frequencies before returning. A note with an unknown pitch-class
// name is rejected.
//
// The reference octave may lie outside the generated octave range; the
// anchor is then applied arithmetically even though no table note carries
// the reference frequency itself.
func (t *Temperament) SetReference(note Note, freq float64) error {
	if ToneIndex(note.Tone) < 0 {
		return fmt.Errorf("temperament: unknown reference tone %q", note.Tone)
	}
	t.refNote = note
	t.refFreq = freq
	t.recalc()
	return nil
}

// SetOctaveRange rebuilds the note table for the new inclusive bounds and
// recomputes all note frequencies before returning. A maxOctave below
// minOctave yields an empty table.
func (t *Temperament) SetOctaveRange(minOctave, maxOctave int) {
	t.minOctave = minOctave
	t.maxOctave = maxOctave
	t.notes = t.buildNotes(minOctave, maxOctave)
	t.recalc()
}

// buildNotes generates the chronological note sequence for the octave
// range. The reference note, when inside the range, is pre-assigned the
// reference frequency.
func (t *Temperament) buildNotes(minOctave, maxOctave int) []Note {
	if maxOctave < minOctave {
		return nil
	}

	notes := make([]Note, 0, 12*(maxOctave-minOctave+1))
	for octave := minOctave; octave <= maxOctave; octave++ {
		for _, tone := range Tones {
			n := Note{Tone: tone, Octave: octave}
			if n.Equal(t.refNote) {
				n.Frequency = t.refFreq
			}
			notes = append(notes, n)
		}
	}
	return notes
}

// baseFreq computes the frequency of the first table note from the anchor:
// the reference frequency shifted down by the reference pitch-class ratio
// and by the octave distance to the start of the table.
func (t *Temperament) baseFreq() float64 {
	refIdx := ToneIndex(t.refNote.Tone) % len(t.ratios)
	octRatio := math.Pow(2, float64(t.notes[0].Octave-t.refNote.Octave))
	return octRatio * t.refFreq / t.ratios[refIdx]
}

// recalc walks the note table and assigns every frequency from the current
// ratio table and anchor. Called by every mutator so the table is never
// observed in a partially updated state.
func (t *Temperament) recalc() {
	if len(t.ratios) == 0 || len(t.notes) == 0 {
		return
	}

	base := t.baseFreq()
	i := 0
	octDiff := 0
	for j := range t.notes {
		t.notes[j].Frequency = t.ratios[i] * math.Pow(2, float64(octDiff)) * base
		i++
		if i == len(t.ratios) {
			i = 0
			octDiff++
		}
	}
}
