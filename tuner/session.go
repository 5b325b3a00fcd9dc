package tuner

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-tuner/pitch"
	"github.com/cwbudde/algo-tuner/temperament"
)

// Source delivers audio from the capture collaborator, one chunk per
// call. ReadChunk fills buf with samples in [-1, 1] and blocks until a
// full chunk is available; it returns io.EOF when the stream ends.
type Source interface {
	ReadChunk(buf []float64) error
}

// SourceFunc adapts a function as a [Source].
type SourceFunc func(buf []float64) error

// ReadChunk calls f.
func (f SourceFunc) ReadChunk(buf []float64) error { return f(buf) }

// Peak is one labelled spectral peak of a processed chunk.
type Peak struct {
	Frequency float64
	Amplitude float64
	Match     pitch.MatchResult
}

// Reading is the display surface for one processed chunk: the dominant
// peak's frequency, its matched note with cents deviation, and the full
// labelled peak list for richer views.
type Reading struct {
	Frequency float64
	Match     pitch.MatchResult
	Peaks     []Peak
}

// String formats the dominant reading, e.g. "A4 +3".
func (r Reading) String() string { return r.Match.String() }

// Session processes audio chunks strictly in arrival order. Within a
// voicing (a contiguous run of above-threshold chunks) the sample buffer
// and best-frequency history are append-only; both clear when the input
// drops below the silence threshold.
type Session struct {
	cfg      Config
	temp     *temperament.Temperament
	analyzer *pitch.Analyzer

	buf     []float64
	history []float64
}

// NewSession builds a session from options. Configuration-shape faults
// (an unknown reference tone, an unusable transform size) fail here,
// before any frequency table is computed.
func NewSession(opts ...Option) (*Session, error) {
	cfg := ApplyOptions(opts...)

	temp, err := temperament.New(cfg.Temperament,
		temperament.WithReference(cfg.ReferenceNote, cfg.ReferenceFreq),
		temperament.WithOctaveRange(cfg.MinOctave, cfg.MaxOctave),
	)
	if err != nil {
		return nil, fmt.Errorf("tuner: %w", err)
	}

	analyzer, err := pitch.NewAnalyzer(pitch.Config{
		SampleRate: cfg.SampleRate,
		WindowType: cfg.WindowType,
	})
	if err != nil {
		return nil, fmt.Errorf("tuner: %w", err)
	}

	return &Session{cfg: cfg, temp: temp, analyzer: analyzer}, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Temperament returns the session's temperament engine.
func (s *Session) Temperament() *temperament.Temperament { return s.temp }

// History returns a copy of the rolling best-frequency trace of the
// current voicing.
func (s *Session) History() []float64 {
	return append([]float64(nil), s.history...)
}

// Reset clears the voicing buffer and the best-frequency history.
func (s *Session) Reset() {
	s.buf = s.buf[:0]
	s.history = s.history[:0]
}

// Process runs one loop iteration on a chunk of samples.
//
// Chunks at or below the silence threshold reset the session and report
// ok=false. Voiced chunks are appended to the voicing buffer; ok is true
// when the accumulated buffer yields at least one spectral peak, and the
// reading then carries the dominant peak matched against the temperament.
func (s *Session) Process(chunk []float64) (reading Reading, ok bool, err error) {
	if maxAbs(chunk) <= s.cfg.SilenceThreshold {
		s.Reset()
		return Reading{}, false, nil
	}

	s.buf = append(s.buf, chunk...)

	sp, err := s.analyzer.Analyze(s.buf)
	if err != nil {
		return Reading{}, false, err
	}

	peaks := pitch.FindPeaks(sp)
	best, ok := pitch.Best(sp, peaks)
	if !ok {
		return Reading{}, false, nil
	}

	notes := s.temp.Notes()
	freqs := s.temp.Frequencies()

	reading = Reading{
		Frequency: sp.Frequencies[best],
		Match:     pitch.Match(sp.Frequencies[best], notes, freqs),
		Peaks:     make([]Peak, 0, len(peaks)),
	}
	for _, p := range peaks {
		reading.Peaks = append(reading.Peaks, Peak{
			Frequency: sp.Frequencies[p],
			Amplitude: sp.Magnitudes[p],
			Match:     pitch.Match(sp.Frequencies[p], notes, freqs),
		})
	}

	s.history = append(s.history, reading.Frequency)
	return reading, true, nil
}

// Run drives the loop against a source until the stream ends, emitting
// every successful reading. A clean end of stream returns nil.
func (s *Session) Run(src Source, emit func(Reading)) error {
	buf := make([]float64, s.cfg.ChunkSize)
	for {
		if err := src.ReadChunk(buf); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		reading, ok, err := s.Process(buf)
		if err != nil {
			return err
		}
		if ok && emit != nil {
			emit(reading)
		}
	}
}

func maxAbs(samples []float64) float64 {
	m := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
