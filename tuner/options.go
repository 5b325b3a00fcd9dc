package tuner

import (
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-tuner/temperament"
)

// Config holds the tuning-loop settings. Every field maps to a
// temperament-engine or loop parameter; there is no other external state.
type Config struct {
	SampleRate float64
	ChunkSize  int
	// SilenceThreshold is the fraction of full scale a chunk must exceed
	// to count as voiced. Below it the voicing buffer and history reset.
	SilenceThreshold float64
	Temperament      temperament.Definition
	ReferenceNote    temperament.Note
	ReferenceFreq    float64
	MinOctave        int
	MaxOctave        int
	// WindowType is applied before the spectral transform. The zero
	// value is rectangular (no windowing).
	WindowType window.Type
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the conventional tuning setup: 16 kHz audio in
// 2048-sample chunks, a 0.05 silence threshold, and the just temperament
// anchored at A4 = 440 Hz over octaves 0 through 8.
func DefaultConfig() Config {
	return Config{
		SampleRate:       16000,
		ChunkSize:        2048,
		SilenceThreshold: 0.05,
		Temperament:      temperament.Just,
		ReferenceNote:    temperament.Note{Tone: "A", Octave: 4},
		ReferenceFreq:    440,
		MinOctave:        0,
		MaxOctave:        8,
	}
}

// WithSampleRate sets the audio sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChunkSize sets the number of samples per processed chunk.
func WithChunkSize(chunkSize int) Option {
	return func(cfg *Config) {
		if chunkSize > 0 {
			cfg.ChunkSize = chunkSize
		}
	}
}

// WithSilenceThreshold sets the voicing gate as a fraction of full scale.
func WithSilenceThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold >= 0 {
			cfg.SilenceThreshold = threshold
		}
	}
}

// WithTemperament sets the temperament definition to tune against.
func WithTemperament(def temperament.Definition) Option {
	return func(cfg *Config) {
		cfg.Temperament = def
	}
}

// WithReference sets the anchor note and its frequency in Hz.
func WithReference(note temperament.Note, freq float64) Option {
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

// WithWindowType sets the analysis window applied before the transform.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.WindowType = t
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
