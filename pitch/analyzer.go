package pitch

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
)

const defaultSampleRate = 16000.0

// Config holds spectrum analyzer parameters.
type Config struct {
	SampleRate float64
	// FFTLength is the transform size. Zero picks the smallest power of
	// two covering one second of audio, which keeps bins close to 1 Hz.
	FFTLength int
	// WindowType is applied to the sample buffer before the transform.
	// The zero value is rectangular (no windowing).
	WindowType window.Type
}

// Spectrum is a magnitude spectrum in the two-sided layout of a
// real-input transform: DC first, positive frequencies ascending, then
// the mirrored negative-frequency half.
type Spectrum struct {
	Frequencies []float64
	Magnitudes  []float64
}

// Analyzer turns accumulated time-domain samples into a magnitude
// spectrum. The transform size is fixed at construction so the FFT plan
// is built once and reused.
type Analyzer struct {
	cfg    Config
	plan   *algofft.Plan[complex128]
	coeffs []float64
	in     []complex128
	out    []complex128
}

// NewAnalyzer creates an analyzer for the given configuration.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	cfg = normalizeConfig(cfg)

	plan, err := algofft.NewPlan64(cfg.FFTLength)
	if err != nil {
		return nil, fmt.Errorf("pitch: failed to create FFT plan: %w", err)
	}

	return &Analyzer{
		cfg:  cfg,
		plan: plan,
		in:   make([]complex128, cfg.FFTLength),
		out:  make([]complex128, cfg.FFTLength),
	}, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultSampleRate
	}
	if cfg.FFTLength <= 0 {
		cfg.FFTLength = nextPowerOf2(int(cfg.SampleRate))
	}
	return cfg
}

// Config returns the normalized analyzer configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Analyze computes the magnitude spectrum of samples.
//
// Buffers shorter than the transform size are zero-padded; longer buffers
// are truncated to the transform size.
func (a *Analyzer) Analyze(samples []float64) (Spectrum, error) {
	n := a.cfg.FFTLength
	if len(samples) > n {
		samples = samples[:n]
	}

	windowed := samples
	if a.cfg.WindowType != window.TypeRectangular && len(samples) > 0 {
		if len(a.coeffs) != len(samples) {
			a.coeffs = window.Generate(a.cfg.WindowType, len(samples))
		}
		w, err := window.ApplyCoefficients(samples, a.coeffs)
		if err != nil {
			return Spectrum{}, fmt.Errorf("pitch: windowing failed: %w", err)
		}
		windowed = w
	}

	for i := range a.in {
		if i < len(windowed) {
			a.in[i] = complex(windowed[i], 0)
		} else {
			a.in[i] = 0
		}
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Spectrum{}, fmt.Errorf("pitch: forward transform failed: %w", err)
	}

	return Spectrum{
		Frequencies: BinFrequencies(n, a.cfg.SampleRate),
		Magnitudes:  spectrum.Magnitude(a.out),
	}, nil
}

// BinFrequencies returns the two-sided bin frequency axis for an n-point
// transform at the given sample rate: non-negative frequencies first,
// then the negative-frequency mirror.
func BinFrequencies(n int, sampleRate float64) []float64 {
	out := make([]float64, n)
	step := sampleRate / float64(n)
	half := (n + 1) / 2
	for i := 0; i < half; i++ {
		out[i] = float64(i) * step
	}
	for i := half; i < n; i++ {
		out[i] = float64(i-n) * step
	}
	return out
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
