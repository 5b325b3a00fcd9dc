// Command tuner runs the tuning loop on a raw audio stream.
//
// Audio capture stays external: the command reads mono little-endian
// float32 samples from stdin (or a file), so any capture tool can feed it,
// e.g.:
//
//	arecord -f FLOAT_LE -r 16000 -c 1 -t raw | tuner
//	ffmpeg -i take.wav -f f32le -ac 1 -ar 16000 - | tuner -temperament equal
//
// The current reading is rewritten in place as "<note> <+/-cents>".
package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/gosuri/uilive"

	"github.com/cwbudde/algo-tuner/temperament"
	"github.com/cwbudde/algo-tuner/tuner"
)

var windowTypes = map[string]window.Type{
	"rectangular": window.TypeRectangular,
	"hann":        window.TypeHann,
	"hamming":     window.TypeHamming,
	"blackman":    window.TypeBlackman,
}

func main() {
	rate := flag.Float64("rate", 16000, "sample rate of the input stream in Hz")
	chunk := flag.Int("chunk", 2048, "samples per processed chunk")
	thresh := flag.Float64("thresh", 0.05, "silence threshold as a fraction of full scale")
	temperamentName := flag.String("temperament", "just", "temperament to tune against (see tempertab -list)")
	ref := flag.String("ref", "A4", "reference note, e.g. A4 or C#3")
	freq := flag.Float64("freq", 440, "reference frequency in Hz")
	minOctave := flag.Int("min", 4, "lowest octave of the note table")
	maxOctave := flag.Int("max", 6, "highest octave of the note table")
	windowName := flag.String("window", "rectangular", "analysis window: rectangular, hann, hamming or blackman")
	in := flag.String("in", "", "read samples from a file instead of stdin")
	flag.Parse()

	if err := run(*rate, *chunk, *thresh, *temperamentName, *ref, *freq,
		*minOctave, *maxOctave, *windowName, *in); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(rate float64, chunk int, thresh float64, temperamentName, ref string,
	freq float64, minOctave, maxOctave int, windowName, in string) error {
	def, ok := temperament.Lookup(temperamentName)
	if !ok {
		return fmt.Errorf("unknown temperament %q (use tempertab -list)", temperamentName)
	}

	winType, ok := windowTypes[strings.ToLower(strings.TrimSpace(windowName))]
	if !ok {
		return fmt.Errorf("unknown window %q", windowName)
	}

	refNote, err := temperament.ParseNote(ref)
	if err != nil {
		return err
	}

	sess, err := tuner.NewSession(
		tuner.WithSampleRate(rate),
		tuner.WithChunkSize(chunk),
		tuner.WithSilenceThreshold(thresh),
		tuner.WithTemperament(def),
		tuner.WithReference(refNote, freq),
		tuner.WithOctaveRange(minOctave, maxOctave),
		tuner.WithWindowType(winType),
	)
	if err != nil {
		return err
	}

	var input io.Reader = os.Stdin
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	display := uilive.New()
	display.Start()
	defer display.Stop()

	src := &sampleReader{r: bufio.NewReader(input), interrupt: sig}

	fmt.Fprintf(os.Stderr, "%s, %g Hz, %d-sample chunks\n", sess.Temperament(), rate, chunk)

	err = sess.Run(src, func(r tuner.Reading) {
		fmt.Fprintf(display, "%s  (%.1f Hz)\n", r, r.Frequency)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(display, "done\n")
	return nil
}

// sampleReader turns a raw little-endian float32 byte stream into sample
// chunks. An interrupt ends the stream like EOF so the loop shuts down
// cleanly between chunks.
type sampleReader struct {
	r         io.Reader
	interrupt <-chan os.Signal
	scratch   []byte
}

func (s *sampleReader) ReadChunk(buf []float64) error {
	select {
	case <-s.interrupt:
		return io.EOF
	default:
	}

	need := 4 * len(buf)
	if len(s.scratch) < need {
		s.scratch = make([]byte, need)
	}

	if _, err := io.ReadFull(s.r, s.scratch[:need]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return io.EOF
		}
		return err
	}

	for i := range buf {
		bits := binary.LittleEndian.Uint32(s.scratch[4*i:])
		buf[i] = float64(math.Float32frombits(bits))
	}
	return nil
}
