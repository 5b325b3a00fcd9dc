package temperament

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-tuner/internal/testutil"
)

func mustNew(t *testing.T, def Definition, opts ...Option) *Temperament {
	t.Helper()
	tmp, err := New(def, opts...)
	if err != nil {
		t.Fatalf("New(%s): %v", def.Name, err)
	}
	return tmp
}

func TestRatioCentRoundTrip(t *testing.T) {
	for _, def := range Definitions() {
		tmp := mustNew(t, def)

		ratios := tmp.Ratios()
		cents := tmp.Cents()
		if len(ratios) != 12 || len(cents) != 12 {
			t.Fatalf("%s: table length = %d/%d, want 12/12", def.Name, len(ratios), len(cents))
		}
		if ratios[0] != 1 {
			t.Errorf("%s: ratios[0] = %v, want 1", def.Name, ratios[0])
		}

		for i := range ratios {
			fromCents := math.Pow(2, cents[i]/1200)
			fromRatio := 1200 * math.Log2(ratios[i])
			if math.Abs(fromCents-ratios[i]) > 1e-9 {
				t.Errorf("%s: ratio[%d] round trip: %v vs %v", def.Name, i, fromCents, ratios[i])
			}
			if math.Abs(fromRatio-cents[i]) > 1e-9 {
				t.Errorf("%s: cents[%d] round trip: %v vs %v", def.Name, i, fromRatio, cents[i])
			}
		}
	}
}

func TestNoteTableShape(t *testing.T) {
	tmp := mustNew(t, Equal, WithOctaveRange(2, 5))

	notes := tmp.Notes()
	if len(notes) != 12*4 {
		t.Fatalf("note count = %d, want %d", len(notes), 12*4)
	}
	if got := notes[0].String(); got != "C2" {
		t.Errorf("first note = %s, want C2", got)
	}
	if got := notes[len(notes)-1].String(); got != "B5" {
		t.Errorf("last note = %s, want B5", got)
	}

	// Chronological order: each octave holds the 12 tones in table order.
	for i, n := range notes {
		if n.Tone != Tones[i%12] {
			t.Fatalf("note %d tone = %s, want %s", i, n.Tone, Tones[i%12])
		}
		if n.Octave != 2+i/12 {
			t.Fatalf("note %d octave = %d, want %d", i, n.Octave, 2+i/12)
		}
	}
}

func TestEmptyTableWhenRangeInverted(t *testing.T) {
	tmp := mustNew(t, Equal, WithOctaveRange(6, 4))
	if n := len(tmp.Notes()); n != 0 {
		t.Fatalf("inverted range note count = %d, want 0", n)
	}
	tmp.SetOctaveRange(4, 6)
	if n := len(tmp.Notes()); n != 36 {
		t.Fatalf("after range fix note count = %d, want 36", n)
	}
}

func TestOctaveDoubling(t *testing.T) {
	for _, def := range Definitions() {
		tmp := mustNew(t, def)
		freqs := tmp.Frequencies()
		testutil.RequireFinite(t, freqs)
		for j := 12; j < len(freqs); j++ {
			ratio := freqs[j] / freqs[j-12]
			if math.Abs(ratio-2) > 1e-9 {
				t.Fatalf("%s: freq[%d]/freq[%d] = %v, want 2", def.Name, j, j-12, ratio)
			}
		}
	}
}

func TestEqualAdjacentSemitoneRatio(t *testing.T) {
	tmp := mustNew(t, Equal)
	freqs := tmp.Frequencies()
	want := math.Pow(2, 1.0/12)
	for i := 1; i < len(freqs); i++ {
		if math.Abs(freqs[i]/freqs[i-1]-want) > 1e-9 {
			t.Fatalf("freq[%d]/freq[%d] = %v, want %v", i, i-1, freqs[i]/freqs[i-1], want)
		}
	}
}

func TestEqualReferenceAnchor(t *testing.T) {
	tmp := mustNew(t, Equal)
	notes := tmp.Notes()
	freqs := tmp.Frequencies()

	find := func(name string) float64 {
		t.Helper()
		for i, n := range notes {
			if n.String() == name {
				return freqs[i]
			}
		}
		t.Fatalf("note %s not found", name)
		return 0
	}

	testutil.RequireNearlyEqual(t, find("A4"), 440.0, 1e-9)
	testutil.RequireNearlyEqual(t, find("A3"), 220.0, 1e-9)
	testutil.RequireNearlyEqual(t, find("A5"), 880.0, 1e-9)
	testutil.RequireNearlyEqual(t, find("C0"), 440.0/math.Pow(2, 900.0/1200)/16, 1e-9)
}

func TestSetReferenceRecomputes(t *testing.T) {
	tmp := mustNew(t, Equal)
	if err := tmp.SetReference(Note{Tone: "A", Octave: 4}, 442); err != nil {
		t.Fatalf("SetReference: %v", err)
	}
	notes := tmp.Notes()
	freqs := tmp.Frequencies()
	for i, n := range notes {
		if n.String() == "A4" {
			testutil.RequireNearlyEqual(t, freqs[i], 442.0, 1e-9)
		}
	}
}

func TestSetReferenceRejectsUnknownTone(t *testing.T) {
	tmp := mustNew(t, Equal)
	if err := tmp.SetReference(Note{Tone: "H", Octave: 4}, 440); err == nil {
		t.Fatalf("SetReference with unknown tone must fail")
	}
	// The table stays consistent with the previous anchor.
	notes := tmp.Notes()
	freqs := tmp.Frequencies()
	for i, n := range notes {
		if n.String() == "A4" {
			testutil.RequireNearlyEqual(t, freqs[i], 440.0, 1e-9)
		}
	}
}

func TestReferenceOutsideOctaveRange(t *testing.T) {
	// A4 anchors a table spanning octaves 5..6 purely arithmetically:
	// A5 must land exactly one octave above the reference.
	tmp := mustNew(t, Equal, WithOctaveRange(5, 6))
	notes := tmp.Notes()
	freqs := tmp.Frequencies()
	for i, n := range notes {
		if n.String() == "A5" {
			testutil.RequireNearlyEqual(t, freqs[i], 880.0, 1e-9)
		}
	}
}

func TestSetCentsMatchesSetRatios(t *testing.T) {
	byCents := mustNew(t, Definition{Name: "x"})
	byRatios := mustNew(t, Definition{Name: "x"})

	byRatios.SetRatios(Just.Ratios)
	byCents.SetCents(byRatios.Cents())

	testutil.RequireSliceNearlyEqual(t, byCents.Ratios(), byRatios.Ratios(), 1e-12)
	testutil.RequireSliceNearlyEqual(t, byCents.Frequencies(), byRatios.Frequencies(), 1e-6)
}

func TestEmptyDefinitionHasNoFrequencies(t *testing.T) {
	tmp := mustNew(t, Definition{Name: "Base"})
	for i, f := range tmp.Frequencies() {
		n := tmp.Notes()[i]
		if n.String() == "A4" {
			// The reference note is pre-assigned at table build time.
			testutil.RequireNearlyEqual(t, f, 440.0, 1e-9)
			continue
		}
		if f != 0 {
			t.Fatalf("note %s frequency = %v, want unset", n, f)
		}
	}
}

func TestNewRejectsUnknownReferenceTone(t *testing.T) {
	if _, err := New(Equal, WithReference(Note{Tone: "Q", Octave: 4}, 440)); err == nil {
		t.Fatalf("New with unknown reference tone must fail")
	}
}

func TestTemperamentString(t *testing.T) {
	tmp := mustNew(t, Just)
	if got := tmp.String(); got != "Just A4@440Hz" {
		t.Fatalf("String() = %q", got)
	}
}
