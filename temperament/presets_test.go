package temperament

import (
	"math"
	"testing"
)

func TestRegistryCoversAllPresets(t *testing.T) {
	keys := Keys()
	defs := Definitions()
	if len(keys) != 9 || len(defs) != 9 {
		t.Fatalf("registry size = %d/%d, want 9/9", len(keys), len(defs))
	}
	for i, key := range keys {
		def, ok := Lookup(key)
		if !ok {
			t.Fatalf("Lookup(%q) failed", key)
		}
		if def.Name != defs[i].Name {
			t.Fatalf("Lookup(%q) = %q, want %q", key, def.Name, defs[i].Name)
		}
	}
}

func TestLookupNormalizesKey(t *testing.T) {
	def, ok := Lookup("  Werckmeister1 ")
	if !ok || def.Name != "Werckmeister I (III)" {
		t.Fatalf("Lookup with padding/case = %q, %v", def.Name, ok)
	}
	if _, ok := Lookup("unknown"); ok {
		t.Fatalf("Lookup(unknown) must fail")
	}
}

func TestPresetTableLengths(t *testing.T) {
	for _, def := range Definitions() {
		n := len(def.Ratios) + len(def.Cents)
		if n != 12 {
			t.Errorf("%s: table entries = %d, want 12", def.Name, n)
		}
		if len(def.Ratios) > 0 && def.Ratios[0] != 1 {
			t.Errorf("%s: ratios[0] = %v, want 1", def.Name, def.Ratios[0])
		}
		if len(def.Cents) > 0 && def.Cents[0] != 0 {
			t.Errorf("%s: cents[0] = %v, want 0", def.Name, def.Cents[0])
		}
	}
}

func TestPythagoreanPureFifth(t *testing.T) {
	tmp := mustNew(t, Pythagorean)
	cents := tmp.Cents()
	want := 1200 * math.Log2(3.0/2)
	if math.Abs(cents[7]-want) > 1e-9 {
		t.Fatalf("Pythagorean fifth = %v cents, want %v", cents[7], want)
	}
}

func TestJustPureIntervals(t *testing.T) {
	tmp := mustNew(t, Just)
	ratios := tmp.Ratios()
	if ratios[4] != 5.0/4 {
		t.Errorf("just major third = %v, want 5/4", ratios[4])
	}
	if ratios[7] != 3.0/2 {
		t.Errorf("just fifth = %v, want 3/2", ratios[7])
	}
}
