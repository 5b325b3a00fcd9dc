package temperament

import "strings"

// Equal spaces all 12 tones by exactly 100 cents.
var Equal = Definition{
	Name: "Equal",
	Cents: []float64{
		0, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100,
	},
}

// Just uses the purest ratios for the "white keys"; the "black keys" come
// from 5-limit tuning.
var Just = Definition{
	Name: "Just",
	Ratios: []float64{
		1, 16.0 / 15, 9.0 / 8, 6.0 / 5, 5.0 / 4, 4.0 / 3,
		64.0 / 45, 3.0 / 2, 8.0 / 5, 5.0 / 3, 19.0 / 9, 15.0 / 8,
	},
}

// Pythagorean is the pre-Renaissance tuning optimized for pure fifths.
var Pythagorean = Definition{
	Name: "Pythagorean",
	Ratios: []float64{
		1, 256.0 / 243, 9.0 / 8, 32.0 / 27, 81.0 / 64, 4.0 / 3,
		729.0 / 512, 3.0 / 2, 128.0 / 81, 27.0 / 16, 16.0 / 9, 243.0 / 128,
	},
}

// Meantone is the Renaissance-era tuning favoring pure major thirds.
var Meantone = Definition{
	Name: "Meantone",
	Cents: []float64{
		0, 81.427, 194.135, 306.842, 388.270, 502.933,
		583.383, 697.067, 780.450, 891.202, 1004.888, 1085.338,
	},
}

// WellTempered is the well-temperament championed by Bach as an
// alternative to meantone.
var WellTempered = Definition{
	Name: "Well-Tempered",
	Cents: []float64{
		0, 90.225, 193.484, 294.135, 386.968, 498.045,
		588.270, 696.742, 792.180, 890.226, 996.090, 1088.923,
	},
}

// Rameau modifies meantone to eliminate most wolf notes while keeping most
// of its pure harmonies.
var Rameau = Definition{
	Name: "Rameau",
	Cents: []float64{
		0, 84.360, 192.180, 288.270, 384.360, 503.910,
		582.405, 696.090, 786.315, 888.270, 996.090, 1080.450,
	},
}

// WerckmeisterI places the best thirds in the keys with the fewest
// incidentals (1600s; also known as Werckmeister III).
var WerckmeisterI = Definition{
	Name: "Werckmeister I (III)",
	Cents: []float64{
		0, 90.225, 192.180, 294.135, 390.225, 498.045,
		588.270, 696.090, 792.180, 888.270, 996.090, 1092.180,
	},
}

// KirnbergerIII keeps most fifths pure, narrowing C-G, G-D, D-A and A-E by
// a quarter of the Pythagorean comma (1776).
var KirnbergerIII = Definition{
	Name: "Kirnberger III",
	Cents: []float64{
		0, 90.225, 203.910, 294.135, 386.315, 498.045,
		590.225, 701.955, 792.180, 884.360, 996.090, 1088.270,
	},
}

// VallottiYoung is the well-temperament scheme of Vallotti and Young
// (1779).
var VallottiYoung = Definition{
	Name: "Vallotti & Young",
	Cents: []float64{
		0, 94, 196, 278, 392, 475, 588, 696, 790, 894, 975, 1090,
	},
}

type registryEntry struct {
	key string
	def Definition
}

var registry = []registryEntry{
	{"equal", Equal},
	{"just", Just},
	{"pythagorean", Pythagorean},
	{"meantone", Meantone},
	{"well-tempered", WellTempered},
	{"rameau", Rameau},
	{"werckmeister1", WerckmeisterI},
	{"kirnberger3", KirnbergerIII},
	{"vallotti-young", VallottiYoung},
}

// Keys returns the lookup keys of all registered temperaments in table order.
func Keys() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.key
	}
	return out
}

// Definitions returns all registered temperament definitions in table order.
func Definitions() []Definition {
	out := make([]Definition, len(registry))
	for i, e := range registry {
		out[i] = e.def
	}
	return out
}

// Lookup resolves a registry key such as "just" or "werckmeister1".
// Matching is case-insensitive.
func Lookup(key string) (Definition, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, e := range registry {
		if e.key == key {
			return e.def, true
		}
	}
	return Definition{}, false
}
