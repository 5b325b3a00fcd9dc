package pitch_test

import (
	"fmt"

	"github.com/cwbudde/algo-tuner/pitch"
	"github.com/cwbudde/algo-tuner/temperament"
)

func ExampleMatch() {
	tmp, err := temperament.New(temperament.Equal)
	if err != nil {
		panic(err)
	}

	m := pitch.MatchTemperament(445.0, tmp)
	fmt.Println(m)
	// Output:
	// A4 +20
}

func ExampleFindPeaks() {
	s := pitch.Spectrum{
		Frequencies: pitch.BinFrequencies(2048, 2048),
		Magnitudes:  make([]float64, 2048),
	}
	s.Magnitudes[100] = 50
	s.Magnitudes[500] = 30

	peaks := pitch.FindPeaks(s)
	for _, p := range peaks {
		fmt.Printf("%.0f Hz: %.0f\n", s.Frequencies[p], s.Magnitudes[p])
	}
	// Output:
	// 100 Hz: 50
	// 500 Hz: 30
}
