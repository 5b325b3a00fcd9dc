package pitch

import "sort"

// Peak-picking policy. Tunables of the design, not user-configurable.
const (
	// MinPeakDistance is the minimum index separation between two
	// returned peaks.
	MinPeakDistance = 200
	// PeakHeightCap bounds the minimum-height threshold from above, so
	// quiet but clean signals still produce peaks.
	PeakHeightCap = 25.0
)

// FindPeaks returns the indices of spectral local maxima, in ascending
// index order.
//
// A bin qualifies when it exceeds both neighbors and reaches the minimum
// height min(PeakHeightCap, max(magnitude)/2). When two qualifying maxima
// lie closer than MinPeakDistance bins, only the taller survives. The
// returned set is restricted to the first half of the spectrum; the back
// half of a real-input transform is the negative-frequency mirror and
// carries no extra information.
func FindPeaks(s Spectrum) []int {
	mags := s.Magnitudes
	if len(mags) < 3 {
		return nil
	}

	maxMag := mags[0]
	for _, m := range mags[1:] {
		if m > maxMag {
			maxMag = m
		}
	}
	minHeight := PeakHeightCap
	if maxMag/2 < minHeight {
		minHeight = maxMag / 2
	}

	half := len(mags) / 2
	var candidates []int
	for i := 1; i < half; i++ {
		if i+1 >= len(mags) {
			break
		}
		if mags[i] > mags[i-1] && mags[i] > mags[i+1] && mags[i] >= minHeight {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Tallest-first greedy suppression of close neighbors.
	byHeight := append([]int(nil), candidates...)
	sort.Slice(byHeight, func(a, b int) bool {
		return mags[byHeight[a]] > mags[byHeight[b]]
	})

	kept := make([]int, 0, len(byHeight))
	for _, idx := range byHeight {
		ok := true
		for _, k := range kept {
			if abs(idx-k) < MinPeakDistance {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, idx)
		}
	}

	sort.Ints(kept)
	return kept
}

// Best returns the index of the peak with the greatest magnitude, the
// dominant-pitch estimate for the chunk. ok is false when peaks is empty.
func Best(s Spectrum, peaks []int) (idx int, ok bool) {
	if len(peaks) == 0 {
		return 0, false
	}
	best := peaks[0]
	for _, p := range peaks[1:] {
		if s.Magnitudes[p] > s.Magnitudes[best] {
			best = p
		}
	}
	return best, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
