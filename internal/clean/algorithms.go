package clean

import "github.com/lamprechts/GPXKit/internal/geo"

// RemoveCloserThan drops every coordinate closer than threshold meters to
// the most recently kept one. The first coordinate is always kept, and a
// discarded coordinate leaves the comparison anchored on the last kept
// point, so dense clusters collapse onto their first member. Order is
// preserved.
func RemoveCloserThan(coords []geo.Coordinate, threshold float64) []geo.Coordinate {
	if len(coords) <= 1 {
		return coords
	}

	indices := decimateIndices(coords, threshold)
	kept := make([]geo.Coordinate, len(indices))
	for i, idx := range indices {
		kept[i] = coords[idx]
	}
	return kept
}

// decimateIndices returns the indices that survive the greedy distance
// walk, so callers can carry per-point payloads alongside the coordinates.
func decimateIndices(coords []geo.Coordinate, threshold float64) []int {
	if len(coords) == 0 {
		return nil
	}

	indices := make([]int, 0, len(coords))
	indices = append(indices, 0)
	lastKept := 0

	for i := 1; i < len(coords); i++ {
		if geo.Distance(coords[lastKept], coords[i]) >= threshold {
			indices = append(indices, i)
			lastKept = i
		}
	}

	return indices
}

// SmoothElevation applies a centered moving average to the elevation
// component of the coordinates. The window spans len(coords)/sampleCount
// points (at least one) and is clamped at the track edges, so boundary
// points average over fewer neighbors instead of reaching past the ends.
// Latitude and longitude pass through untouched.
func SmoothElevation(coords []geo.Coordinate, sampleCount int) []geo.Coordinate {
	smoothed := make([]geo.Coordinate, len(coords))
	copy(smoothed, coords)

	if len(coords) == 0 || sampleCount <= 0 {
		return smoothed
	}

	window := len(coords) / sampleCount
	if window < 1 {
		window = 1
	}
	half := window / 2

	for i := range coords {
		start := max(0, i-half)
		end := min(len(coords), i+half+1)

		sum := 0.0
		for j := start; j < end; j++ {
			sum += coords[j].Elevation
		}
		smoothed[i].Elevation = sum / float64(end-start)
	}

	return smoothed
}
