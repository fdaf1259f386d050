package track

import (
	"math"
	"sort"

	"github.com/lamprechts/GPXKit/internal/geo"
)

// Segment is one graph entry: a coordinate and its cumulative distance from
// the start of the track.
type Segment struct {
	Coordinate        geo.Coordinate
	DistanceFromStart float64
}

// Graph is the distance-indexed view of a coordinate sequence.
type Graph struct {
	Segments      []Segment
	TotalDistance float64
	ElevationGain float64
}

// ProfilePoint is one height-map entry, both values truncated toward zero.
type ProfilePoint struct {
	Distance  float64
	Elevation float64
}

// NewGraph builds a graph from an ordered coordinate sequence. The first
// segment always sits at distance 0; elevation gain counts only positive
// deltas between consecutive coordinates, descent contributes nothing.
func NewGraph(coords []geo.Coordinate) Graph {
	if len(coords) == 0 {
		return Graph{}
	}

	segments := make([]Segment, len(coords))
	segments[0] = Segment{Coordinate: coords[0]}

	total := 0.0
	gain := 0.0
	for i := 1; i < len(coords); i++ {
		total += geo.Distance(coords[i-1], coords[i])
		segments[i] = Segment{Coordinate: coords[i], DistanceFromStart: total}

		if delta := coords[i].Elevation - coords[i-1].Elevation; delta > 0 {
			gain += delta
		}
	}

	return Graph{Segments: segments, TotalDistance: total, ElevationGain: gain}
}

// HeightMap returns (distance, elevation) pairs for plotting, one per segment.
func (g Graph) HeightMap() []ProfilePoint {
	if len(g.Segments) == 0 {
		return nil
	}

	profile := make([]ProfilePoint, len(g.Segments))
	for i, s := range g.Segments {
		profile[i] = ProfilePoint{
			Distance:  math.Trunc(s.DistanceFromStart),
			Elevation: math.Trunc(s.Coordinate.Elevation),
		}
	}
	return profile
}

// ElevationAt returns the elevation at the given distance from the start,
// linearly interpolated between the two bracketing segments and clamped to
// the track ends outside the covered range.
func (g Graph) ElevationAt(distance float64) float64 {
	if len(g.Segments) == 0 {
		return 0
	}
	if distance <= 0 {
		return g.Segments[0].Coordinate.Elevation
	}

	last := g.Segments[len(g.Segments)-1]
	if distance >= last.DistanceFromStart {
		return last.Coordinate.Elevation
	}

	idx := sort.Search(len(g.Segments), func(i int) bool {
		return g.Segments[i].DistanceFromStart >= distance
	})
	// idx >= 1: distance is strictly inside the covered range
	lo, hi := g.Segments[idx-1], g.Segments[idx]

	span := hi.DistanceFromStart - lo.DistanceFromStart
	if span == 0 {
		return hi.Coordinate.Elevation
	}

	fraction := (distance - lo.DistanceFromStart) / span
	return lo.Coordinate.Elevation + fraction*(hi.Coordinate.Elevation-lo.Coordinate.Elevation)
}
