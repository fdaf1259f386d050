package track

import (
	"time"

	"github.com/lamprechts/GPXKit/internal/geo"
)

// Track is a fully assembled GPS track. It is built once per parse and not
// modified afterwards. An empty Description or zero Date means the source
// carried none.
type Track struct {
	Title              string
	Description        string
	Date               time.Time
	Keywords           []string
	Points             []Point
	GradeSegmentLength float64
}

// Coordinates returns the ordered coordinate sequence of the track.
func (t *Track) Coordinates() []geo.Coordinate {
	coords := make([]geo.Coordinate, len(t.Points))
	for i, p := range t.Points {
		coords[i] = p.Coordinate
	}
	return coords
}

// Graph builds the distance-indexed graph for the track.
func (t *Track) Graph() Graph {
	return NewGraph(t.Coordinates())
}

// GradeSegments derives grade segments using the track's configured segment
// length.
func (t *Track) GradeSegments() []GradeSegment {
	return t.Graph().GradeSegments(t.GradeSegmentLength)
}
