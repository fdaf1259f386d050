package track

import (
	"math"
	"testing"

	"github.com/lamprechts/GPXKit/internal/geo"
)

func TestNewGraphEmpty(t *testing.T) {
	g := NewGraph(nil)

	if len(g.Segments) != 0 {
		t.Errorf("Expected no segments, got %d", len(g.Segments))
	}
	if g.TotalDistance != 0 || g.ElevationGain != 0 {
		t.Errorf("Expected zero totals, got distance=%f gain=%f", g.TotalDistance, g.ElevationGain)
	}
}

func TestNewGraphSinglePoint(t *testing.T) {
	g := NewGraph([]geo.Coordinate{{Lat: 46.0, Lon: 7.0, Elevation: 1000}})

	if len(g.Segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(g.Segments))
	}
	if g.Segments[0].DistanceFromStart != 0 {
		t.Errorf("First segment must sit at distance 0, got %f", g.Segments[0].DistanceFromStart)
	}
	if g.TotalDistance != 0 {
		t.Errorf("Expected zero total distance, got %f", g.TotalDistance)
	}
}

func TestNewGraphCumulativeDistance(t *testing.T) {
	coords := []geo.Coordinate{
		{Lat: 46.0, Lon: 7.0, Elevation: 1000},
		{Lat: 46.001, Lon: 7.001, Elevation: 1010},
		{Lat: 46.002, Lon: 7.002, Elevation: 1005},
	}

	g := NewGraph(coords)

	if len(g.Segments) != len(coords) {
		t.Fatalf("Expected %d segments, got %d", len(coords), len(g.Segments))
	}
	if g.Segments[0].DistanceFromStart != 0 {
		t.Errorf("First segment must sit at distance 0, got %f", g.Segments[0].DistanceFromStart)
	}

	wantTotal := geo.Distance(coords[0], coords[1]) + geo.Distance(coords[1], coords[2])
	if math.Abs(g.TotalDistance-wantTotal) > 1e-9 {
		t.Errorf("Total distance %f does not match pairwise sum %f", g.TotalDistance, wantTotal)
	}
	if g.Segments[2].DistanceFromStart != g.TotalDistance {
		t.Errorf("Last segment distance %f != total %f",
			g.Segments[2].DistanceFromStart, g.TotalDistance)
	}
}

func TestElevationGainAscent(t *testing.T) {
	coords := []geo.Coordinate{
		{Lat: 46.0, Lon: 7.0, Elevation: 1000},
		{Lat: 46.001, Lon: 7.0, Elevation: 1050},
		{Lat: 46.002, Lon: 7.0, Elevation: 1120},
	}

	g := NewGraph(coords)

	if math.Abs(g.ElevationGain-120) > 1e-9 {
		t.Errorf("Expected 120m gain for a monotonic ascent, got %f", g.ElevationGain)
	}
}

func TestElevationGainDescent(t *testing.T) {
	coords := []geo.Coordinate{
		{Lat: 46.0, Lon: 7.0, Elevation: 1120},
		{Lat: 46.001, Lon: 7.0, Elevation: 1050},
		{Lat: 46.002, Lon: 7.0, Elevation: 1000},
	}

	g := NewGraph(coords)

	if g.ElevationGain != 0 {
		t.Errorf("Descent must contribute no gain, got %f", g.ElevationGain)
	}
}

func TestElevationGainFlat(t *testing.T) {
	coords := []geo.Coordinate{
		{Lat: 46.0, Lon: 7.0, Elevation: 1000},
		{Lat: 46.001, Lon: 7.0, Elevation: 1000},
		{Lat: 46.002, Lon: 7.0, Elevation: 1000},
	}

	if g := NewGraph(coords); g.ElevationGain != 0 {
		t.Errorf("Flat track must have zero gain, got %f", g.ElevationGain)
	}
}

func TestElevationGainMixed(t *testing.T) {
	// Climb 50, drop 30, climb 20: only the climbs count.
	coords := []geo.Coordinate{
		{Lat: 46.0, Lon: 7.0, Elevation: 1000},
		{Lat: 46.001, Lon: 7.0, Elevation: 1050},
		{Lat: 46.002, Lon: 7.0, Elevation: 1020},
		{Lat: 46.003, Lon: 7.0, Elevation: 1040},
	}

	g := NewGraph(coords)

	if math.Abs(g.ElevationGain-70) > 1e-9 {
		t.Errorf("Expected 70m gain from the two climbs, got %f", g.ElevationGain)
	}
}

func TestHeightMapTruncation(t *testing.T) {
	coords := []geo.Coordinate{
		{Lat: 46.0, Lon: 7.0, Elevation: 999.9},
		{Lat: 46.001, Lon: 7.0, Elevation: 1010.7},
	}

	g := NewGraph(coords)
	profile := g.HeightMap()

	if len(profile) != 2 {
		t.Fatalf("Expected 2 profile points, got %d", len(profile))
	}
	if profile[0].Distance != 0 || profile[0].Elevation != 999 {
		t.Errorf("First entry should truncate to (0, 999), got (%f, %f)",
			profile[0].Distance, profile[0].Elevation)
	}
	if want := math.Trunc(g.Segments[1].DistanceFromStart); profile[1].Distance != want {
		t.Errorf("Distance not truncated: got %f, want %f", profile[1].Distance, want)
	}
	if profile[1].Elevation != 1010 {
		t.Errorf("Elevation not truncated: got %f, want 1010", profile[1].Elevation)
	}
}

func TestHeightMapEmpty(t *testing.T) {
	if profile := (Graph{}).HeightMap(); profile != nil {
		t.Errorf("Expected nil profile for empty graph, got %v", profile)
	}
}

func TestElevationAtInterpolates(t *testing.T) {
	g := Graph{
		Segments: []Segment{
			{Coordinate: geo.Coordinate{Elevation: 100}, DistanceFromStart: 0},
			{Coordinate: geo.Coordinate{Elevation: 200}, DistanceFromStart: 100},
			{Coordinate: geo.Coordinate{Elevation: 150}, DistanceFromStart: 300},
		},
		TotalDistance: 300,
	}

	cases := []struct {
		distance float64
		want     float64
	}{
		{-10, 100}, // clamped to start
		{0, 100},
		{50, 150},
		{100, 200},
		{200, 175}, // halfway down the 200→150 stretch
		{300, 150},
		{400, 150}, // clamped to end
	}

	for _, c := range cases {
		if got := g.ElevationAt(c.distance); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ElevationAt(%.0f) = %f, want %f", c.distance, got, c.want)
		}
	}
}

func TestElevationAtEmptyGraph(t *testing.T) {
	if got := (Graph{}).ElevationAt(10); got != 0 {
		t.Errorf("Expected 0 for empty graph, got %f", got)
	}
}
