package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

func TestDistanceKnownValue(t *testing.T) {
	a := Coordinate{Lat: 46.0, Lon: 7.0}
	b := Coordinate{Lat: 46.1, Lon: 7.0}

	dist := Distance(a, b)

	// 0.1 degree of latitude ≈ 11.1 km
	expected := 11100.0
	tolerance := 500.0

	if math.Abs(dist-expected) > tolerance {
		t.Errorf("Distance incorrect: got %.0fm, expected ~%.0fm", dist, expected)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := Coordinate{Lat: 46.0, Lon: 7.0}
	b := Coordinate{Lat: 46.2317, Lon: 7.3589}

	if ab, ba := Distance(a, b), Distance(b, a); ab != ba {
		t.Errorf("Distance not symmetric: a->b=%f, b->a=%f", ab, ba)
	}
}

func TestDistanceIdenticalCoordinates(t *testing.T) {
	c := Coordinate{Lat: 46.0, Lon: 7.0, Elevation: 1000}

	if d := Distance(c, c); d != 0 {
		t.Errorf("Expected 0 for identical coordinates, got %f", d)
	}
}

func TestDistanceIgnoresElevation(t *testing.T) {
	a := Coordinate{Lat: 46.0, Lon: 7.0, Elevation: 500}
	b := Coordinate{Lat: 46.001, Lon: 7.001, Elevation: 3200}

	flat := Distance(
		Coordinate{Lat: a.Lat, Lon: a.Lon},
		Coordinate{Lat: b.Lat, Lon: b.Lon})

	if d := Distance(a, b); d != flat {
		t.Errorf("Elevation leaked into distance: got %f, expected %f", d, flat)
	}
}

func TestDistanceMatchesReferenceLibrary(t *testing.T) {
	// The spherical radius here (6371000) and orb's WGS-84 mean radius
	// (6378137) differ by ~0.11%, so 0.5% relative tolerance.
	pairs := []struct {
		name string
		a, b Coordinate
	}{
		{"alpine short hop", Coordinate{Lat: 46.0, Lon: 7.0}, Coordinate{Lat: 46.001, Lon: 7.001}},
		{"one degree north", Coordinate{Lat: 46.0, Lon: 7.0}, Coordinate{Lat: 47.0, Lon: 7.0}},
		{"equator crossing", Coordinate{Lat: -0.5, Lon: 11.2}, Coordinate{Lat: 0.5, Lon: 11.3}},
		{"high latitude", Coordinate{Lat: 69.65, Lon: 18.96}, Coordinate{Lat: 69.68, Lon: 19.02}},
		{"city to city", Coordinate{Lat: 52.52, Lon: 13.405}, Coordinate{Lat: 48.8566, Lon: 2.3522}},
	}

	for _, p := range pairs {
		got := Distance(p.a, p.b)
		want := orbgeo.Distance(
			orb.Point{p.a.Lon, p.a.Lat},
			orb.Point{p.b.Lon, p.b.Lat})

		if want == 0 {
			if got != 0 {
				t.Errorf("%s: expected 0, got %f", p.name, got)
			}
			continue
		}

		if rel := math.Abs(got-want) / want; rel > 0.005 {
			t.Errorf("%s: deviates %.3f%% from reference (got %.1fm, reference %.1fm)",
				p.name, rel*100, got, want)
		}
	}
}
