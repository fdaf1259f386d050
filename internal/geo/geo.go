// Package geo provides the coordinate type and geodesic distance math
// shared by every track computation.
package geo

import "math"

// EarthRadius is the mean Earth radius in meters used by the spherical model.
const EarthRadius = 6371000

// Coordinate is a geographic position in degrees with elevation in meters.
type Coordinate struct {
	Lat       float64
	Lon       float64
	Elevation float64
}

// Distance returns the great-circle distance between a and b in meters
// using the haversine formula. Elevation is ignored.
func Distance(a, b Coordinate) float64 {
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return 0
	}

	lat1Rad := a.Lat * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	deltaLatRad := (b.Lat - a.Lat) * math.Pi / 180
	deltaLonRad := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(deltaLatRad/2)*math.Sin(deltaLatRad/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLonRad/2)*math.Sin(deltaLonRad/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadius * c
}
