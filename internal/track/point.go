// Package track models a GPS recording as an ordered point sequence and
// derives distance, elevation and grade information from it.
package track

import (
	"time"

	"github.com/lamprechts/GPXKit/internal/geo"
)

// Point is one recorded track sample. A zero Time means the source carried
// no timestamp; a nil Power means no power sample.
type Point struct {
	Coordinate geo.Coordinate
	Time       time.Time
	Power      *int
}

// RawPoint is a sample as read from the source document, before elevation
// repair. Elevation is nil when the source carried no reading.
type RawPoint struct {
	Lat       float64
	Lon       float64
	Elevation *float64
	Time      time.Time
	Power     *int
}

// Coordinate returns the raw point's position, with elevation 0 while the
// reading is still missing.
func (p RawPoint) Coordinate() geo.Coordinate {
	c := geo.Coordinate{Lat: p.Lat, Lon: p.Lon}
	if p.Elevation != nil {
		c.Elevation = *p.Elevation
	}
	return c
}
