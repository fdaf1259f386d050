package track

import "github.com/lamprechts/GPXKit/internal/geo"

// RepairElevation returns a fresh point sequence with every missing elevation
// filled in: boundary gaps copy the nearest real reading, interior gaps are
// interpolated along the straight-line grade between their valid neighbors,
// and a track with no elevation data at all falls back to 0 everywhere.
// Timestamps and power samples are carried through unchanged.
func RepairElevation(points []RawPoint) []Point {
	raw := make([]RawPoint, len(points))
	copy(raw, points)

	fixBoundaries(raw)
	interpolateGaps(raw)

	out := make([]Point, len(raw))
	for i, p := range raw {
		elevation := 0.0
		if p.Elevation != nil {
			elevation = *p.Elevation
		}
		out[i] = Point{
			Coordinate: geo.Coordinate{Lat: p.Lat, Lon: p.Lon, Elevation: elevation},
			Time:       p.Time,
			Power:      p.Power,
		}
	}

	return out
}

// fixBoundaries gives the first and last point a real elevation by scanning
// inward for the nearest valid reading. A sequence without any valid reading
// is left untouched.
func fixBoundaries(points []RawPoint) {
	if len(points) == 0 {
		return
	}

	if points[0].Elevation == nil {
		for _, p := range points {
			if p.Elevation != nil {
				e := *p.Elevation
				points[0].Elevation = &e
				break
			}
		}
	}

	last := len(points) - 1
	if points[last].Elevation == nil {
		for i := last; i >= 0; i-- {
			if points[i].Elevation != nil {
				e := *points[i].Elevation
				points[last].Elevation = &e
				break
			}
		}
	}
}

// interpolateGaps fills runs of missing readings that sit between two valid
// runs. The grade between the last point before a gap and the first point
// after it is applied over geodesic distance from the gap's start anchor.
func interpolateGaps(points []RawPoint) {
	runs := PartitionBy(points, func(p RawPoint) bool { return p.Elevation != nil })

	for i, run := range runs {
		if run.Match {
			continue
		}
		if i == 0 || i == len(runs)-1 {
			// No valid neighbor on one side; the boundary pass already
			// did what it could.
			continue
		}

		before := runs[i-1].Items
		after := runs[i+1].Items
		start := before[len(before)-1]
		end := after[0]

		grade := 0.0
		if span := geo.Distance(start.Coordinate(), end.Coordinate()); span > 0 {
			grade = (*end.Elevation - *start.Elevation) / span
		}

		for j := range run.Items {
			d := geo.Distance(start.Coordinate(), run.Items[j].Coordinate())
			e := *start.Elevation + d*grade
			run.Items[j].Elevation = &e
		}
	}
}
