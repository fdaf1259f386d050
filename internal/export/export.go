// Package export renders analyzed tracks into interchange formats for
// downstream visualization.
package export

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/lamprechts/GPXKit/internal/track"
)

// GeoJSON renders the track as a FeatureCollection holding one LineString
// feature with summary properties.
func GeoJSON(t *track.Track, g track.Graph) ([]byte, error) {
	line := make(orb.LineString, len(t.Points))
	for i, p := range t.Points {
		line[i] = orb.Point{p.Coordinate.Lon, p.Coordinate.Lat}
	}

	feature := geojson.NewFeature(line)
	feature.Properties["name"] = t.Title
	feature.Properties["distance_m"] = g.TotalDistance
	feature.Properties["elevation_gain_m"] = g.ElevationGain
	feature.Properties["points"] = len(t.Points)

	collection := geojson.NewFeatureCollection()
	collection.Append(feature)

	return collection.MarshalJSON()
}

// ProfileRow is one elevation profile entry in CSV form.
type ProfileRow struct {
	Distance  float64 `csv:"distance_m"`
	Elevation float64 `csv:"elevation_m"`
}

// ProfileCSV writes the graph's height map as CSV rows, one per track
// point, distances and elevations truncated to whole meters.
func ProfileCSV(w io.Writer, g track.Graph) error {
	profile := g.HeightMap()
	rows := make([]ProfileRow, len(profile))
	for i, p := range profile {
		rows[i] = ProfileRow{Distance: p.Distance, Elevation: p.Elevation}
	}
	return gocsv.Marshal(&rows, w)
}
