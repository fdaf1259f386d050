package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lamprechts/GPXKit/internal/track"
)

const (
	gpxNamespace = "http://www.topografix.com/GPX/1/1"
	gpxCreator   = "GPXKit"
)

// Write serializes the track as an indented GPX 1.1 document. Timestamps
// are written as RFC 3339 in UTC, the metadata block is omitted when the
// track carries neither date nor keywords, and power readings go into a
// per-point extensions element. Parsing the output reproduces the track.
func Write(w io.Writer, t *track.Track) error {
	doc := document{
		Version: "1.1",
		Creator: gpxCreator,
		XMLNS:   gpxNamespace,
		Track: trackElem{
			Name:        t.Title,
			Description: t.Description,
			Segment:     segmentElem{Points: make([]pointElem, len(t.Points))},
		},
	}

	if !t.Date.IsZero() || len(t.Keywords) > 0 {
		meta := &metadataElem{Keywords: strings.Join(t.Keywords, " ")}
		if !t.Date.IsZero() {
			meta.Time = t.Date.UTC().Format(time.RFC3339)
		}
		doc.Metadata = meta
	}

	for i, p := range t.Points {
		elem := pointElem{
			Lat:       p.Coordinate.Lat,
			Lon:       p.Coordinate.Lon,
			Elevation: p.Coordinate.Elevation,
		}
		if !p.Time.IsZero() {
			elem.Time = p.Time.UTC().Format(time.RFC3339)
		}
		if p.Power != nil {
			elem.Extensions = &extensionsElem{Power: *p.Power}
		}
		doc.Track.Segment.Points[i] = elem
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode GPX: %w", err)
	}

	return nil
}

// WriteFile serializes the track to a GPX file at path.
func WriteFile(path string, t *track.Track) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
