// Package gpx reads GPX documents into track values and writes them back
// out as GPX 1.1.
package gpx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lamprechts/GPXKit/internal/track"
)

// The two sentinel parse failures. ErrMalformed means the input is not
// markup at all; ErrNoTrack means the document is well-formed but carries
// no named track.
var (
	ErrMalformed = errors.New("gpx: not a well-formed document")
	ErrNoTrack   = errors.New("gpx: no track found")
)

// ParseError reports a document that became unparseable after decoding had
// begun. Line is 1-based.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gpx: document broke at line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a GPX document and assembles the track: coordinates from the
// point attributes, optional elevation, timestamp and power children, and
// title, description, date and keywords from the surrounding elements.
// Points without numeric lat/lon are dropped silently, elevation gaps are
// repaired, and segmentLength is retained on the track for downstream
// grade computation (non-positive values fall back to
// track.DefaultGradeSegmentLength).
func Parse(r io.Reader, segmentLength float64) (*track.Track, error) {
	root, err := parseTree(r)
	if err != nil {
		return nil, err
	}

	trk := root.Find("trk")
	if trk == nil {
		return nil, ErrNoTrack
	}
	title := trk.ChildContent("name")
	if title == "" {
		return nil, ErrNoTrack
	}

	var raw []track.RawPoint
	for _, seg := range trk.FindAll("trkseg") {
		for _, pt := range seg.Children {
			if pt.Name != "trkpt" {
				continue
			}
			point, ok := rawPoint(pt)
			if !ok {
				continue
			}
			raw = append(raw, point)
		}
	}

	if segmentLength <= 0 {
		segmentLength = track.DefaultGradeSegmentLength
	}

	t := &track.Track{
		Title:              title,
		Description:        trk.ChildContent("desc"),
		Points:             track.RepairElevation(raw),
		GradeSegmentLength: segmentLength,
	}

	if meta := root.Find("metadata"); meta != nil {
		t.Date = parseTimeSafe(meta.ChildContent("time"))
		t.Keywords = strings.Fields(meta.ChildContent("keywords"))
	}

	return t, nil
}

// rawPoint maps one trkpt node to a raw sample. A point without numeric
// lat/lon attributes is reported as not ok and dropped by the caller.
func rawPoint(pt *Node) (track.RawPoint, bool) {
	lat, errLat := strconv.ParseFloat(pt.Attributes["lat"], 64)
	lon, errLon := strconv.ParseFloat(pt.Attributes["lon"], 64)
	if errLat != nil || errLon != nil {
		return track.RawPoint{}, false
	}

	point := track.RawPoint{Lat: lat, Lon: lon}

	if ele := pt.ChildContent("ele"); ele != "" {
		if v, err := strconv.ParseFloat(ele, 64); err == nil {
			point.Elevation = &v
		}
	}
	if ts := pt.ChildContent("time"); ts != "" {
		point.Time = parseTimeSafe(ts)
	}
	if power := pt.Find("power"); power != nil {
		if w, err := strconv.Atoi(strings.TrimSpace(power.Content)); err == nil {
			point.Power = &w
		}
	}

	return point, true
}

// parseTimeSafe tries multiple timestamp layouts seen in the wild; an
// unparseable string yields the zero time rather than an error.
func parseTimeSafe(s string) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000Z07:00",
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05.000Z",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseBytes parses a GPX document held in memory.
func ParseBytes(data []byte, segmentLength float64) (*track.Track, error) {
	return Parse(bytes.NewReader(data), segmentLength)
}

// ParseString parses a GPX document held in a string.
func ParseString(s string, segmentLength float64) (*track.Track, error) {
	return Parse(strings.NewReader(s), segmentLength)
}

// ParseFile loads and parses a GPX file. Failures to read the file surface
// as wrapped I/O errors, distinct from the parse failure kinds.
func ParseFile(path string, segmentLength float64) (*track.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseBytes(data, segmentLength)
}
