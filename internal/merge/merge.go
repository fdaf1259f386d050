// Package merge fills recording gaps in a primary track with points from a
// backup recording of the same activity.
package merge

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/lamprechts/GPXKit/internal/geo"
	"github.com/lamprechts/GPXKit/internal/track"
)

// Config controls how the merge operation behaves.
type Config struct {
	// GapThreshold defines the minimum pause duration (in wall-clock time)
	// that will be considered a gap worth filling with the secondary track.
	// If zero, DefaultConfig().GapThreshold is used.
	GapThreshold time.Duration

	// MaxDeviationMeters limits how far inserted secondary points may sit
	// from the gap's endpoints. Set to a negative value to disable the
	// guard. A zero value means "use the default".
	MaxDeviationMeters float64
}

// Stats reports what happened during the merge so callers can surface it
// to users.
type Stats struct {
	GapsDetected   int
	GapsFilled     int
	InsertedPoints int
}

// DefaultConfig returns the recommended configuration for production use.
func DefaultConfig() Config {
	return Config{
		GapThreshold:       2 * time.Minute,
		MaxDeviationMeters: 60,
	}
}

// MergeTracks fills wall-clock gaps in the primary track with secondary
// points falling strictly inside each gap's time window. Only the primary
// track's own recording window is considered, which prevents a
// longer-running backup device from adding leading or trailing segments
// the athlete did not record. The result is a fresh track carrying the
// primary's metadata.
func MergeTracks(primary, secondary *track.Track, cfg Config) (*track.Track, Stats, error) {
	if primary == nil {
		return nil, Stats{}, errors.New("primary track is nil")
	}
	if secondary == nil {
		return nil, Stats{}, errors.New("secondary track is nil")
	}
	if len(primary.Points) == 0 {
		return nil, Stats{}, errors.New("primary track has no points")
	}

	defaults := DefaultConfig()
	if cfg.GapThreshold <= 0 {
		cfg.GapThreshold = defaults.GapThreshold
	}
	if cfg.MaxDeviationMeters == 0 {
		cfg.MaxDeviationMeters = defaults.MaxDeviationMeters
	}

	start, end := timeBounds(primary.Points)
	if start.IsZero() || end.IsZero() {
		return nil, Stats{}, errors.New("primary track lacks timestamped points")
	}

	stats := Stats{}
	candidates := windowPoints(secondary.Points, start, end)
	if len(candidates) == 0 {
		return cloneWithPoints(primary, clonePoints(primary.Points)), stats, nil
	}

	merged := fillGaps(primary.Points, candidates, cfg, &stats)
	return cloneWithPoints(primary, merged), stats, nil
}

// fillGaps walks the primary points and splices in secondary candidates
// wherever consecutive timestamps sit further apart than the threshold.
func fillGaps(primary, secondary []track.Point, cfg Config, stats *Stats) []track.Point {
	merged := make([]track.Point, 0, len(primary)+len(secondary))
	secondaryIdx := 0

	for i, current := range primary {
		merged = append(merged, current)

		if i == len(primary)-1 {
			continue
		}
		next := primary[i+1]
		if current.Time.IsZero() || next.Time.IsZero() {
			continue
		}

		gap := next.Time.Sub(current.Time)
		if gap <= cfg.GapThreshold {
			continue
		}
		stats.GapsDetected++

		for secondaryIdx < len(secondary) && !secondary[secondaryIdx].Time.After(current.Time) {
			secondaryIdx++
		}

		insertionStart := len(merged)
		idx := secondaryIdx

		for idx < len(secondary) {
			candidate := secondary[idx]
			if !candidate.Time.Before(next.Time) {
				break
			}
			if samePoint(merged[len(merged)-1], candidate) {
				idx++
				continue
			}
			if cfg.MaxDeviationMeters > 0 &&
				geo.Distance(current.Coordinate, candidate.Coordinate) > cfg.MaxDeviationMeters &&
				geo.Distance(candidate.Coordinate, next.Coordinate) > cfg.MaxDeviationMeters {
				idx++
				continue
			}
			merged = append(merged, candidate)
			idx++
		}

		if inserted := len(merged) - insertionStart; inserted > 0 {
			stats.GapsFilled++
			stats.InsertedPoints += inserted
			secondaryIdx = idx
		}
	}

	return merged
}

// windowPoints keeps the timestamped secondary points that fall inside the
// primary recording window, ordered by time. Backup devices often start a
// second early or stop a second late, hence the tolerance.
func windowPoints(points []track.Point, start, end time.Time) []track.Point {
	const tolerance = time.Second

	filtered := make([]track.Point, 0, len(points))
	for _, pt := range points {
		if pt.Time.IsZero() {
			continue
		}
		if pt.Time.Before(start.Add(-tolerance)) {
			continue
		}
		if pt.Time.After(end.Add(tolerance)) {
			continue
		}
		filtered = append(filtered, pt)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Time.Before(filtered[j].Time)
	})

	return filtered
}

func timeBounds(points []track.Point) (time.Time, time.Time) {
	var start time.Time
	var end time.Time

	for _, pt := range points {
		if pt.Time.IsZero() {
			continue
		}
		if start.IsZero() || pt.Time.Before(start) {
			start = pt.Time
		}
		if end.IsZero() || pt.Time.After(end) {
			end = pt.Time
		}
	}

	return start, end
}

func samePoint(a, b track.Point) bool {
	const epsilon = 1e-9
	return math.Abs(a.Coordinate.Lat-b.Coordinate.Lat) < epsilon &&
		math.Abs(a.Coordinate.Lon-b.Coordinate.Lon) < epsilon &&
		a.Time.Equal(b.Time)
}

func clonePoints(src []track.Point) []track.Point {
	out := make([]track.Point, len(src))
	copy(out, src)
	return out
}

func cloneWithPoints(t *track.Track, points []track.Point) *track.Track {
	return &track.Track{
		Title:              t.Title,
		Description:        t.Description,
		Date:               t.Date,
		Keywords:           append([]string(nil), t.Keywords...),
		Points:             points,
		GradeSegmentLength: t.GradeSegmentLength,
	}
}
