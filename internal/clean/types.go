package clean

import (
	"time"

	"github.com/lamprechts/GPXKit/internal/track"
)

// Config holds the geometric cleaning parameters.
type Config struct {
	// MinPointDistance is the minimum geodesic distance in meters between
	// consecutive kept points. Zero disables decimation.
	MinPointDistance float64

	// SmoothingSamples is the target number of averaging windows spanning
	// the track during elevation smoothing. Zero disables smoothing.
	SmoothingSamples int

	// MaxRemovedPercent is a safety guard: a warning is logged when
	// decimation removes a larger share of points than this.
	MaxRemovedPercent float64
}

// DefaultConfig returns the recommended cleaning configuration.
func DefaultConfig() Config {
	return Config{
		MinPointDistance:  2.0,
		SmoothingSamples:  100,
		MaxRemovedPercent: 20.0,
	}
}

// Stats reports what the cleaning pipeline did to a track.
type Stats struct {
	OriginalPoints   int           `json:"original_points"`
	FinalPoints      int           `json:"final_points"`
	PointsRemoved    int           `json:"points_removed"`
	PointsPercent    float64       `json:"points_removed_percent"`
	OriginalDistance float64       `json:"original_distance_km"`
	FinalDistance    float64       `json:"final_distance_km"`
	OriginalGain     float64       `json:"original_elevation_gain_m"`
	FinalGain        float64       `json:"final_elevation_gain_m"`
	ProcessingTime   time.Duration `json:"processing_time_ms"`
}

// CleaningResult contains the cleaned points and statistics.
type CleaningResult struct {
	Points []track.Point
	Stats  Stats
}
