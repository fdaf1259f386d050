// Package clean removes redundant points from GPS tracks and smooths
// barometric elevation noise.
package clean

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lamprechts/GPXKit/internal/geo"
	"github.com/lamprechts/GPXKit/internal/track"
)

// Clean runs the cleaning pipeline over the points: decimation of
// near-duplicate coordinates followed by moving-window elevation
// smoothing, with before/after statistics computed from the track graph.
// Timestamps and power readings travel with their points.
func Clean(points []track.Point, cfg Config) (CleaningResult, error) {
	if len(points) == 0 {
		return CleaningResult{Points: points}, nil
	}

	startTime := time.Now()

	coords := make([]geo.Coordinate, len(points))
	for i, p := range points {
		coords[i] = p.Coordinate
	}
	before := track.NewGraph(coords)

	indices := decimateIndices(coords, cfg.MinPointDistance)

	kept := make([]track.Point, len(indices))
	keptCoords := make([]geo.Coordinate, len(indices))
	for i, idx := range indices {
		kept[i] = points[idx]
		keptCoords[i] = coords[idx]
	}

	smoothed := SmoothElevation(keptCoords, cfg.SmoothingSamples)
	for i := range kept {
		kept[i].Coordinate = smoothed[i]
	}

	after := track.NewGraph(smoothed)

	removed := len(points) - len(kept)
	removedPercent := float64(removed) / float64(len(points)) * 100
	if cfg.MaxRemovedPercent > 0 && removedPercent > cfg.MaxRemovedPercent {
		log.Warn().
			Float64("removed_percent", removedPercent).
			Float64("limit", cfg.MaxRemovedPercent).
			Msg("Decimation removed more points than expected, check the distance threshold")
	}

	stats := Stats{
		OriginalPoints:   len(points),
		FinalPoints:      len(kept),
		PointsRemoved:    removed,
		PointsPercent:    removedPercent,
		OriginalDistance: before.TotalDistance / 1000,
		FinalDistance:    after.TotalDistance / 1000,
		OriginalGain:     before.ElevationGain,
		FinalGain:        after.ElevationGain,
		ProcessingTime:   time.Since(startTime),
	}

	return CleaningResult{Points: kept, Stats: stats}, nil
}
