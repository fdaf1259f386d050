// Package config loads the analysis parameters shared by the command-line
// tools from a YAML file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lamprechts/GPXKit/internal/clean"
	"github.com/lamprechts/GPXKit/internal/track"
)

// Config carries the tunable analysis parameters. Zero fields mean "use
// the default"; Merge applies that rule when stacking file and flag
// values on top of the built-ins.
type Config struct {
	// SegmentLength is the grade sampling interval in meters.
	SegmentLength float64 `yaml:"segment_length,omitempty"`

	// MaxGradeDelta bounds the grade change between consecutive grade
	// segments during flattening.
	MaxGradeDelta float64 `yaml:"max_grade_delta,omitempty"`

	// MinPointDistance is the decimation threshold in meters.
	MinPointDistance float64 `yaml:"min_point_distance,omitempty"`

	// SmoothingSamples is the target window count for elevation smoothing.
	SmoothingSamples int `yaml:"smoothing_samples,omitempty"`
}

// Default returns the built-in analysis parameters.
func Default() Config {
	cleaning := clean.DefaultConfig()
	return Config{
		SegmentLength:    track.DefaultGradeSegmentLength,
		MaxGradeDelta:    0.01,
		MinPointDistance: cleaning.MinPointDistance,
		SmoothingSamples: cleaning.SmoothingSamples,
	}
}

// Load reads and parses the YAML parameter file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Merge returns c with every non-zero field of o applied on top.
func (c Config) Merge(o Config) Config {
	if o.SegmentLength > 0 {
		c.SegmentLength = o.SegmentLength
	}
	if o.MaxGradeDelta > 0 {
		c.MaxGradeDelta = o.MaxGradeDelta
	}
	if o.MinPointDistance > 0 {
		c.MinPointDistance = o.MinPointDistance
	}
	if o.SmoothingSamples > 0 {
		c.SmoothingSamples = o.SmoothingSamples
	}
	return c
}
