package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/lamprechts/GPXKit/internal/gpx"
	"github.com/lamprechts/GPXKit/internal/logger"
	"github.com/lamprechts/GPXKit/internal/merge"
	"github.com/lamprechts/GPXKit/internal/track"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	GapThreshold time.Duration `short:"g" long:"gap" default:"2m" description:"Minimum recording pause worth filling"`
	MaxDeviation float64       `short:"d" long:"max-deviation" default:"60" description:"Maximum deviation of inserted points in meters (negative disables)"`
	Output       string        `short:"o" long:"output" description:"Path for the merged GPX (default: <primary>_merged.gpx)"`

	Args struct {
		Primary   string `positional-arg-name:"PRIMARY" description:"Track with recording gaps"`
		Secondary string `positional-arg-name:"SECONDARY" description:"Backup recording of the same activity"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	primary, err := gpx.ParseFile(opts.Args.Primary, track.DefaultGradeSegmentLength)
	if err != nil {
		log.Fatal().Err(err).Str("file", opts.Args.Primary).Msg("Failed to parse primary track")
	}
	secondary, err := gpx.ParseFile(opts.Args.Secondary, track.DefaultGradeSegmentLength)
	if err != nil {
		log.Fatal().Err(err).Str("file", opts.Args.Secondary).Msg("Failed to parse secondary track")
	}

	merged, stats, err := merge.MergeTracks(primary, secondary, merge.Config{
		GapThreshold:       opts.GapThreshold,
		MaxDeviationMeters: opts.MaxDeviation,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Merge failed")
	}

	log.Info().
		Int("gaps_detected", stats.GapsDetected).
		Int("gaps_filled", stats.GapsFilled).
		Int("inserted_points", stats.InsertedPoints).
		Msg("Merge finished")

	out := opts.Output
	if out == "" {
		ext := filepath.Ext(opts.Args.Primary)
		out = strings.TrimSuffix(opts.Args.Primary, ext) + "_merged" + ext
	}
	if err := gpx.WriteFile(out, merged); err != nil {
		log.Fatal().Err(err).Str("file", out).Msg("Failed to write merged track")
	}

	before := primary.Graph()
	after := merged.Graph()
	fmt.Printf("%s + %s -> %s\n", opts.Args.Primary, opts.Args.Secondary, out)
	fmt.Printf("Points:   %d -> %d (+%d inserted)\n", len(primary.Points), len(merged.Points), stats.InsertedPoints)
	fmt.Printf("Distance: %.2f km -> %.2f km\n", before.TotalDistance/1000, after.TotalDistance/1000)
}
