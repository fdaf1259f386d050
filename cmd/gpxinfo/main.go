package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/lamprechts/GPXKit/internal/config"
	"github.com/lamprechts/GPXKit/internal/export"
	"github.com/lamprechts/GPXKit/internal/gpx"
	"github.com/lamprechts/GPXKit/internal/logger"
	"github.com/lamprechts/GPXKit/internal/track"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile    string  `short:"c" long:"config" env:"GPXKIT_CONFIG" description:"Path to the analysis parameter file"`
	SegmentLength float64 `short:"s" long:"segment-length" description:"Grade segment length in meters (overrides config)"`
	MaxGradeDelta float64 `short:"d" long:"max-grade-delta" description:"Grade change bound between consecutive segments (overrides config)"`
	Grades        bool    `short:"g" long:"grades" description:"Print the flattened grade segment table"`
	JSON          bool    `short:"j" long:"json" description:"Print the summary as JSON"`
	GeoJSONPath   string  `long:"geojson" description:"Write the track as GeoJSON to the given path"`
	CSVPath       string  `long:"csv" description:"Write the elevation profile as CSV to the given path"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"GPX file to analyze"`
	} `positional-args:"yes" required:"yes"`
}

type summary struct {
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Date          string   `json:"date,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Points        int      `json:"points"`
	DistanceKm    float64  `json:"distance_km"`
	ElevationGain float64  `json:"elevation_gain_m"`
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

	cfg := loadConfig(opts)

	t, err := gpx.ParseFile(opts.Args.File, cfg.SegmentLength)
	if err != nil {
		log.Fatal().Err(err).Str("file", opts.Args.File).Msg("Failed to parse track")
	}

	graph := t.Graph()
	log.Debug().
		Int("points", len(t.Points)).
		Float64("segment_length", cfg.SegmentLength).
		Msg("Track assembled")

	s := summary{
		Title:         t.Title,
		Description:   t.Description,
		Keywords:      t.Keywords,
		Points:        len(t.Points),
		DistanceKm:    graph.TotalDistance / 1000,
		ElevationGain: graph.ElevationGain,
	}
	if !t.Date.IsZero() {
		s.Date = t.Date.UTC().Format(time.RFC3339)
	}

	if opts.JSON {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to marshal summary")
		}
		fmt.Println(string(data))
	} else {
		printSummary(s)
	}

	if opts.Grades {
		segments := track.FlattenGrades(graph.GradeSegments(cfg.SegmentLength), cfg.MaxGradeDelta)
		printGrades(segments)
	}

	if opts.GeoJSONPath != "" {
		writeGeoJSON(opts.GeoJSONPath, t, graph)
	}
	if opts.CSVPath != "" {
		writeProfileCSV(opts.CSVPath, graph)
	}
}

func loadConfig(opts Options) config.Config {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", opts.ConfigFile).Msg("Failed to load configuration")
		}
		cfg = cfg.Merge(*loaded)
	}
	return cfg.Merge(config.Config{
		SegmentLength: opts.SegmentLength,
		MaxGradeDelta: opts.MaxGradeDelta,
	})
}

func printSummary(s summary) {
	fmt.Printf("Track:     %s\n", s.Title)
	if s.Description != "" {
		fmt.Printf("About:     %s\n", s.Description)
	}
	if s.Date != "" {
		fmt.Printf("Date:      %s\n", s.Date)
	}
	if len(s.Keywords) > 0 {
		fmt.Printf("Keywords:  %s\n", strings.Join(s.Keywords, ", "))
	}
	fmt.Printf("Points:    %d\n", s.Points)
	fmt.Printf("Distance:  %.2f km\n", s.DistanceKm)
	fmt.Printf("Elevation: %.0f m gained\n", s.ElevationGain)
}

func printGrades(segments []track.GradeSegment) {
	if len(segments) == 0 {
		fmt.Println("\nNo grade segments: the track is empty.")
		return
	}

	fmt.Printf("\n%-10s %-10s %-8s %s\n", "From (m)", "To (m)", "Grade", "Elevation (m)")
	for _, s := range segments {
		fmt.Printf("%-10.0f %-10.0f %+6.1f%%  %.0f -> %.0f\n",
			s.Start, s.End, s.Grade()*100, s.ElevationStart, s.ElevationEnd)
	}
}

func writeGeoJSON(path string, t *track.Track, graph track.Graph) {
	data, err := export.GeoJSON(t, graph)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render GeoJSON")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to write GeoJSON")
	}
	log.Info().Str("file", path).Msg("GeoJSON written")
}

func writeProfileCSV(path string, graph track.Graph) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to create CSV file")
	}
	if err := export.ProfileCSV(f, graph); err != nil {
		f.Close()
		log.Fatal().Err(err).Msg("Failed to write elevation profile")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Msg("Failed to close CSV file")
	}
	log.Info().Str("file", path).Msg("Elevation profile written")
}
