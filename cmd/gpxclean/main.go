package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/lamprechts/GPXKit/internal/clean"
	"github.com/lamprechts/GPXKit/internal/config"
	"github.com/lamprechts/GPXKit/internal/gpx"
	"github.com/lamprechts/GPXKit/internal/logger"
	"github.com/lamprechts/GPXKit/internal/track"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile       string  `short:"c" long:"config" env:"GPXKIT_CONFIG" description:"Path to the analysis parameter file"`
	Output           string  `short:"o" long:"output" description:"Output file for a single input (default: <input>_cleaned.gpx)"`
	MinPointDistance float64 `short:"m" long:"min-distance" description:"Minimum distance between kept points in meters (overrides config)"`
	SmoothingSamples int     `short:"w" long:"smoothing-samples" description:"Target averaging windows for elevation smoothing (overrides config)"`
	Workers          int     `short:"p" long:"workers" env:"GPXKIT_WORKERS" description:"Parallel workers in batch mode (default: CPU count)"`
	DryRun           bool    `short:"n" long:"dry-run" description:"Compute statistics without writing output files"`
	StatsJSON        bool    `long:"stats-json" description:"Print cleaning statistics as JSON (single input only)"`

	Args struct {
		Files []string `positional-arg-name:"FILE" required:"1" description:"GPX files to clean"`
	} `positional-args:"yes"`
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

	cleanCfg := cleaningConfig(opts)

	files := opts.Args.Files
	if len(files) == 1 {
		stats, err := cleanFile(files[0], outputPath(files[0], opts.Output), cleanCfg, opts.DryRun)
		if err != nil {
			log.Fatal().Err(err).Str("file", files[0]).Msg("Cleaning failed")
		}
		report(files[0], stats, opts.StatsJSON, opts.DryRun)
		return
	}

	if opts.Output != "" {
		log.Fatal().Msg("--output is only valid with a single input file")
	}
	runBatch(files, cleanCfg, opts)
}

// runBatch cleans the files concurrently with a progress bar; failures are
// logged per file and reported at the end.
func runBatch(files []string, cfg clean.Config, opts Options) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log.Info().Int("files", len(files)).Int("workers", workers).Msg("Starting batch clean")

	bar := progressbar.Default(int64(len(files)), "Cleaning")
	jobs := make(chan string)
	var failed atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				if _, err := cleanFile(file, outputPath(file, ""), cfg, opts.DryRun); err != nil {
					log.Error().Err(err).Str("file", file).Msg("Cleaning failed")
					failed.Add(1)
				}
				_ = bar.Add(1)
			}
		}()
	}

	for _, file := range files {
		jobs <- file
	}
	close(jobs)
	wg.Wait()

	if n := failed.Load(); n > 0 {
		log.Fatal().Int64("failed", n).Int("files", len(files)).Msg("Batch finished with failures")
	}
	log.Info().Int("files", len(files)).Msg("Batch finished")
}

// cleanFile runs the pipeline over one track and writes the result unless
// dryRun is set.
func cleanFile(path, outPath string, cfg clean.Config, dryRun bool) (clean.Stats, error) {
	t, err := gpx.ParseFile(path, track.DefaultGradeSegmentLength)
	if err != nil {
		return clean.Stats{}, err
	}

	result, err := clean.Clean(t.Points, cfg)
	if err != nil {
		return clean.Stats{}, err
	}

	if dryRun {
		return result.Stats, nil
	}

	cleaned := *t
	cleaned.Points = result.Points
	if err := gpx.WriteFile(outPath, &cleaned); err != nil {
		return result.Stats, err
	}

	return result.Stats, nil
}

func cleaningConfig(opts Options) clean.Config {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", opts.ConfigFile).Msg("Failed to load configuration")
		}
		cfg = cfg.Merge(*loaded)
	}
	cfg = cfg.Merge(config.Config{
		MinPointDistance: opts.MinPointDistance,
		SmoothingSamples: opts.SmoothingSamples,
	})

	cleanCfg := clean.DefaultConfig()
	cleanCfg.MinPointDistance = cfg.MinPointDistance
	cleanCfg.SmoothingSamples = cfg.SmoothingSamples
	return cleanCfg
}

// outputPath derives the output file name next to the input.
func outputPath(input, override string) string {
	if override != "" {
		return override
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_cleaned" + ext
}

func report(file string, stats clean.Stats, asJSON, dryRun bool) {
	if asJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to marshal statistics")
		}
		fmt.Println(string(data))
		return
	}

	fmt.Printf("%s: %d -> %d points (%.1f%% removed), %.2f -> %.2f km\n",
		file, stats.OriginalPoints, stats.FinalPoints, stats.PointsPercent,
		stats.OriginalDistance, stats.FinalDistance)
	if dryRun {
		fmt.Println("Dry run: no files written.")
	}
}
