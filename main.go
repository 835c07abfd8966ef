package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"hog/config"
	"hog/experiments"
	"hog/sampler"
	"hog/strategy"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("experiments failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("hog", flag.ContinueOnError)
	runExperiments := false
	flags.BoolVar(&runExperiments, "run_experiments", false, "Runs strategy experiments")
	flags.BoolVar(&runExperiments, "r", false, "Shorthand for -run_experiments")
	list := flags.Bool("list", false, "Lists the available experiments")
	// Unset flags fall back to the HOG_ environment
	names := flags.String("experiments", "", "Comma separated experiments to run (HOG_EXPERIMENTS)")
	baselineName := flags.String("baseline", "", "Strategy win rates are measured against (HOG_BASELINE)")
	samples := flags.Int("samples", 0, "Number of trials per estimate (HOG_SAMPLES)")
	seed := flags.Uint64("seed", 0, "Random seed, 0 for a time based seed (HOG_SEED)")
	goroutines := flags.Int("goroutines", 0, "Number of goroutines sampling in parallel (HOG_GOROUTINES)")
	outputDir := flags.String("output", "", "Directory for CSV results, empty to skip (HOG_OUTPUT_DIR)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, name := range experiments.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}
	if !runExperiments {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["experiments"] {
		*names = strings.Join(cfg.Experiments, ",")
	}
	if !set["baseline"] {
		*baselineName = cfg.Baseline
	}
	if !set["samples"] {
		*samples = cfg.Samples
	}
	if !set["seed"] {
		*seed = cfg.Seed
	}
	if !set["goroutines"] {
		*goroutines = cfg.Goroutines
	}
	if !set["output"] {
		*outputDir = cfg.OutputDir
	}

	if *samples < 1 {
		return fmt.Errorf("-samples must be positive, got %d", *samples)
	}
	if *goroutines < 1 {
		return fmt.Errorf("-goroutines must be positive, got %d", *goroutines)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	exps, err := experiments.Lookup(strings.Split(*names, ","))
	if err != nil {
		return err
	}
	baseline, err := strategy.Lookup(*baselineName)
	if err != nil {
		return fmt.Errorf("baseline: %w", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	s := sampler.NewSampler(
		sampler.WithSamples(*samples),
		sampler.WithSeed(*seed),
		sampler.WithGoroutines(*goroutines),
		sampler.WithMetrics(),
	)
	log.Info().
		Uint64("seed", *seed).
		Int("samples", s.Samples()).
		Int("goroutines", s.Goroutines()).
		Str("baseline", *baselineName).
		Msg("running experiments")

	records, err := experiments.Run(ctx, s, baseline, exps, stdout)
	if err != nil {
		return err
	}

	if *outputDir != "" {
		if _, err := experiments.Store(*outputDir, records); err != nil {
			return err
		}
	}
	return nil
}
