package experiments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"hog/dice"
	"hog/engine"
	"hog/experiments/metrics"
	"hog/game"
	"hog/sampler"
	"hog/strategy"

	"github.com/rs/zerolog/log"
)

var ErrUnknownExperiment = errors.New("unknown experiment")

// Experiment estimates a single value with a sampler.
type Experiment struct {
	Name  string
	Label string // Printed before the value
	Kind  string
	run   func(s *sampler.Sampler, baseline game.Strategy) (float64, error)
}

// Default lists the experiments run when none are named.
var Default = []string{"final_strategy"}

var registry = []Experiment{
	maxRolls("max_rolls_six_sided", "six-sided", dice.SixSided),
	maxRolls("max_rolls_four_sided", "four-sided", dice.FourSided),
	winRate("always_roll_8", "always_roll(8)"),
	winRate("bacon_strategy", "bacon_strategy"),
	winRate("swap_strategy", "swap_strategy"),
	winRate("final_strategy", "final_strategy"),
	sampleMatch("sample_match", "final_strategy"),
}

func maxRolls(name, dieName string, sides int) Experiment {
	return Experiment{
		Name:  name,
		Label: fmt.Sprintf("Max scoring num rolls for %s dice", dieName),
		Kind:  "num rolls",
		run: func(s *sampler.Sampler, _ game.Strategy) (float64, error) {
			n, err := sampler.MaxScoringNumRolls(s, sides)
			return float64(n), err
		},
	}
}

// winRate measures the registered strategy of the same name.
func winRate(name, label string) Experiment {
	return Experiment{
		Name:  name,
		Label: label + " win rate",
		Kind:  "win rate",
		run: func(s *sampler.Sampler, baseline game.Strategy) (float64, error) {
			st, err := strategy.Lookup(name)
			if err != nil {
				return 0, err
			}
			return sampler.WinRate(s, st, baseline)
		},
	}
}

// sampleMatch plays one traced game against the baseline and reports its length.
func sampleMatch(name, strategyName string) Experiment {
	return Experiment{
		Name:  name,
		Label: "sample match turns",
		Kind:  "turns",
		run: func(s *sampler.Sampler, baseline game.Strategy) (float64, error) {
			st, err := strategy.Lookup(strategyName)
			if err != nil {
				return 0, err
			}
			e := engine.LocalEngine([]game.Strategy{st, baseline}, game.NewStandardRules(),
				engine.WithLogger(log.Logger))
			result, err := e.Run(dice.NewRandomSet(s.Seed()))
			if err != nil {
				return 0, err
			}
			log.Info().Int("score0", result.Score0).Int("score1", result.Score1).Msg("sample match finished")
			return float64(result.Turns), nil
		},
	}
}

// Names lists every registered experiment in run order.
func Names() []string {
	names := make([]string, len(registry))
	for i, exp := range registry {
		names[i] = exp.Name
	}
	return names
}

// Lookup resolves experiment names, keeping the order given.
func Lookup(names []string) ([]Experiment, error) {
	exps := make([]Experiment, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		exp, ok := find(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownExperiment)
		}
		exps = append(exps, exp)
	}
	return exps, nil
}

func find(name string) (Experiment, bool) {
	for _, exp := range registry {
		if exp.Name == name {
			return exp, true
		}
	}
	return Experiment{}, false
}

// Run executes exps in order against baseline, printing one labelled line
// per result to out. It stops at the first failure or when ctx is done.
func Run(ctx context.Context, s *sampler.Sampler, baseline game.Strategy, exps []Experiment, out io.Writer) ([]metrics.ResultRecord, error) {
	records := []metrics.ResultRecord{}

	for i, exp := range exps {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		log.Info().Msgf("starting experiment %d of %d: %s...", i+1, len(exps), exp.Name)

		var value float64
		metric, err := s.Measure(func() error {
			var err error
			value, err = exp.run(s, baseline)
			return err
		})
		if err != nil {
			return records, fmt.Errorf("experiment %s: %w", exp.Name, err)
		}

		fmt.Fprintf(out, "%s: %v\n", exp.Label, value)
		records = append(records, metrics.ResultRecord{
			Experiment:   exp.Name,
			Kind:         exp.Kind,
			Value:        value,
			SampleMetric: metric,
		})

		log.Info().
			Int("samples", metric.Samples).
			Dur("duration", metric.Duration).
			Msgf("completed experiment %s", exp.Name)
	}

	return records, nil
}

// Store writes records to a timestamped directory under root.
func Store(root string, records []metrics.ResultRecord) (string, error) {
	writer, err := metrics.NewWriter(root)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteResults(records); err != nil {
		return "", fmt.Errorf("failed to store results: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment results")
	return writer.Dir(), nil
}
