package sampler

import (
	"context"
	"fmt"
	"sync"

	"hog/dice"
	"hog/experiments/metrics"
	"hog/meta"
	"hog/utils"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(s *Sampler)

// Provider builds the dice for one sample from that sample's seed.
type Provider func(seed uint64) dice.Set

// Trial computes one numeric sample from fresh dice and fixed arguments.
type Trial[A any] func(set dice.Set, args A) (float64, error)

type Sampler struct {
	samples    int
	goroutines int
	seed       uint64
	provider   Provider
	metrics    metrics.Collector

	mu  sync.Mutex
	rng *rand.Rand // Draws per-sample seeds
}

func WithSamples(samples int) Option {
	return func(s *Sampler) {
		if samples > 0 {
			s.samples = samples
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(s *Sampler) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.seed = seed
	}
}

// WithDice replaces the random dice given to each sample. A provider that
// hands out shared stateful dice must be used with a single goroutine;
// samples then draw from it in order.
func WithDice(provider Provider) Option {
	return func(s *Sampler) {
		if provider != nil {
			s.provider = provider
		}
	}
}

func WithMetrics() Option {
	return func(s *Sampler) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSampler(options ...Option) *Sampler {
	s := &Sampler{ // Default values
		samples:    meta.SAMPLES,
		goroutines: 1,
		provider:   dice.NewRandomSet,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	return s
}

func (s *Sampler) Samples() int    { return s.samples }
func (s *Sampler) Goroutines() int { return s.goroutines }
func (s *Sampler) Seed() uint64    { return s.seed }

// Measure runs fn and reports the samples it drew.
func (s *Sampler) Measure(fn func() error) (metrics.SampleMetric, error) {
	s.metrics.Start(s.goroutines, s.seed)
	err := fn()
	return s.metrics.Complete(), err
}

// seeds draws one seed per sample. Successive calls continue the same
// stream, so a run is reproducible from the sampler seed alone.
func (s *Sampler) seeds() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeds := make([]uint64, s.samples)
	for i := range seeds {
		seeds[i] = s.rng.Uint64()
	}
	return seeds
}

// Averaged returns a function that runs trial once per sample, each time
// with fresh dice, and returns the mean result. The first failing sample
// aborts the average.
func Averaged[A any](s *Sampler, trial Trial[A]) func(A) (float64, error) {
	return func(args A) (float64, error) {
		seeds := s.seeds()
		results := make([]float64, len(seeds))

		g, ctx := errgroup.WithContext(context.Background())
		g.SetLimit(s.goroutines)
		for i, seed := range seeds {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				v, err := trial(s.provider(seed), args)
				if err != nil {
					return fmt.Errorf("sample %d: %w", i+1, err)
				}
				results[i] = v
				s.metrics.AddSample()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}

		// Summed in sample order whatever the goroutine count
		return utils.Mean(results), nil
	}
}
