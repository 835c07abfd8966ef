package metrics

import (
	"sync/atomic"
	"time"
)

type SampleMetric struct {
	Goroutines int
	Samples    int // Trials completed
	Seed       uint64
	Duration   time.Duration
}

type Collector interface {
	Start(goroutines int, seed uint64)
	AddSample()
	Complete() SampleMetric
}

type collector struct {
	goroutines int
	seed       uint64
	startTime  time.Time
	samples    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int, seed uint64) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.seed = seed
	m.samples.Store(0)
}

func (m *collector) AddSample() {
	m.samples.Add(1)
}

func (m *collector) Complete() SampleMetric {
	return SampleMetric{
		Goroutines: m.goroutines,
		Samples:    int(m.samples.Load()),
		Seed:       m.seed,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, seed uint64) {}
func (m *dummyCollector) AddSample()                         {}
func (m *dummyCollector) Complete() SampleMetric             { return SampleMetric{} }
