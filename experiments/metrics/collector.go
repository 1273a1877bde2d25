package metrics

import (
	"sync/atomic"
	"time"
)

// EvaluationMetric describes one Monte-Carlo estimate.
type EvaluationMetric struct {
	Name       string
	Goroutines int
	Samples    int
	Trials     int // Trials completed, fewer than Samples if the estimate failed
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(name string, goroutines, samples int)
	AddTrial()
	Complete() EvaluationMetric
}

type collector struct {
	name       string
	goroutines int
	samples    int
	startTime  time.Time
	trials     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(name string, goroutines, samples int) {
	m.startTime = time.Now()
	m.name = name
	m.goroutines = goroutines
	m.samples = samples
}

// AddTrial is safe to call from concurrent trials.
func (m *collector) AddTrial() {
	m.trials.Add(1)
}

func (m *collector) Complete() EvaluationMetric {
	end := time.Now()
	return EvaluationMetric{
		Name:       m.name,
		Goroutines: m.goroutines,
		Samples:    m.samples,
		Trials:     int(m.trials.Load()),
		StartTime:  m.startTime,
		EndTime:    end,
		Duration:   end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(name string, goroutines, samples int) {}
func (m *dummyCollector) AddTrial()                                  {}
func (m *dummyCollector) Complete() EvaluationMetric                 { return EvaluationMetric{} }
