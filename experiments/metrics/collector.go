package metrics

import (
	"sync/atomic"
	"time"
)

type TrainingMetric struct {
	Iterations        int
	Seed              uint64
	Duration          time.Duration
	ObservationVisits int64
	DecisionVisits    int64
	TerminalVisits    int64
}

type ConvergenceRecord struct {
	Iteration      int
	Exploitability float64
	ExpectedValue  float64 // PlayerA's value of the average strategy profile
	Elapsed        time.Duration
}

type Collector interface {
	Start(iterations int, seed uint64)
	AddIteration()
	AddObservation()
	AddDecision()
	AddTerminal()
	Complete() TrainingMetric
}

type collector struct {
	iterations   int
	seed         uint64
	startTime    time.Time
	completed    atomic.Int64
	observations atomic.Int64
	decisions    atomic.Int64
	terminals    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int, seed uint64) {
	m.startTime = time.Now()
	m.iterations = iterations
	m.seed = seed
}

func (m *collector) AddIteration() {
	m.completed.Add(1)
}

func (m *collector) AddObservation() {
	m.observations.Add(1)
}

func (m *collector) AddDecision() {
	m.decisions.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() TrainingMetric {
	return TrainingMetric{
		Iterations:        int(m.completed.Load()),
		Seed:              m.seed,
		Duration:          time.Since(m.startTime),
		ObservationVisits: m.observations.Load(),
		DecisionVisits:    m.decisions.Load(),
		TerminalVisits:    m.terminals.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int, seed uint64) {}
func (m *dummyCollector) AddIteration()                     {}
func (m *dummyCollector) AddObservation()                   {}
func (m *dummyCollector) AddDecision()                      {}
func (m *dummyCollector) AddTerminal()                      {}
func (m *dummyCollector) Complete() TrainingMetric          { return TrainingMetric{} }
