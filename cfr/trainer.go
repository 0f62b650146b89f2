package cfr

import (
	"kuhn/experiments/metrics"
	"kuhn/meta"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(t *Trainer)

type callback struct {
	every int
	fn    func(iteration int)
}

// Trainer runs CFR iterations over a fixed tree. Iterations run one after
// another; infosets are mutated in place.
type Trainer struct {
	root       Node
	store      *Store
	iterations int
	seed       uint64
	sampler    Sampler
	metrics    metrics.Collector
	callbacks  []callback
	completed  int
}

// WithIterations sets the iteration count of Train. NewTrainer panics on a
// non-positive count.
func WithIterations(iterations int) Option {
	return func(t *Trainer) {
		t.iterations = iterations
	}
}

// WithSeed seeds the deal sampler. Ignored when WithSampler is also given.
func WithSeed(seed uint64) Option {
	return func(t *Trainer) {
		t.seed = seed
	}
}

// WithSampler injects the source used to pick deals.
func WithSampler(sampler Sampler) Option {
	return func(t *Trainer) {
		if sampler != nil {
			t.sampler = sampler
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(t *Trainer) {
		if collector != nil {
			t.metrics = collector
		}
	}
}

// WithCallback calls fn after every `every` completed iterations.
func WithCallback(every int, fn func(iteration int)) Option {
	return func(t *Trainer) {
		if every > 0 && fn != nil {
			t.callbacks = append(t.callbacks, callback{every: every, fn: fn})
		}
	}
}

func NewTrainer(root Node, store *Store, options ...Option) *Trainer {
	Validate(root)
	if store == nil {
		panic("trainer needs an infoset store")
	}

	t := &Trainer{ // Default values
		root:       root,
		store:      store,
		iterations: meta.ITERATIONS,
		seed:       meta.SEED,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	if t.sampler == nil {
		t.sampler = rand.New(rand.NewSource(t.seed))
	}
	if t.iterations <= 0 {
		panic("Must specify a positive number of iterations")
	}
	return t
}

func (t *Trainer) Root() Node {
	return t.root
}

func (t *Trainer) Store() *Store {
	return t.store
}

// Completed is the number of iterations run so far.
func (t *Trainer) Completed() int {
	return t.completed
}

// Iterate runs one full CFR iteration from the root.
func (t *Trainer) Iterate() {
	w := walker{sampler: t.sampler, metrics: t.metrics}
	t.root.observeUtility(&w, StartReach())
	t.completed++
	t.metrics.AddIteration()

	for _, cb := range t.callbacks {
		if t.completed%cb.every == 0 {
			cb.fn(t.completed)
		}
	}
}

// Train runs the configured number of iterations.
func (t *Trainer) Train() metrics.TrainingMetric {
	start := time.Now()
	t.metrics.Start(t.iterations, t.seed)
	log.Info().Msgf("training for %s iterations (seed %d)", humanize.Comma(int64(t.iterations)), t.seed)

	for i := 0; i < t.iterations; i++ {
		t.Iterate()
		if t.completed%meta.LOG_EVERY == 0 {
			log.Debug().Msgf("completed %s of %s iterations", humanize.Comma(int64(t.completed)), humanize.Comma(int64(t.iterations)))
		}
	}

	// The counters stay zero without WithMetrics
	metric := t.metrics.Complete()
	metric.Iterations = t.completed
	metric.Seed = t.seed
	metric.Duration = time.Since(start)
	log.Info().Msgf("completed %s iterations in %s", humanize.Comma(int64(t.completed)), metric.Duration)
	return metric
}
