package experiments

import (
	"kuhn/cfr"
	"kuhn/config"
	"kuhn/experiments/metrics"
	"kuhn/meta"
	"kuhn/report"
	"kuhn/tree"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Result struct {
	Tree        *tree.Tree
	Training    metrics.TrainingMetric
	Convergence []metrics.ConvergenceRecord
	ArtifactDir string // Empty when no artifacts were written
}

// Convergence records how far the average strategy is from equilibrium as
// training progresses.
type Convergence struct {
	root      cfr.Node
	store     *cfr.Store
	startTime time.Time
	records   []metrics.ConvergenceRecord
}

func NewConvergence(t *tree.Tree) *Convergence {
	return &Convergence{
		root:      t.Root,
		store:     t.Store,
		startTime: time.Now(),
	}
}

func (c *Convergence) Record(iteration int) {
	profile := c.store.AverageProfile()
	record := metrics.ConvergenceRecord{
		Iteration:      iteration,
		Exploitability: cfr.Exploitability(c.root, profile),
		ExpectedValue:  cfr.ExpectedValue(c.root, profile),
		Elapsed:        time.Since(c.startTime),
	}
	c.records = append(c.records, record)

	log.Info().Msgf("iteration %s: exploitability %.5f, value %.5f",
		humanize.Comma(int64(iteration)), record.Exploitability, record.ExpectedValue)
}

func (c *Convergence) Records() []metrics.ConvergenceRecord {
	return c.records
}

// RunTraining builds the Kuhn tree, trains it as configured and writes the
// run artifacts when cfg.ReportDir is set. Extra options are applied after
// the ones derived from cfg.
func RunTraining(cfg *config.Config, options ...cfr.Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	t := tree.NewKuhn()
	collector := metrics.NewCollector()
	convergence := NewConvergence(t)

	opts := []cfr.Option{
		cfr.WithIterations(cfg.Iterations),
		cfr.WithSeed(cfg.Seed),
		cfr.WithMetrics(collector),
		cfr.WithCallback(cfg.CheckpointEvery(meta.CHECKPOINTS), convergence.Record),
	}
	trainer := cfr.NewTrainer(t.Root, t.Store, append(opts, options...)...)

	start := time.Now()
	training := trainer.Train()
	end := time.Now()

	result := &Result{
		Tree:        t,
		Training:    training,
		Convergence: convergence.Records(),
	}
	if cfg.ReportDir == "" {
		return result, nil
	}

	writer, err := metrics.NewWriter(cfg.ReportDir)
	if err != nil {
		return result, err
	}
	setup := metrics.Setup{
		Iterations: cfg.Iterations,
		Seed:       cfg.Seed,
		Checkpoint: cfg.CheckpointEvery(meta.CHECKPOINTS),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		Training:   training,
	}
	if err := writer.WriteSetup(setup); err != nil {
		return result, err
	}
	if err := writer.WriteStrategies(report.Strategies(t.Store)); err != nil {
		return result, err
	}
	if err := writer.WriteConvergence(result.Convergence); err != nil {
		return result, err
	}

	result.ArtifactDir = writer.Dir()
	log.Info().Msgf("wrote run %s artifacts to %s", writer.RunID(), writer.Dir())
	return result, nil
}
