package experiments

import (
	"kuhn/cfr"
	"kuhn/config"
	"kuhn/experiments/metrics"
	"kuhn/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RunSeedSweep trains one tree per seed, starting at cfg.Seed, and records
// where each run ends up. PlayerA's equilibrium is a one-parameter family,
// so different seeds settle on different Jack bluffing rates.
func RunSeedSweep(cfg *config.Config, seeds int) ([]metrics.SweepRecord, error) {
	if seeds <= 0 {
		return nil, errors.Errorf("seed count must be positive, got %d", seeds)
	}

	// Runs write one sweep file instead of per-run artifacts
	run := *cfg
	run.ReportDir = ""

	records := make([]metrics.SweepRecord, 0, seeds)
	log.Info().Msgf("starting seed sweep over %d seeds...", seeds)
	for i := 0; i < seeds; i++ {
		run.Seed = cfg.Seed + uint64(i)
		log.Info().Msgf("starting run %d of %d (seed %d)...", i+1, seeds, run.Seed)

		result, err := RunTraining(&run)
		if err != nil {
			return records, err
		}
		records = append(records, sweepRecord(result, run.Seed))
	}
	log.Info().Msg("completed seed sweep")

	if cfg.ReportDir == "" {
		return records, nil
	}
	writer, err := metrics.NewWriter(cfg.ReportDir)
	if err != nil {
		return records, err
	}
	if err := writer.WriteSweep(records); err != nil {
		return records, err
	}
	log.Info().Msgf("stored sweep records in %s", writer.Dir())
	return records, nil
}

func sweepRecord(result *Result, seed uint64) metrics.SweepRecord {
	root := result.Tree.Root
	profile := result.Tree.Store.AverageProfile()
	bluff := cfr.InfosetKey{Player: game.PlayerA, FacingBet: false, Card: game.Jack}
	value := cfr.InfosetKey{Player: game.PlayerA, FacingBet: false, Card: game.King}

	return metrics.SweepRecord{
		Seed:           seed,
		Iterations:     result.Training.Iterations,
		Duration:       result.Training.Duration,
		Exploitability: cfr.Exploitability(root, profile),
		ExpectedValue:  cfr.ExpectedValue(root, profile),
		JackBet:        profile.Probability(bluff, game.Bet),
		KingBet:        profile.Probability(value, game.Bet),
	}
}
