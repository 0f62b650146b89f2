package cfr_test

import (
	"kuhn/cfr"
	"kuhn/experiments/metrics"
	"kuhn/game"
	"kuhn/tree"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSampler struct{}

func (fixedSampler) Intn(int) int {
	return 0
}

func key(player game.Player, facing bool, card game.Card) cfr.InfosetKey {
	return cfr.InfosetKey{Player: player, FacingBet: facing, Card: card}
}

// snapshot is the full learned state of one infoset.
type snapshot struct {
	Regret     cfr.Vector
	Strategy   cfr.Vector
	Cumulative cfr.Vector
	Average    cfr.Vector
}

func TestTrainerDeterminism(t *testing.T) {
	train := func(seed uint64) map[string]snapshot {
		kuhn := tree.NewKuhn()
		trainer := cfr.NewTrainer(kuhn.Root, kuhn.Store, cfr.WithIterations(5000), cfr.WithSeed(seed))
		trainer.Train()

		state := make(map[string]snapshot)
		for _, is := range kuhn.Store.All() {
			state[is.Name()] = snapshot{
				Regret:     is.Regret(),
				Strategy:   is.Strategy(),
				Cumulative: is.CumulativeStrategy(),
				Average:    is.AverageStrategy(),
			}
		}
		return state
	}

	first, second := train(7), train(7)
	require.Len(t, first, 12)
	for name, state := range first {
		require.Equal(t, state.Regret, second[name].Regret, "%s regret should be bit-identical", name)
		require.Equal(t, state.Strategy, second[name].Strategy, "%s strategy should be bit-identical", name)
		require.Equal(t, state, second[name])
	}
	require.NotEqual(t, first, train(8))
}

func TestTrainerInvariants(t *testing.T) {
	kuhn := tree.NewKuhn()
	trainer := cfr.NewTrainer(kuhn.Root, kuhn.Store, cfr.WithSeed(3))

	previous := make(map[cfr.InfosetKey]cfr.Vector)
	for i := 0; i < 2000; i++ {
		trainer.Iterate()

		for _, is := range kuhn.Store.All() {
			strategy := is.Strategy()
			average := is.AverageStrategy()
			cumulative := is.CumulativeStrategy()
			assert.InDelta(t, 1.0, strategy[0]+strategy[1], 1e-9, "%s strategy should sum to one", is.Name())
			assert.InDelta(t, 1.0, average[0]+average[1], 1e-9, "%s average should sum to one", is.Name())
			for a := range strategy {
				assert.GreaterOrEqual(t, strategy[a], 0.0)
				assert.GreaterOrEqual(t, cumulative[a], previous[is.Key()][a], "%s cumulative strategy should never decrease", is.Name())
			}
			previous[is.Key()] = cumulative
		}
	}
	require.Equal(t, 2000, trainer.Completed())
}

func TestTrainerUnvisitedInfosets(t *testing.T) {
	kuhn := tree.NewKuhn()
	trainer := cfr.NewTrainer(kuhn.Root, kuhn.Store, cfr.WithIterations(100), cfr.WithSampler(fixedSampler{}))
	trainer.Train()

	// The first deal is Jack against Queen
	visited := map[cfr.InfosetKey]bool{
		key(game.PlayerA, false, game.Jack):  true,
		key(game.PlayerA, true, game.Jack):   true,
		key(game.PlayerB, false, game.Queen): true,
		key(game.PlayerB, true, game.Queen):  true,
	}
	for _, is := range kuhn.Store.All() {
		if visited[is.Key()] {
			continue
		}
		require.Equal(t, cfr.Vector{0.5, 0.5}, is.Strategy(), "%s was never reached", is.Name())
		require.Equal(t, cfr.Vector{0.5, 0.5}, is.AverageStrategy(), "%s was never reached", is.Name())
		require.Equal(t, cfr.Vector{}, is.Regret(), "%s was never reached", is.Name())
	}

	// Facing a bet with Jack against Queen, folding is always right
	require.InDelta(t, 1.0, kuhn.Store.Get(key(game.PlayerA, true, game.Jack)).Policy()[game.Fold], 0.05)
}

func TestTrainerCallbacksAndMetrics(t *testing.T) {
	kuhn := tree.NewKuhn()
	collector := metrics.NewCollector()
	var calls []int
	trainer := cfr.NewTrainer(kuhn.Root, kuhn.Store,
		cfr.WithIterations(100),
		cfr.WithSeed(1),
		cfr.WithMetrics(collector),
		cfr.WithCallback(25, func(iteration int) { calls = append(calls, iteration) }),
		cfr.WithCallback(0, func(int) { t.Fatal("a callback without a stride should be ignored") }),
	)

	metric := trainer.Train()

	require.Equal(t, []int{25, 50, 75, 100}, calls)
	require.Equal(t, 100, metric.Iterations)
	require.Equal(t, uint64(1), metric.Seed)
	require.Equal(t, int64(100), metric.ObservationVisits)
	require.Equal(t, int64(400), metric.DecisionVisits, "Every deal has four decisions")
	require.Equal(t, int64(500), metric.TerminalVisits, "Every deal has five terminals")
}

func TestNewTrainer(t *testing.T) {
	kuhn := tree.NewKuhn()

	require.Panics(t, func() { cfr.NewTrainer(kuhn.Root, nil) })
	require.Panics(t, func() { cfr.NewTrainer(cfr.NewObservation("empty"), kuhn.Store) })
	require.Panics(t, func() { cfr.NewTrainer(kuhn.Root, kuhn.Store, cfr.WithIterations(0)) }, "Zero iterations must fail fast")
	require.Panics(t, func() { cfr.NewTrainer(kuhn.Root, kuhn.Store, cfr.WithIterations(-1)) })

	trainer := cfr.NewTrainer(kuhn.Root, kuhn.Store)
	require.Same(t, kuhn.Store, trainer.Store())
	require.Equal(t, cfr.Node(kuhn.Root), trainer.Root())
	require.Zero(t, trainer.Completed())
}

func TestTrainerMetricsWithoutCollector(t *testing.T) {
	kuhn := tree.NewKuhn()
	trainer := cfr.NewTrainer(kuhn.Root, kuhn.Store, cfr.WithIterations(300), cfr.WithSeed(5))

	metric := trainer.Train()

	require.Equal(t, 300, metric.Iterations, "The trainer should report its own iteration count")
	require.Equal(t, uint64(5), metric.Seed)
	require.NotZero(t, metric.Duration)
	require.Zero(t, metric.DecisionVisits, "Visit counters need WithMetrics")
}

func TestTrainerConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running training")
	}

	kuhn := tree.NewKuhn()
	trainer := cfr.NewTrainer(kuhn.Root, kuhn.Store, cfr.WithIterations(200000), cfr.WithSeed(1))
	trainer.Train()

	profile := kuhn.Store.AverageProfile()
	require.Less(t, cfr.Exploitability(kuhn.Root, profile), 0.01)
	require.InDelta(t, -1.0/18, cfr.ExpectedValue(kuhn.Root, profile), 0.01)

	prob := func(player game.Player, facing bool, card game.Card, action game.Action) float64 {
		return profile.Probability(key(player, facing, card), action)
	}

	// PlayerB's equilibrium strategy is unique
	assert.InDelta(t, 1.0/3, prob(game.PlayerB, false, game.Jack, game.Bet), 0.03)
	assert.InDelta(t, 0.0, prob(game.PlayerB, false, game.Queen, game.Bet), 0.02)
	assert.InDelta(t, 1.0, prob(game.PlayerB, false, game.King, game.Bet), 0.02)
	assert.InDelta(t, 0.0, prob(game.PlayerB, true, game.Jack, game.Call), 0.02)
	assert.InDelta(t, 1.0/3, prob(game.PlayerB, true, game.Queen, game.Call), 0.03)
	assert.InDelta(t, 1.0, prob(game.PlayerB, true, game.King, game.Call), 0.02)

	// PlayerA's is a one-parameter family in its Jack bluffing rate
	alpha := prob(game.PlayerA, false, game.Jack, game.Bet)
	assert.LessOrEqual(t, alpha, 1.0/3+0.03)
	assert.InDelta(t, 0.0, prob(game.PlayerA, false, game.Queen, game.Bet), 0.02)
	assert.InDelta(t, 3*alpha, prob(game.PlayerA, false, game.King, game.Bet), 0.06)
	assert.InDelta(t, 0.0, prob(game.PlayerA, true, game.Jack, game.Call), 0.02)
	assert.InDelta(t, alpha+1.0/3, prob(game.PlayerA, true, game.Queen, game.Call), 0.05)
	assert.InDelta(t, 1.0, prob(game.PlayerA, true, game.King, game.Call), 0.02)
}
