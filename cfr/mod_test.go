package cfr

import (
	"kuhn/experiments/metrics"
	"kuhn/game"
)

// fixedSampler always picks the same outcome.
type fixedSampler struct {
	index int
}

func (s fixedSampler) Intn(n int) int {
	return s.index % n
}

func newTestWalker(sampler Sampler) *walker {
	return &walker{sampler: sampler, metrics: metrics.NewDummyCollector()}
}

// newTestDecision builds an opening decision for owner in a Jack-Queen deal
// whose actions lead straight to terminals with the given PlayerA payoffs.
func newTestDecision(owner game.Player, checkPayoff, betPayoff float64) *Decision {
	deal := game.Deal{game.Jack, game.Queen}
	store := NewStore()
	key := InfosetKey{Player: owner, FacingBet: false, Card: deal.Card(owner)}

	d := NewDecision("d", owner, deal, store.Get(key))
	d.AddChild(game.Check, NewTerminal("check", checkPayoff))
	d.AddChild(game.Bet, NewTerminal("bet", betPayoff))
	return d
}
