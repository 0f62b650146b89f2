package cfr

import "kuhn/game"

// Terminal is a leaf holding PlayerA's payoff. PlayerB receives its negation.
type Terminal struct {
	name   string
	payoff float64
}

func NewTerminal(name string, payoff float64) *Terminal {
	return &Terminal{name: name, payoff: payoff}
}

func (t *Terminal) Name() string {
	return t.name
}

func (t *Terminal) Children() []Node {
	return nil
}

func (t *Terminal) Payoff(player game.Player) float64 {
	return player.Sign() * t.payoff
}

func (t *Terminal) observeUtility(w *walker, _ Reach) float64 {
	w.metrics.AddTerminal()
	return t.payoff
}
