package game

import "fmt"

// StandardRules is Kuhn poker: both players ante, PlayerA acts first and a
// single bet may be made, after which the other player calls or folds.
type StandardRules struct {
	Ante    float64
	BetSize float64
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Ante:    1,
		BetSize: 1,
	}
}

func (sr *StandardRules) Actor(history []Action) Player {
	return Players[len(history)%NumPlayers]
}

func (sr *StandardRules) FacingBet(history []Action) bool {
	return len(history) > 0 && history[len(history)-1] == Bet
}

func (sr *StandardRules) IsTerminal(history []Action) bool {
	if len(history) < 2 {
		return false
	}
	last := history[len(history)-1]
	switch last {
	case Call, Fold:
		return true
	case Check:
		return history[len(history)-2] == Check
	default:
		return false
	}
}

func (sr *StandardRules) Payoff(deal Deal, history []Action) float64 {
	if !sr.IsTerminal(history) {
		panic(fmt.Sprintf("cannot compute payoff: history %q is not terminal", History(history)))
	}
	if !deal.Valid() {
		panic(fmt.Sprintf("cannot compute payoff: invalid deal %v", deal))
	}

	// Chips each player has put in the pot
	committed := [NumPlayers]float64{sr.Ante, sr.Ante}
	for i, action := range history {
		if action == Bet || action == Call {
			committed[sr.Actor(history[:i])] += sr.BetSize
		}
	}

	last := len(history) - 1
	if history[last] == Fold {
		folder := sr.Actor(history[:last])
		winner := folder.Opponent()
		return winner.Sign() * committed[folder]
	}

	winner := deal.Winner()
	return winner.Sign() * committed[winner.Opponent()]
}
