package game

// Rules describes the betting structure of a one-round, one-bet game.
type Rules interface {
	Actor(history []Action) Player
	FacingBet(history []Action) bool
	IsTerminal(history []Action) bool
	// Payoff is the PlayerA-relative payoff of a terminal history.
	Payoff(deal Deal, history []Action) float64
}
