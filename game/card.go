package game

type Card int

const (
	NoCard Card = iota // Placeholder only, never held in a resolved decision
	Jack
	Queen
	King
)

const NumCards = 3

// Cards lists the dealable cards from lowest to highest.
var Cards = [NumCards]Card{Jack, Queen, King}

func (c Card) Valid() bool {
	return c >= Jack && c <= King
}

func (c Card) Beats(other Card) bool {
	return c > other
}

func (c Card) String() string {
	switch c {
	case NoCard:
		return "None"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}
