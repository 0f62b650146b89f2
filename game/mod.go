package game

// Player identifies one of the two seats. PlayerA always acts first.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

const NumPlayers = 2

var Players = [NumPlayers]Player{PlayerA, PlayerB}

func (p Player) Opponent() Player {
	return 1 - p
}

// Sign converts a PlayerA-relative utility into this player's terms.
func (p Player) Sign() float64 {
	if p == PlayerB {
		return -1
	}
	return 1
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "PlayerA"
	case PlayerB:
		return "PlayerB"
	default:
		return "Unknown"
	}
}

// Letter is the short prefix used in infoset names.
func (p Player) Letter() string {
	if p == PlayerB {
		return "B"
	}
	return "A"
}
