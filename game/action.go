package game

// Action is a betting choice. Check/Bet are only legal when not facing a
// bet, Call/Fold only when facing one.
type Action int

const (
	Check Action = iota
	Bet
	Call
	Fold
)

// NumActions is the width of both action sets.
const NumActions = 2

var (
	FirstActions    = []Action{Check, Bet}
	ResponseActions = []Action{Call, Fold}
)

// ActionsFor returns the legal action set for a player who does or does not
// face a bet. Callers must not modify the returned slice.
func ActionsFor(facingBet bool) []Action {
	if facingBet {
		return ResponseActions
	}
	return FirstActions
}

func (a Action) String() string {
	switch a {
	case Check:
		return "Check"
	case Bet:
		return "Bet"
	case Call:
		return "Call"
	case Fold:
		return "Fold"
	default:
		return "Unknown"
	}
}

// Short is the single letter used in betting history strings.
func (a Action) Short() string {
	switch a {
	case Check:
		return "c"
	case Bet:
		return "b"
	case Call:
		return "k"
	case Fold:
		return "f"
	default:
		return "?"
	}
}

func History(actions []Action) string {
	s := ""
	for _, a := range actions {
		s += a.Short()
	}
	return s
}
