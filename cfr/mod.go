package cfr

import (
	"kuhn/experiments/metrics"
	"kuhn/game"

	"gonum.org/v1/gonum/floats"
)

// Vector holds one value per legal action, in action enumeration order.
type Vector [game.NumActions]float64

// Reach holds, per player, the probability that the player's own strategy
// leads play to a node. Chance and the opponent are not counted.
type Reach [game.NumPlayers]float64

// StartReach is the reach at the root of every iteration.
func StartReach() Reach {
	return Reach{1, 1}
}

// Sampler is the source of uniformly distributed integers used to pick a deal.
type Sampler interface {
	Intn(n int) int
}

// walker carries the per-run collaborators through one traversal.
type walker struct {
	sampler Sampler
	metrics metrics.Collector
}

func uniform() Vector {
	var v Vector
	floats.AddConst(1.0/float64(len(v)), v[:])
	return v
}
