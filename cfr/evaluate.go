package cfr

import (
	"kuhn/game"
	"sort"
)

// ExpectedValue is PlayerA's exact expected payoff when both players follow
// profile, averaging uniformly over the outcomes of every observation.
func ExpectedValue(root Node, profile Profile) float64 {
	var value func(n Node) float64
	value = func(n Node) float64 {
		switch n := n.(type) {
		case *Terminal:
			return n.payoff
		case *Observation:
			return chanceAverage(n, value)
		case *Decision:
			strategy := profile.strategy(n.infoset.key)
			ev := 0.0
			for i, child := range n.children {
				ev += strategy[i] * value(child)
			}
			return ev
		default:
			panic("Unexpected node type")
		}
	}
	return value(root)
}

// BestResponseValue is the best payoff player can get against the
// opponent's strategy in profile. The response picks one action per
// infoset, resolving deeper infosets first.
func BestResponseValue(root Node, profile Profile, player game.Player) float64 {
	type weighted struct {
		node   *Decision
		weight float64 // Chance times opponent reach
	}
	groups := make(map[InfosetKey][]weighted)
	depths := make(map[InfosetKey]int)

	var collect func(n Node, weight float64, depth int)
	collect = func(n Node, weight float64, depth int) {
		switch n := n.(type) {
		case *Terminal:
		case *Observation:
			p := 1 / float64(len(n.children))
			for _, child := range n.children {
				collect(child, weight*p, depth+1)
			}
		case *Decision:
			key := n.infoset.key
			if n.owner == player {
				groups[key] = append(groups[key], weighted{node: n, weight: weight})
				depths[key] = max(depths[key], depth)
				for _, child := range n.children {
					collect(child, weight, depth+1)
				}
				return
			}
			strategy := profile.strategy(key)
			for i, child := range n.children {
				collect(child, weight*strategy[i], depth+1)
			}
		default:
			panic("Unexpected node type")
		}
	}
	collect(root, 1, 0)

	choice := make(map[InfosetKey]int)
	var value func(n Node) float64
	value = func(n Node) float64 {
		switch n := n.(type) {
		case *Terminal:
			return n.Payoff(player)
		case *Observation:
			return chanceAverage(n, value)
		case *Decision:
			key := n.infoset.key
			if n.owner == player {
				i, ok := choice[key]
				if !ok {
					panic("best response for " + key.String() + " evaluated before it was chosen")
				}
				return value(n.children[i])
			}
			strategy := profile.strategy(key)
			ev := 0.0
			for i, child := range n.children {
				ev += strategy[i] * value(child)
			}
			return ev
		default:
			panic("Unexpected node type")
		}
	}

	keys := make([]InfosetKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if depths[keys[i]] != depths[keys[j]] {
			return depths[keys[i]] > depths[keys[j]]
		}
		return keys[i].String() < keys[j].String()
	})

	for _, key := range keys {
		var totals Vector
		for _, w := range groups[key] {
			for i, child := range w.node.children {
				totals[i] += w.weight * value(child)
			}
		}
		best := 0
		for i := 1; i < len(game.ActionsFor(key.FacingBet)); i++ {
			if totals[i] > totals[best] {
				best = i
			}
		}
		choice[key] = best
	}

	return value(root)
}

// Exploitability is the mean gain of the two best responses against
// profile. It is zero exactly at a Nash equilibrium.
func Exploitability(root Node, profile Profile) float64 {
	a := BestResponseValue(root, profile, game.PlayerA)
	b := BestResponseValue(root, profile, game.PlayerB)
	return (a + b) / 2
}

func chanceAverage(o *Observation, value func(Node) float64) float64 {
	total := 0.0
	for _, child := range o.children {
		total += value(child)
	}
	return total / float64(len(o.children))
}
