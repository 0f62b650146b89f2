package cfr

import (
	"fmt"
)

// Node is a point of the game tree: *Observation, *Decision or *Terminal.
// The set is closed; observeUtility keeps other packages from adding variants.
type Node interface {
	Name() string
	Children() []Node
	// observeUtility runs one CFR pass below the node and returns the
	// PlayerA-relative utility of the node.
	observeUtility(w *walker, reach Reach) float64
}

// Walk visits every node under root breadth first.
func Walk(root Node, visit func(Node)) {
	queue := []Node{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visit(node)
		queue = append(queue, node.Children()...)
	}
}

type Counts struct {
	Observations int
	Decisions    int
	Terminals    int
}

func Count(root Node) Counts {
	var c Counts
	Walk(root, func(n Node) {
		switch n.(type) {
		case *Observation:
			c.Observations++
		case *Decision:
			c.Decisions++
		case *Terminal:
			c.Terminals++
		default:
			panic("Unexpected node type")
		}
	})
	return c
}

// Decisions lists the decision nodes under root in breadth first order.
func Decisions(root Node) []*Decision {
	var decisions []*Decision
	Walk(root, func(n Node) {
		if d, ok := n.(*Decision); ok {
			decisions = append(decisions, d)
		}
	})
	return decisions
}

// Validate panics if the tree under root violates a construction invariant:
// a shared node, an empty observation, a decision with a missing child or
// an infoset that does not belong to its owner and card.
func Validate(root Node) {
	if root == nil {
		panic("tree has no root")
	}
	seen := make(map[Node]bool)
	Walk(root, func(n Node) {
		if seen[n] {
			panic(fmt.Sprintf("node %s appears twice in the tree", n.Name()))
		}
		seen[n] = true

		switch n := n.(type) {
		case *Observation:
			if len(n.children) == 0 {
				panic(fmt.Sprintf("observation %s has no outcomes", n.name))
			}
		case *Decision:
			n.validate()
		case *Terminal:
		default:
			panic("Unexpected node type")
		}
	})
}
