package tree

import (
	"fmt"
	"kuhn/cfr"
	"kuhn/game"
)

// Tree is the fixed game tree with the store its decisions point into.
type Tree struct {
	Root  *cfr.Observation
	Store *cfr.Store
	Rules game.Rules
}

// pending is a history whose node has not been built yet. attach links the
// built node to its parent.
type pending struct {
	deal    game.Deal
	history []game.Action
	attach  func(cfr.Node)
}

// New builds the tree breadth first: the deal at the root, then every legal
// betting history of every deal. Decisions are named j1, j2, ... in build
// order and bound to the store's infoset for their owner, facing flag and card.
func New(rules game.Rules) *Tree {
	store := cfr.NewStore()
	root := cfr.NewObservation("Chance")

	queue := make([]pending, 0, len(game.Deals()))
	for _, deal := range game.Deals() {
		queue = append(queue, pending{deal: deal, attach: root.AddChild})
	}

	decisions := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if rules.IsTerminal(p.history) {
			payoff := rules.Payoff(p.deal, p.history)
			p.attach(cfr.NewTerminal(fmt.Sprintf("%+g", payoff), payoff))
			continue
		}

		owner := rules.Actor(p.history)
		key := cfr.InfosetKey{
			Player:    owner,
			FacingBet: rules.FacingBet(p.history),
			Card:      p.deal.Card(owner),
		}
		decisions++
		node := cfr.NewDecision(fmt.Sprintf("j%d", decisions), owner, p.deal, store.Get(key))
		p.attach(node)

		for _, action := range node.Actions() {
			history := make([]game.Action, len(p.history), len(p.history)+1)
			copy(history, p.history)
			queue = append(queue, pending{
				deal:    p.deal,
				history: append(history, action),
				attach:  attachTo(node, action),
			})
		}
	}

	cfr.Validate(root)
	return &Tree{
		Root:  root,
		Store: store,
		Rules: rules,
	}
}

// NewKuhn builds the tree for standard Kuhn poker.
func NewKuhn() *Tree {
	return New(game.NewStandardRules())
}

func attachTo(parent *cfr.Decision, action game.Action) func(cfr.Node) {
	return func(child cfr.Node) {
		parent.AddChild(action, child)
	}
}
