package cfr

import (
	"fmt"
	"kuhn/game"
	"kuhn/utils"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Decision is a node where its owner picks one of the legal actions of its
// infoset. Several decisions share one infoset when the owner cannot tell
// them apart.
type Decision struct {
	name     string
	owner    game.Player
	deal     game.Deal
	infoset  *Infoset
	children []Node // One per action, in the infoset's action order
}

func NewDecision(name string, owner game.Player, deal game.Deal, infoset *Infoset) *Decision {
	if infoset == nil {
		panic(fmt.Sprintf("decision %s has no infoset", name))
	}
	if len(infoset.Actions()) == 0 {
		panic(fmt.Sprintf("decision %s has no legal actions", name))
	}
	card := deal.Card(owner)
	if !card.Valid() {
		panic(fmt.Sprintf("decision %s: %s holds no card", name, owner))
	}
	if key := infoset.Key(); key.Player != owner || key.Card != card {
		panic(fmt.Sprintf("decision %s: infoset %s does not belong to %s holding %s", name, infoset.Name(), owner, card))
	}

	return &Decision{
		name:     name,
		owner:    owner,
		deal:     deal,
		infoset:  infoset,
		children: make([]Node, len(infoset.Actions())),
	}
}

func (d *Decision) Name() string {
	return d.name
}

func (d *Decision) Owner() game.Player {
	return d.owner
}

func (d *Decision) Deal() game.Deal {
	return d.deal
}

func (d *Decision) Infoset() *Infoset {
	return d.infoset
}

func (d *Decision) Actions() []game.Action {
	return d.infoset.Actions()
}

func (d *Decision) Children() []Node {
	return d.children
}

func (d *Decision) Child(action game.Action) Node {
	return d.children[utils.MustFindIndex(d.Actions(), action)]
}

// AddChild attaches the subtree reached by action.
func (d *Decision) AddChild(action game.Action, child Node) {
	i := utils.FindIndex(d.Actions(), action)
	if i < 0 {
		panic(fmt.Sprintf("decision %s: illegal action %s", d.name, action))
	}
	if d.children[i] != nil {
		panic(fmt.Sprintf("decision %s: %s already has a child", d.name, action))
	}
	if child == nil {
		panic(fmt.Sprintf("decision %s: nil child for %s", d.name, action))
	}
	d.children[i] = child
}

func (d *Decision) validate() {
	for i, child := range d.children {
		if child == nil {
			panic(fmt.Sprintf("decision %s has no child for %s", d.name, d.Actions()[i]))
		}
	}
}

// NextStrategy sets the infoset's strategy by regret matching.
func (d *Decision) NextStrategy() {
	next := regretMatching(d.infoset.Regret())
	for i, action := range d.Actions() {
		d.infoset.SetStrategy(action, next[i])
	}
}

// regretMatching plays each action in proportion to its positive regret, or
// uniformly when no action has positive regret.
func regretMatching(regret Vector) Vector {
	var theta Vector
	for i, r := range regret {
		theta[i] = math.Max(r, 0)
	}
	sum := floats.Sum(theta[:])
	if sum <= 0 {
		return uniform()
	}
	floats.Scale(1/sum, theta[:])
	return theta
}

// observeUtility updates the infoset from this node's counterfactual values.
// Utilities cross node boundaries relative to PlayerA and are flipped to the
// owner's point of view only for the regret update.
func (d *Decision) observeUtility(w *walker, reach Reach) float64 {
	w.metrics.AddDecision()

	is := d.infoset
	actions := d.Actions()
	opponent := d.owner.Opponent()
	sign := d.owner.Sign()
	strategy := is.Strategy()

	var utilities Vector
	for i, child := range d.children {
		if child == nil {
			panic(fmt.Sprintf("decision %s has no child for %s", d.name, actions[i]))
		}
		next := reach
		next[d.owner] = reach[d.owner] * strategy[i]
		utilities[i] = sign * child.observeUtility(w, next)
	}
	ev := floats.Dot(strategy[:], utilities[:])

	// Regret is conditioned on the opponent steering play here
	for i, action := range actions {
		is.AddRegret(action, reach[opponent]*(utilities[i]-ev))
	}

	d.NextStrategy()

	refreshed := is.Strategy()
	for i, action := range actions {
		is.AddCumulativeStrategy(action, reach[d.owner]*refreshed[i])
	}

	return sign * ev
}
