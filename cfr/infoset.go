package cfr

import (
	"fmt"
	"kuhn/game"
	"kuhn/utils"

	"gonum.org/v1/gonum/floats"
)

// InfosetKey identifies what the acting player knows: who they are, whether
// they face a bet and their own card. The opponent's card is never part of it.
type InfosetKey struct {
	Player    game.Player
	FacingBet bool
	Card      game.Card
}

func (k InfosetKey) String() string {
	facing := "open"
	if k.FacingBet {
		facing = "facing"
	}
	return fmt.Sprintf("%s/%s/%s", k.Player, facing, k.Card)
}

// Infoset is the regret and strategy record shared by every decision node
// its owner cannot tell apart.
type Infoset struct {
	name       string
	key        InfosetKey
	actions    []game.Action
	regret     Vector
	strategy   Vector
	cumulative Vector
}

func NewInfoset(name string, key InfosetKey) *Infoset {
	if !key.Card.Valid() {
		panic(fmt.Sprintf("cannot create infoset %s: invalid card %s", name, key.Card))
	}
	actions := game.ActionsFor(key.FacingBet)
	if len(actions) == 0 {
		panic(fmt.Sprintf("cannot create infoset %s: no legal actions", name))
	}

	return &Infoset{
		name:     name,
		key:      key,
		actions:  actions,
		strategy: uniform(),
	}
}

func (is *Infoset) Name() string {
	return is.name
}

func (is *Infoset) Key() InfosetKey {
	return is.key
}

func (is *Infoset) Actions() []game.Action {
	return is.actions
}

func (is *Infoset) Regret() Vector {
	return is.regret
}

func (is *Infoset) Strategy() Vector {
	return is.strategy
}

func (is *Infoset) CumulativeStrategy() Vector {
	return is.cumulative
}

func (is *Infoset) AddRegret(action game.Action, delta float64) {
	is.regret[is.index(action)] += delta
}

// SetStrategy overwrites the current probability of one action. Callers
// update every action in the same cycle so the vector stays normalised.
func (is *Infoset) SetStrategy(action game.Action, value float64) {
	is.strategy[is.index(action)] = value
}

func (is *Infoset) AddCumulativeStrategy(action game.Action, weight float64) {
	if weight < 0 {
		panic(fmt.Sprintf("infoset %s: negative strategy weight %g for %s", is.name, weight, action))
	}
	is.cumulative[is.index(action)] += weight
}

// AverageStrategy normalises the cumulative strategy. An infoset that was
// never reached averages to uniform.
func (is *Infoset) AverageStrategy() Vector {
	avg := is.cumulative
	total := floats.Sum(avg[:])
	if total == 0 {
		return uniform()
	}
	floats.Scale(1/total, avg[:])
	return avg
}

// Policy maps each legal action to its average probability.
func (is *Infoset) Policy() map[game.Action]float64 {
	avg := is.AverageStrategy()
	policy := make(map[game.Action]float64, len(is.actions))
	for i, action := range is.actions {
		policy[action] = avg[i]
	}
	return policy
}

func (is *Infoset) index(action game.Action) int {
	i := utils.FindIndex(is.actions, action)
	if i < 0 {
		panic(fmt.Sprintf("infoset %s: illegal action %s", is.name, action))
	}
	return i
}
