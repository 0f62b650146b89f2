package cfr

import (
	"fmt"
	"kuhn/game"
	"kuhn/utils"
)

// Store owns every infoset of the game, keyed by identity. Decision nodes
// hold pointers into it and never a copy.
type Store struct {
	infosets map[InfosetKey]*Infoset
	order    []InfosetKey
}

// NewStore allocates one infoset per (player, facing bet, card) triple,
// named A1..A6 and B1..B6 in player, facing, card order.
func NewStore() *Store {
	s := &Store{
		infosets: make(map[InfosetKey]*Infoset),
	}
	for _, player := range game.Players {
		idx := 1
		for _, facing := range []bool{false, true} {
			for _, card := range game.Cards {
				key := InfosetKey{Player: player, FacingBet: facing, Card: card}
				s.infosets[key] = NewInfoset(fmt.Sprintf("%s%d", player.Letter(), idx), key)
				s.order = append(s.order, key)
				idx++
			}
		}
	}
	return s
}

// Get returns the infoset for key. An unknown key is a construction bug.
func (s *Store) Get(key InfosetKey) *Infoset {
	is, ok := s.infosets[key]
	if !ok {
		panic(fmt.Sprintf("no infoset for %s", key))
	}
	return is
}

func (s *Store) Lookup(key InfosetKey) (*Infoset, bool) {
	is, ok := s.infosets[key]
	return is, ok
}

func (s *Store) Len() int {
	return len(s.infosets)
}

// All returns the infosets in creation order.
func (s *Store) All() []*Infoset {
	all := make([]*Infoset, len(s.order))
	for i, key := range s.order {
		all[i] = s.infosets[key]
	}
	return all
}

// Profile maps each infoset to a probability vector over its actions.
type Profile map[InfosetKey]Vector

// AverageProfile extracts the time-averaged strategy of every infoset.
func (s *Store) AverageProfile() Profile {
	profile := make(Profile, len(s.infosets))
	for key, is := range s.infosets {
		profile[key] = is.AverageStrategy()
	}
	return profile
}

// CurrentProfile is the strategy in force for the next iteration.
func (s *Store) CurrentProfile() Profile {
	profile := make(Profile, len(s.infosets))
	for key, is := range s.infosets {
		profile[key] = is.Strategy()
	}
	return profile
}

// Probability of taking action at key. Keys missing from the profile play uniformly.
func (p Profile) Probability(key InfosetKey, action game.Action) float64 {
	return p.strategy(key)[actionIndex(key, action)]
}

func (p Profile) strategy(key InfosetKey) Vector {
	if v, ok := p[key]; ok {
		return v
	}
	return uniform()
}

func actionIndex(key InfosetKey, action game.Action) int {
	return utils.MustFindIndex(game.ActionsFor(key.FacingBet), action)
}
