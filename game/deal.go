package game

// Deal is one outcome of the hidden deal: one distinct card per player.
type Deal [NumPlayers]Card

func (d Deal) Card(p Player) Card {
	return d[p]
}

func (d Deal) Valid() bool {
	return d[PlayerA].Valid() && d[PlayerB].Valid() && d[PlayerA] != d[PlayerB]
}

// Winner returns the player holding the higher card.
func (d Deal) Winner() Player {
	if d[PlayerA].Beats(d[PlayerB]) {
		return PlayerA
	}
	return PlayerB
}

// Deals enumerates every valid deal ordered by PlayerA's card, then PlayerB's.
func Deals() []Deal {
	deals := make([]Deal, 0, NumCards*(NumCards-1))
	for _, a := range Cards {
		for _, b := range Cards {
			if a == b {
				continue // Both players can't hold the same card
			}
			deals = append(deals, Deal{a, b})
		}
	}
	return deals
}
