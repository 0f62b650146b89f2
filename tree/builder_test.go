package tree

import (
	"fmt"
	"kuhn/cfr"
	"kuhn/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewKuhn(t *testing.T) {
	kuhn := NewKuhn()

	t.Run("building every history once", func(t *testing.T) {
		require.Equal(t, cfr.Counts{Observations: 1, Decisions: 24, Terminals: 30}, cfr.Count(kuhn.Root))
		require.Len(t, kuhn.Root.Children(), 6, "One outcome per deal")
		require.Equal(t, 12, kuhn.Store.Len())
	})

	t.Run("naming decisions breadth first", func(t *testing.T) {
		decisions := cfr.Decisions(kuhn.Root)
		require.Len(t, decisions, 24)
		for i, d := range decisions {
			require.Equal(t, fmt.Sprintf("j%d", i+1), d.Name())
		}
	})

	t.Run("sharing infosets through the store", func(t *testing.T) {
		byInfoset := make(map[string]int)
		for _, d := range cfr.Decisions(kuhn.Root) {
			require.Same(t, kuhn.Store.Get(d.Infoset().Key()), d.Infoset(), "%s should point into the store", d.Name())
			byInfoset[d.Infoset().Name()]++
		}
		require.Len(t, byInfoset, 12)
		for name, n := range byInfoset {
			require.Equal(t, 2, n, "%s should be shared by the two deals its owner cannot tell apart", name)
		}
	})

	t.Run("wiring Jack against Queen", func(t *testing.T) {
		j1 := kuhn.Root.Children()[0].(*cfr.Decision)
		require.Equal(t, "j1", j1.Name())
		require.Equal(t, game.Deal{game.Jack, game.Queen}, j1.Deal())
		require.Equal(t, game.PlayerA, j1.Owner())
		require.Equal(t, "A1", j1.Infoset().Name())

		checked := j1.Child(game.Check).(*cfr.Decision)
		require.Equal(t, "j7", checked.Name())
		require.Equal(t, "B2", checked.Infoset().Name())
		require.Equal(t, "-1", checked.Child(game.Check).Name())

		bet := j1.Child(game.Bet).(*cfr.Decision)
		require.Equal(t, "j8", bet.Name())
		require.Equal(t, "B5", bet.Infoset().Name())
		require.Equal(t, -2.0, bet.Child(game.Call).(*cfr.Terminal).Payoff(game.PlayerA))
		require.Equal(t, 1.0, bet.Child(game.Fold).(*cfr.Terminal).Payoff(game.PlayerA))

		raised := checked.Child(game.Bet).(*cfr.Decision)
		require.Equal(t, "j19", raised.Name())
		require.Equal(t, "A4", raised.Infoset().Name())
		require.Equal(t, "-2", raised.Child(game.Call).Name())
		require.Equal(t, "-1", raised.Child(game.Fold).Name())
	})

	t.Run("balancing payoffs across deals", func(t *testing.T) {
		// Swapping the cards of a deal negates every payoff, so the tree sums to zero
		total := 0.0
		cfr.Walk(kuhn.Root, func(n cfr.Node) {
			if terminal, ok := n.(*cfr.Terminal); ok {
				total += terminal.Payoff(game.PlayerA)
				require.Contains(t, []float64{-2, -1, 1, 2}, terminal.Payoff(game.PlayerA))
			}
		})
		require.Zero(t, total)
	})
}

func TestNew(t *testing.T) {
	rules := &game.StandardRules{Ante: 2, BetSize: 3}
	doubled := New(rules)

	require.Same(t, rules, doubled.Rules)
	j1 := doubled.Root.Children()[0].(*cfr.Decision)
	bet := j1.Child(game.Bet).(*cfr.Decision)
	require.Equal(t, -5.0, bet.Child(game.Call).(*cfr.Terminal).Payoff(game.PlayerA))
	require.Equal(t, "+2", bet.Child(game.Fold).Name())
}
