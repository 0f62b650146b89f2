package report

import (
	"fmt"
	"io"
	"kuhn/cfr"
	"kuhn/experiments/metrics"
	"kuhn/game"
	"strings"
)

// PrintTree writes one line per decision node, breadth first: its name,
// owner, both cards, infoset, final regret and average strategy.
func PrintTree(w io.Writer, root cfr.Node) error {
	for _, d := range cfr.Decisions(root) {
		if _, err := fmt.Fprintln(w, DecisionLine(d)); err != nil {
			return err
		}
	}
	return nil
}

func DecisionLine(d *cfr.Decision) string {
	is := d.Infoset()
	deal := d.Deal()
	return fmt.Sprintf("%s: %s (%s, %s) Infoset = %s Regret = %s Average Strategy = %s",
		d.Name(),
		d.Owner(),
		deal.Card(game.PlayerA),
		deal.Card(game.PlayerB),
		is.Name(),
		formatVector(is.Actions(), is.Regret()),
		formatVector(is.Actions(), is.AverageStrategy()),
	)
}

// PrintSummary writes one line per infoset in store order.
func PrintSummary(w io.Writer, store *cfr.Store) error {
	for _, is := range store.All() {
		_, err := fmt.Fprintf(w, "%s %-22s Average Strategy = %s\n",
			is.Name(), is.Key(), formatVector(is.Actions(), is.AverageStrategy()))
		if err != nil {
			return err
		}
	}
	return nil
}

// PrintSweep writes one line per seed of a sweep.
func PrintSweep(w io.Writer, records []metrics.SweepRecord) error {
	for _, r := range records {
		_, err := fmt.Fprintf(w, "seed %d: exploitability %.5f value %.5f Jack bet %.4f King bet %.4f (%s)\n",
			r.Seed, r.Exploitability, r.ExpectedValue, r.JackBet, r.KingBet, r.Duration)
		if err != nil {
			return err
		}
	}
	return nil
}

// Strategies flattens the store into one record per infoset action.
func Strategies(store *cfr.Store) []metrics.StrategyRecord {
	var records []metrics.StrategyRecord
	for _, is := range store.All() {
		key := is.Key()
		regret := is.Regret()
		strategy := is.Strategy()
		average := is.AverageStrategy()
		cumulative := is.CumulativeStrategy()
		for i, action := range is.Actions() {
			records = append(records, metrics.StrategyRecord{
				Infoset:    is.Name(),
				Player:     key.Player.String(),
				FacingBet:  key.FacingBet,
				Card:       key.Card.String(),
				Action:     action.String(),
				Regret:     regret[i],
				Strategy:   strategy[i],
				Average:    average[i],
				Cumulative: cumulative[i],
			})
		}
	}
	return records
}

func formatVector(actions []game.Action, v cfr.Vector) string {
	parts := make([]string, len(actions))
	for i, action := range actions {
		parts[i] = fmt.Sprintf("%s: %g", action, v[i])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
