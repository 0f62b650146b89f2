package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Setup struct {
	RunID      string         `json:"runId"`
	Iterations int            `json:"iterations"`
	Seed       uint64         `json:"seed"`
	Checkpoint int            `json:"checkpoint"`
	StartTime  time.Time      `json:"startTime"`
	EndTime    time.Time      `json:"endTime"`
	Duration   time.Duration  `json:"duration"`
	Training   TrainingMetric `json:"training"`
}

// StrategyRecord is one action row of a trained infoset.
type StrategyRecord struct {
	Infoset    string
	Player     string
	FacingBet  bool
	Card       string
	Action     string
	Regret     float64
	Strategy   float64 // Current (last iteration) probability
	Average    float64 // Time-averaged probability
	Cumulative float64
}

// SweepRecord is where one seed's training run ended up.
type SweepRecord struct {
	Seed           uint64
	Iterations     int
	Duration       time.Duration
	Exploitability float64
	ExpectedValue  float64
	JackBet        float64 // PlayerA's opening bet with Jack
	KingBet        float64 // PlayerA's opening bet with King
}

type Writer struct {
	runID   string
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by timestamp and run id
	runID := uuid.NewString()
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp+"-"+runID[:8])

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory %s", baseDir)
	}

	return &Writer{
		runID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) RunID() string {
	return w.runID
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	setup.RunID = w.runID

	setupPath := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(setupPath)
	if err != nil {
		return errors.Wrap(err, "failed to create setup file")
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return errors.Wrap(err, "failed to write setup")
	}

	return nil
}

func (w *Writer) WriteStrategies(records []StrategyRecord) error {
	header := []string{"infoset", "player", "facing_bet", "card", "action", "regret", "strategy", "average", "cumulative"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Infoset,
			r.Player,
			strconv.FormatBool(r.FacingBet),
			r.Card,
			r.Action,
			formatFloat(r.Regret),
			formatFloat(r.Strategy),
			formatFloat(r.Average),
			formatFloat(r.Cumulative),
		})
	}
	return w.writeCSV("strategies.csv", header, rows)
}

func (w *Writer) WriteConvergence(records []ConvergenceRecord) error {
	header := []string{"iteration", "exploitability", "expected_value", "elapsed"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Iteration),
			formatFloat(r.Exploitability),
			formatFloat(r.ExpectedValue),
			r.Elapsed.String(),
		})
	}
	return w.writeCSV("convergence.csv", header, rows)
}

func (w *Writer) WriteSweep(records []SweepRecord) error {
	header := []string{"seed", "iterations", "duration", "exploitability", "expected_value", "jack_bet", "king_bet"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatUint(r.Seed, 10),
			strconv.Itoa(r.Iterations),
			r.Duration.String(),
			formatFloat(r.Exploitability),
			formatFloat(r.ExpectedValue),
			formatFloat(r.JackBet),
			formatFloat(r.KingBet),
		})
	}
	return w.writeCSV("sweep.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write %s row", name)
		}
	}

	writer.Flush()
	return errors.Wrapf(writer.Error(), "failed to flush %s", name)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
