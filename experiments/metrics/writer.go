package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Matchup pairs a scripted human with a computer opponent.
type Matchup struct {
	ID       int
	Human    string
	Opponent string
}

type MatchRecord struct {
	ID      string // uuid
	Matchup int    // Matchup.ID
	Game    int
	Seed    uint64
	MatchMetric
}

type RoundRecord struct {
	Match string // MatchRecord.ID
	RoundMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder for one experiment under root.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the folder the reports are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchups(matchups []Matchup) error {
	header := []string{"id", "human", "opponent"}
	rows := make([][]string, 0, len(matchups))
	for _, m := range matchups {
		rows = append(rows, []string{strconv.Itoa(m.ID), m.Human, m.Opponent})
	}
	return w.write("matchups.csv", header, rows)
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	header := []string{"id", "matchup", "game", "seed", "opponent", "winner", "human_points", "computer_points", "rounds", "ties", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID,
			strconv.Itoa(r.Matchup),
			strconv.Itoa(r.Game),
			strconv.FormatUint(r.Seed, 10),
			r.Opponent,
			r.Winner.String(),
			strconv.Itoa(r.HumanPoints),
			strconv.Itoa(r.ComputerPoints),
			strconv.Itoa(r.Rounds),
			strconv.Itoa(r.Ties),
			r.StartTime.Format(time.RFC3339Nano),
			r.EndTime.Format(time.RFC3339Nano),
			r.Duration.String(),
		})
	}
	return w.write("match_records.csv", header, rows)
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	header := []string{"match", "round", "human", "computer", "winner"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Match,
			strconv.Itoa(r.Round),
			r.Result.Human.String(),
			r.Result.Computer.String(),
			r.Result.Winner.String(),
		})
	}
	return w.write("round_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	if err := writeCSV(f, header, rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}

// writeCSV writes header and rows to wc and closes it. A close error is
// returned when everything else succeeded.
func writeCSV(wc io.WriteCloser, header []string, rows [][]string) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	writer := csv.NewWriter(wc)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	return nil
}
