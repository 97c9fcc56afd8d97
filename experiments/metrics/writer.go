package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// TestRecord is the aggregated outcome of one benchmark test
type TestRecord struct {
	Label           string
	Game            string
	Player1Strategy string
	Player2Strategy string
	Matches         int
	Player1Wins     int
	Player2Wins     int
	Draws           int
	Player1MoveTime time.Duration // Average per move
	Player2MoveTime time.Duration
	Player1WinMoves float64 // Average game length of won matches
	Player2WinMoves float64
}

type GameRecord struct {
	ID              int
	Test            string
	Player1Strategy string
	Player2Strategy string
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the CSV files of one run
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

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteTestRecords(records []TestRecord) error {
	header := []string{"label", "game", "p1_strategy", "p2_strategy", "matches",
		"p1_wins", "p2_wins", "draws", "p1_move_time", "p2_move_time", "p1_win_moves", "p2_win_moves"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Label,
			record.Game,
			record.Player1Strategy,
			record.Player2Strategy,
			strconv.Itoa(record.Matches),
			strconv.Itoa(record.Player1Wins),
			strconv.Itoa(record.Player2Wins),
			strconv.Itoa(record.Draws),
			record.Player1MoveTime.String(),
			record.Player2MoveTime.String(),
			strconv.FormatFloat(record.Player1WinMoves, 'f', 2, 64),
			strconv.FormatFloat(record.Player2WinMoves, 'f', 2, 64),
		})
	}

	return w.write("test_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "test", "p1_strategy", "p2_strategy", "game", "status",
		"start_time", "end_time", "duration", "total_moves", "p1_time", "p2_time"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Test,
			record.Player1Strategy,
			record.Player2Strategy,
			record.Game,
			record.Status,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			record.Player1Time.String(),
			record.Player2Time.String(),
		})
	}

	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "strategy", "duration", "nodes", "episodes", "full_playouts"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Strategy,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
		})
	}

	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}
