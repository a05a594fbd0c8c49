package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// TournamentConfig describes one tournament run.
type TournamentConfig struct {
	Maps       []string
	Strategies []string
	Games      int // Per map
	MaxTurns   int
}

// GameRecord is the outcome of one tournament game.
type GameRecord struct {
	Map       string
	Game      int    // 1-based, per map
	Winner    string // Player name, or "draw"
	Strategy  string // Winner's strategy, empty on a draw
	Leader    string // Best standing player when the game ended
	Score     float64
	Rounds    int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the CSV files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteConfig(config TournamentConfig) error {
	header := []string{"maps", "strategies", "games", "max_turns"}
	rows := [][]string{{
		strings.Join(config.Maps, ";"),
		strings.Join(config.Strategies, ";"),
		strconv.Itoa(config.Games),
		strconv.Itoa(config.MaxTurns),
	}}
	return w.write("tournament.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"map", "game", "winner", "strategy", "leader", "score", "rounds", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Map,
			strconv.Itoa(record.Game),
			record.Winner,
			record.Strategy,
			record.Leader,
			strconv.FormatFloat(record.Score, 'f', 3, 64),
			strconv.Itoa(record.Rounds),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

// WriteResults writes the map by game table of winners.
func (w *Writer) WriteResults(table [][]string, games int) error {
	header := []string{"map"}
	for g := 1; g <= games; g++ {
		header = append(header, fmt.Sprintf("game %d", g))
	}
	return w.write("results.csv", header, table)
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
