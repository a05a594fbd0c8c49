package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "tournament")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("config", func(t *testing.T) {
		require.NoError(t, w.WriteConfig(TournamentConfig{
			Maps:       []string{"switzerland", "diamond"},
			Strategies: []string{"aggressive", "cheater"},
			Games:      2,
			MaxTurns:   30,
		}))

		rows := readCSV(t, filepath.Join(w.Dir(), "tournament.csv"))
		require.Equal(t, []string{"switzerland;diamond", "aggressive;cheater", "2", "30"}, rows[1])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{
			{Map: "switzerland", Game: 1, Winner: "cheater-2", Strategy: "cheater", Leader: "cheater-2", Score: 1, Rounds: 7, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second},
			{Map: "switzerland", Game: 2, Winner: "draw", Leader: "aggressive", Score: 0.25, Rounds: 30, StartTime: start, EndTime: start, Duration: 0},
		}))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "map", rows[0][0])
		require.Equal(t, []string{"switzerland", "1", "cheater-2", "cheater", "cheater-2", "1.000", "7", "2024-05-01T12:00:00Z", "2024-05-01T12:00:01Z", "1s"}, rows[1])
		require.Equal(t, "draw", rows[2][2])
		require.Equal(t, []string{"aggressive", "0.250"}, rows[2][4:6])
	})

	t.Run("results table", func(t *testing.T) {
		require.NoError(t, w.WriteResults([][]string{{"switzerland", "cheater", "draw"}}, 2))

		rows := readCSV(t, filepath.Join(w.Dir(), "results.csv"))
		require.Equal(t, []string{"map", "game 1", "game 2"}, rows[0])
		require.Equal(t, []string{"switzerland", "cheater", "draw"}, rows[1])
	})
}
