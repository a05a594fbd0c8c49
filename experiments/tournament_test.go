package experiments

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"warzone/engine"
	"warzone/experiments/metrics"
	"warzone/game"
	"warzone/maploader"
)

func TestValidate(t *testing.T) {
	valid := metrics.TournamentConfig{
		Maps:       []string{"switzerland"},
		Strategies: []string{"aggressive", "benevolent"},
		Games:      1,
		MaxTurns:   10,
	}
	require.NoError(t, Validate(valid))

	cases := map[string]func(c *metrics.TournamentConfig){
		"no maps":         func(c *metrics.TournamentConfig) { c.Maps = nil },
		"too many maps":   func(c *metrics.TournamentConfig) { c.Maps = []string{"a", "b", "c", "d", "e", "f"} },
		"one strategy":    func(c *metrics.TournamentConfig) { c.Strategies = []string{"cheater"} },
		"human":           func(c *metrics.TournamentConfig) { c.Strategies = []string{"human", "cheater"} },
		"too many games":  func(c *metrics.TournamentConfig) { c.Games = 6 },
		"too few turns":   func(c *metrics.TournamentConfig) { c.MaxTurns = 9 },
		"too many turns":  func(c *metrics.TournamentConfig) { c.MaxTurns = 51 },
		"five strategies": func(c *metrics.TournamentConfig) { c.Strategies = []string{"aggressive", "benevolent", "neutral", "cheater", "cheater"} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := valid
			mutate(&config)
			require.ErrorIs(t, Validate(config), ErrInvalidTournament)
		})
	}
}

func TestPlayerNames(t *testing.T) {
	require.Equal(t,
		[]string{"cheater", "neutral", "cheater-2"},
		playerNames([]string{"Cheater", "neutral", "cheater"}))
}

func TestRun(t *testing.T) {
	t.Run("cheater beats neutral on every map and game", func(t *testing.T) {
		var mu sync.Mutex
		wins := 0
		tournament := Tournament{
			Config: metrics.TournamentConfig{
				Maps:       []string{"switzerland", "diamond"},
				Strategies: []string{"cheater", "neutral"},
				Games:      3,
				MaxTurns:   30,
			},
			Loader:  maploader.New(filepath.Join("..", "maploader", "testdata")),
			Seed:    1,
			Workers: 2,
			Options: []engine.Option{engine.WithSinks(game.SinkFunc(func(e game.Event) {
				if e.Kind == game.PhaseChangedEvent && e.State == "WIN" {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}))},
		}

		result, err := tournament.Run()

		require.NoError(t, err)
		require.Len(t, result.Records, 6)
		require.Equal(t, [][]string{
			{"switzerland", "cheater", "cheater", "cheater"},
			{"diamond", "cheater", "cheater", "cheater"},
		}, result.Table)
		for _, r := range result.Records {
			require.Equal(t, "cheater", r.Winner)
			require.Equal(t, r.Winner, r.Leader)
			require.Equal(t, 1.0, r.Score)
			require.LessOrEqual(t, r.Rounds, 30)
		}
		require.Equal(t, 6, wins, "Every game reaches WIN once")
		require.Contains(t, result.Format(3), "Game 3")
	})

	t.Run("passive players draw", func(t *testing.T) {
		tournament := Tournament{
			Config: metrics.TournamentConfig{
				Maps:       []string{"switzerland"},
				Strategies: []string{"neutral", "neutral"},
				Games:      1,
				MaxTurns:   10,
			},
			Loader: maploader.New(""),
			Seed:   3,
		}

		result, err := tournament.Run()

		require.NoError(t, err)
		require.Equal(t, [][]string{{"switzerland", Draw}}, result.Table)
		require.Equal(t, 10, result.Records[0].Rounds)
	})

	t.Run("unknown map fails before any game", func(t *testing.T) {
		tournament := Tournament{
			Config: metrics.TournamentConfig{
				Maps:       []string{"atlantis"},
				Strategies: []string{"neutral", "cheater"},
				Games:      1,
				MaxTurns:   10,
			},
			Loader: maploader.New(""),
		}

		_, err := tournament.Run()

		require.ErrorIs(t, err, maploader.ErrUnknownMap)
	})

	t.Run("results are written", func(t *testing.T) {
		config := metrics.TournamentConfig{
			Maps:       []string{"switzerland"},
			Strategies: []string{"cheater", "benevolent"},
			Games:      1,
			MaxTurns:   20,
		}
		result, err := Tournament{Config: config, Loader: maploader.New(""), Seed: 9}.Run()
		require.NoError(t, err)
		w, err := metrics.NewWriter(t.TempDir(), "tournament")
		require.NoError(t, err)

		require.NoError(t, result.Write(w, config))

		for _, name := range []string{"tournament.csv", "game_records.csv", "results.csv"} {
			require.FileExists(t, filepath.Join(w.Dir(), name))
		}
	})
}
