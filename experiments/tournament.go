package experiments

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"warzone/engine"
	"warzone/experiments/metrics"
	"warzone/game"
	"warzone/player"
)

const (
	MinMaps, MaxMaps             = 1, 5
	MinStrategies, MaxStrategies = 2, 4
	MinGames, MaxGames           = 1, 5
	MinTurns, MaxTurns           = 10, 50

	Draw = "draw"

	// DefaultWorkers is how many games run at once.
	DefaultWorkers = 8
)

var ErrInvalidTournament = errors.New("invalid tournament")

// Tournament plays every map Games times with one player per strategy.
type Tournament struct {
	Config  metrics.TournamentConfig
	Loader  engine.MapLoader
	Options []engine.Option // Applied to every game, e.g. sinks and rules
	Seed    uint64          // Game i is seeded with Seed+i, zero seeds from the clock
	Workers int
}

// Result holds one record per game and the map by game table of winners.
type Result struct {
	Records []metrics.GameRecord
	Table   [][]string
}

// Validate checks the tournament bounds. Humans cannot take part.
func Validate(config metrics.TournamentConfig) error {
	var problems []string
	if n := len(config.Maps); n < MinMaps || n > MaxMaps {
		problems = append(problems, fmt.Sprintf("%d maps, want %d to %d", n, MinMaps, MaxMaps))
	}
	if n := len(config.Strategies); n < MinStrategies || n > MaxStrategies {
		problems = append(problems, fmt.Sprintf("%d strategies, want %d to %d", n, MinStrategies, MaxStrategies))
	}
	for _, s := range config.Strategies {
		if _, err := player.ForName(s); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if config.Games < MinGames || config.Games > MaxGames {
		problems = append(problems, fmt.Sprintf("%d games, want %d to %d", config.Games, MinGames, MaxGames))
	}
	if config.MaxTurns < MinTurns || config.MaxTurns > MaxTurns {
		problems = append(problems, fmt.Sprintf("%d turns, want %d to %d", config.MaxTurns, MinTurns, MaxTurns))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTournament, strings.Join(problems, "; "))
	}
	return nil
}

// playerNames gives each strategy a player, numbering repeated strategies.
func playerNames(strategies []string) []string {
	names := make([]string, len(strategies))
	seen := make(map[string]int)
	for i, s := range strategies {
		s = strings.ToLower(s)
		seen[s]++
		names[i] = s
		if seen[s] > 1 {
			names[i] = fmt.Sprintf("%s-%d", s, seen[s])
		}
	}
	return names
}

type job struct {
	index int
	mapID int
	game  int
}

// Run plays all games on a pool of workers. Maps are checked before any
// game starts.
func (t Tournament) Run() (Result, error) {
	if err := Validate(t.Config); err != nil {
		return Result{}, err
	}
	for _, name := range t.Config.Maps {
		m, err := t.Loader.Load(name)
		if err != nil {
			return Result{}, err
		}
		if err := m.Validate().Err(); err != nil {
			return Result{}, fmt.Errorf("map %s: %w", name, err)
		}
	}

	workers := t.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	log.Info().Msgf("starting tournament on %v with %v, %d games per map, %d turns", t.Config.Maps, t.Config.Strategies, t.Config.Games, t.Config.MaxTurns)

	total := len(t.Config.Maps) * t.Config.Games
	records := make([]metrics.GameRecord, total)
	errs := make([]error, total)
	jobs := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				records[j.index], errs[j.index] = t.play(j)
			}
		}()
	}
	for m := range t.Config.Maps {
		for g := 1; g <= t.Config.Games; g++ {
			jobs <- job{index: m*t.Config.Games + g - 1, mapID: m, game: g}
		}
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return Result{}, err
	}

	table := make([][]string, len(t.Config.Maps))
	for m, name := range t.Config.Maps {
		table[m] = []string{name}
		for g := 0; g < t.Config.Games; g++ {
			record := records[m*t.Config.Games+g]
			cell := record.Strategy
			if cell == "" {
				cell = Draw
			}
			table[m] = append(table[m], cell)
		}
	}

	log.Info().Msg("completed tournament")
	return Result{Records: records, Table: table}, nil
}

func (t Tournament) play(j job) (metrics.GameRecord, error) {
	mapName := t.Config.Maps[j.mapID]
	options := append([]engine.Option{}, t.Options...)
	options = append(options, engine.WithMaxTurns(t.Config.MaxTurns))
	if t.Seed != 0 {
		options = append(options, engine.WithSeed(t.Seed+uint64(j.index)))
	}
	e := engine.New(t.Loader, options...)

	commands := []string{"loadmap " + mapName, "validatemap"}
	for i, name := range playerNames(t.Config.Strategies) {
		commands = append(commands, fmt.Sprintf("addplayer %s %s", name, t.Config.Strategies[i]))
	}
	commands = append(commands, "gamestart")

	log.Info().Msgf("starting %s game %d of %d...", mapName, j.game, t.Config.Games)
	record := metrics.GameRecord{Map: mapName, Game: j.game, StartTime: time.Now()}
	for _, c := range commands {
		if err := e.Execute(c); err != nil {
			return record, fmt.Errorf("%s game %d: %w", mapName, j.game, err)
		}
	}
	record.EndTime = time.Now()
	record.Duration = record.EndTime.Sub(record.StartTime)
	record.Rounds = e.Round()
	record.Winner = Draw
	if w := e.Winner(); w != nil {
		record.Winner = w.Name
		record.Strategy = w.Strategy().Name()
	}
	if standings := game.Standings(e.Players(), e.Map()); len(standings) > 0 {
		record.Leader = standings[0].Player.Name
		record.Score = standings[0].Score
	}

	log.Info().Msgf("completed %s game %d with winner: %s", mapName, j.game, record.Winner)
	return record, nil
}

// Write stores the configuration, the game records and the result table.
func (r Result) Write(w *metrics.Writer, config metrics.TournamentConfig) error {
	if err := w.WriteConfig(config); err != nil {
		return fmt.Errorf("failed to store tournament config: %w", err)
	}
	if err := w.WriteGameRecords(r.Records); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := w.WriteResults(r.Table, config.Games); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	log.Info().Msgf("stored tournament results in %s", w.Dir())
	return nil
}

// Format renders the result table for the terminal.
func (r Result) Format(games int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s", "")
	for g := 1; g <= games; g++ {
		fmt.Fprintf(&b, "%-14s", fmt.Sprintf("Game %d", g))
	}
	b.WriteString("\n")
	for _, row := range r.Table {
		fmt.Fprintf(&b, "%-16s", row[0])
		for _, cell := range row[1:] {
			fmt.Fprintf(&b, "%-14s", cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}
