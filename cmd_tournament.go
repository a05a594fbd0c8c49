package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"warzone/engine"
	"warzone/experiments"
	"warzone/experiments/metrics"
)

var tournamentCmd = &cobra.Command{
	Use:     "tournament",
	Short:   "Play computer strategies against each other on several maps",
	Example: `  warzone tournament -M switzerland,maps/diamond.yaml -P aggressive,benevolent,cheater -G 3 -D 30`,
	Args:    cobra.NoArgs,
	RunE:    runTournament,
}

func init() {
	flags := tournamentCmd.Flags()
	flags.StringSliceP("maps", "M", nil, "Maps to play, 1 to 5")
	flags.StringSliceP("strategies", "P", nil, "Computer strategies, 2 to 4")
	flags.IntP("games", "G", 1, "Games per map, 1 to 5")
	flags.IntP("turns", "D", 30, "Rounds before a game is a draw, 10 to 50")
	flags.Int("workers", experiments.DefaultWorkers, "Games played at once")
	flags.String("out", "experiments", "Directory for the CSV results")
	rootCmd.AddCommand(tournamentCmd)
}

func runTournament(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	maps, _ := flags.GetStringSlice("maps")
	strategies, _ := flags.GetStringSlice("strategies")
	games, _ := flags.GetInt("games")
	turns, _ := flags.GetInt("turns")
	workers, _ := flags.GetInt("workers")
	out, _ := flags.GetString("out")

	config := metrics.TournamentConfig{Maps: maps, Strategies: strategies, Games: games, MaxTurns: turns}
	if err := experiments.Validate(config); err != nil {
		return err
	}

	sinks, closeLog, err := openSinks()
	if err != nil {
		return err
	}
	defer closeLog()

	tournament := experiments.Tournament{
		Config:  config,
		Loader:  newLoader(),
		Options: append(cfg.EngineOptions(), engine.WithSinks(sinks...)),
		Seed:    cfg.Seed,
		Workers: workers,
	}
	result, err := tournament.Run()
	if err != nil {
		return err
	}

	fmt.Printf("M: %v\nP: %v\nG: %d\nD: %d\n\n", maps, strategies, games, turns)
	fmt.Print(result.Format(games))

	writer, err := metrics.NewWriter(out, "tournament")
	if err != nil {
		return err
	}
	return result.Write(writer, config)
}
