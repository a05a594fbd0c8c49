package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"warzone/config"
	"warzone/experiments/metrics"
	"warzone/game"
	"warzone/gamelog"
	"warzone/maploader"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:               "warzone",
	Short:             "Warzone is a turn-based territory conquest game",
	Long:              `Warzone plays Risk-style games on territory maps, interactively or as tournaments between computer strategies.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	flags.Int("max-turns", 0, "Rounds before a game is a draw")
	flags.String("map-dir", "", "Directory searched for <name>.yaml maps")
	flags.String("game-log", "", "Game event log file, \"-\" disables it")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address")
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		loaded.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("seed") {
		loaded.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("max-turns") {
		loaded.MaxTurns, _ = flags.GetInt("max-turns")
	}
	if flags.Changed("map-dir") {
		loaded.MapDir, _ = flags.GetString("map-dir")
	}
	if flags.Changed("game-log") {
		loaded.GameLog, _ = flags.GetString("game-log")
	}
	if flags.Changed("metrics-addr") {
		loaded.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	return nil
}

func newLoader() *maploader.Loader {
	return maploader.New(cfg.MapDir)
}

// openSinks attaches the game log and the metrics endpoint as configured.
// The returned function closes the game log.
func openSinks() ([]game.Sink, func(), error) {
	var sinks []game.Sink
	closeLog := func() {}

	if cfg.GameLog != "" && cfg.GameLog != "-" {
		fileSink, err := gamelog.Open(cfg.GameLog)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, fileSink)
		closeLog = func() {
			if err := fileSink.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close game log")
			}
		}
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		promSink, err := metrics.NewPromSink(reg)
		if err != nil {
			closeLog()
			return nil, nil, err
		}
		sinks = append(sinks, promSink)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler(reg))
			log.Info().Msgf("serving metrics on %s/metrics", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}
	return sinks, closeLog, nil
}
