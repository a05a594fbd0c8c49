// Package config loads game settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"warzone/engine"
	"warzone/game"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	StandardReinforcement = "standard"
	FlatReinforcement     = "flat"
)

type Config struct {
	MaxTurns          int     `yaml:"max_turns"`
	InitialArmies     int     `yaml:"initial_armies"`
	InitialCards      int     `yaml:"initial_cards"`
	DeckCardsPerKind  int     `yaml:"deck_cards_per_kind"`
	Seed              uint64  `yaml:"seed"` // Zero seeds from the clock
	Reinforcement     string  `yaml:"reinforcement"`
	FlatReinforcement int     `yaml:"flat_reinforcement"`
	AttackKillChance  float64 `yaml:"attack_kill_chance"`
	DefendKillChance  float64 `yaml:"defend_kill_chance"`
	MapDir            string  `yaml:"map_dir"`
	GameLog           string  `yaml:"game_log"`
	LogLevel          string  `yaml:"log_level"`
	MetricsAddr       string  `yaml:"metrics_addr"` // Empty disables the metrics endpoint
}

func Default() Config {
	rules := game.NewStandardRules()
	return Config{
		MaxTurns:          engine.DefaultMaxTurns,
		InitialArmies:     engine.DefaultInitialArmies,
		DeckCardsPerKind:  engine.DefaultCardsPerKind,
		Reinforcement:     StandardReinforcement,
		FlatReinforcement: 50,
		AttackKillChance:  rules.AttackKillChance,
		DefendKillChance:  rules.DefendKillChance,
		MapDir:            "maps",
		GameLog:           "gamelog.txt",
		LogLevel:          "info",
	}
}

// Load reads the file at path over the defaults. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes YAML over the defaults, rejecting unknown keys.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []string
	if c.MaxTurns <= 0 {
		problems = append(problems, "max_turns must be positive")
	}
	if c.InitialArmies < 0 || c.InitialCards < 0 || c.DeckCardsPerKind < 0 {
		problems = append(problems, "armies and card counts cannot be negative")
	}
	if c.Reinforcement != StandardReinforcement && c.Reinforcement != FlatReinforcement {
		problems = append(problems, fmt.Sprintf("reinforcement %q is neither standard nor flat", c.Reinforcement))
	}
	if c.AttackKillChance < 0 || c.AttackKillChance > 1 || c.DefendKillChance < 0 || c.DefendKillChance > 1 {
		problems = append(problems, "kill chances must be between 0 and 1")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c Config) Rules() game.Rules {
	return game.Rules{AttackKillChance: c.AttackKillChance, DefendKillChance: c.DefendKillChance}
}

func (c Config) Policy() game.ReinforcementPolicy {
	if c.Reinforcement == FlatReinforcement {
		return game.FlatReinforcement{Armies: c.FlatReinforcement}
	}
	return game.StandardReinforcement{}
}

// EngineOptions translates the game settings into engine options.
func (c Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithMaxTurns(c.MaxTurns),
		engine.WithInitialArmies(c.InitialArmies),
		engine.WithInitialCards(c.InitialCards),
		engine.WithDeckCardsPerKind(c.DeckCardsPerKind),
		engine.WithSeed(c.Seed),
		engine.WithRules(c.Rules()),
		engine.WithReinforcementPolicy(c.Policy()),
	}
}
