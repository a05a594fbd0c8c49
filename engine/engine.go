package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"warzone/game"
	"warzone/player"
)

const (
	MinPlayers = 2
	MaxPlayers = 6

	DefaultMaxTurns      = 300
	DefaultInitialArmies = 50
	DefaultCardsPerKind  = 10
)

var (
	ErrInvalidCommand = errors.New("invalid command")
	ErrPlayerCount    = errors.New("a game needs 2 to 6 players")
	ErrGameOver       = errors.New("game is over")
)

// MapLoader resolves a map name or path to a map.
type MapLoader interface {
	Load(name string) (*game.Map, error)
}

// CommandSource yields command lines until the input is exhausted.
type CommandSource interface {
	Next() (string, bool)
}

// Option configures an Engine.
type Option func(e *Engine)

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithInitialArmies sets the pool granted once at game start.
func WithInitialArmies(armies int) Option {
	return func(e *Engine) {
		if armies >= 0 {
			e.initialArmies = armies
		}
	}
}

// WithInitialCards deals that many cards to every player at game start.
func WithInitialCards(cards int) Option {
	return func(e *Engine) {
		if cards >= 0 {
			e.initialCards = cards
		}
	}
}

func WithDeckCardsPerKind(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.cardsPerKind = n
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

func WithReinforcementPolicy(policy game.ReinforcementPolicy) Option {
	return func(e *Engine) {
		if policy != nil {
			e.policy = policy
		}
	}
}

// WithSeed fixes the random source. Zero keeps the time-based seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithPrompter enables human players, who read their orders from p.
func WithPrompter(p player.Prompter) Option {
	return func(e *Engine) {
		e.prompter = p
	}
}

// WithSinks attaches event sinks to the engine's dispatcher.
func WithSinks(sinks ...game.Sink) Option {
	return func(e *Engine) {
		for _, s := range sinks {
			e.events.Attach(s)
		}
	}
}

// Engine drives a game through its phases. Every state change goes through
// the transition table, whether the command came from the user or from the
// main loop.
type Engine struct {
	maps   MapLoader
	events *game.Dispatcher
	rng    *rand.Rand

	maxTurns      int
	initialArmies int
	initialCards  int
	cardsPerKind  int
	rules         game.Rules
	policy        game.ReinforcementPolicy
	prompter      player.Prompter

	state   State
	m       *game.Map
	players []*game.Player
	neutral *game.Player
	deck    *game.Deck
	turn    *game.Turn
	nextID  int
	winner  *game.Player
	saved   []Command
}

func New(maps MapLoader, options ...Option) *Engine {
	e := &Engine{ // Default values
		maps:          maps,
		events:        game.NewDispatcher(),
		rng:           rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		maxTurns:      DefaultMaxTurns,
		initialArmies: DefaultInitialArmies,
		cardsPerKind:  DefaultCardsPerKind,
		rules:         game.NewStandardRules(),
		policy:        game.StandardReinforcement{},
		state:         Start,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) State() State { return e.state }

func (e *Engine) Map() *game.Map { return e.m }

// Players returns the players still in the rotation, in play order.
func (e *Engine) Players() []*game.Player {
	players := make([]*game.Player, len(e.players))
	copy(players, e.players)
	return players
}

// Winner is nil until a player owns the whole map. A game that reached the
// turn limit ends in WIN with no winner.
func (e *Engine) Winner() *game.Player { return e.winner }

// Round is the number of rounds started so far.
func (e *Engine) Round() int {
	if e.turn == nil {
		return 0
	}
	return e.turn.Round
}

// Saved returns every accepted command with its effect.
func (e *Engine) Saved() []Command {
	saved := make([]Command, len(e.saved))
	copy(saved, e.saved)
	return saved
}

func (e *Engine) Done() bool { return e.state == Terminated }

// Run executes commands from src until the end command or the end of input.
// Rejected commands are logged and do not stop the loop.
func (e *Engine) Run(src CommandSource) {
	for !e.Done() {
		line, ok := src.Next()
		if !ok {
			log.Info().Msg("no more commands")
			return
		}
		if err := e.Execute(line); err != nil {
			log.Warn().Err(err).Msgf("rejected %q", line)
		}
	}
}

// Execute applies one command line. A rejected command leaves the state
// unchanged and the error names the commands the state accepts.
func (e *Engine) Execute(line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return err
	}
	if e.state == Terminated {
		return ErrGameOver
	}
	next, ok := e.state.Next(cmd.Name)
	if !ok {
		return fmt.Errorf("%q in state %s, valid commands: %s: %w", cmd.Name, e.state, e.state.validList(), ErrInvalidCommand)
	}

	switch cmd.Name {
	case CmdLoadMap:
		err = e.loadMap(&cmd)
	case CmdValidateMap:
		err = e.validateMap(&cmd)
	case CmdAddPlayer:
		err = e.addPlayer(&cmd)
	case CmdGameStart:
		return e.gameStart(&cmd)
	case CmdPlay:
		e.reset()
		cmd.Effect = "new game"
	case CmdEnd:
		cmd.Effect = "game ended"
	default:
		// In-game commands are issued by the main loop only.
		return fmt.Errorf("%q is driven by the game loop, valid commands: %s: %w", cmd.Name, e.state.validList(), ErrInvalidCommand)
	}
	if err != nil {
		return err
	}
	e.accept(cmd, next)
	return nil
}

// step moves the main loop through the transition table.
func (e *Engine) step(name, effect string) error {
	next, ok := e.state.Next(name)
	if !ok {
		return fmt.Errorf("%q in state %s: %w", name, e.state, ErrInvalidCommand)
	}
	e.accept(Command{Name: name, Effect: effect}, next)
	return nil
}

func (e *Engine) accept(cmd Command, next State) {
	e.saved = append(e.saved, cmd)
	e.events.Emit(game.Event{
		Kind:    game.CommandSavedEvent,
		Message: fmt.Sprintf("command %q saved: %s", cmd, cmd.Effect),
	})
	if next == e.state {
		return
	}
	previous := e.state
	e.state = next
	e.events.Emit(game.Event{
		Kind:    game.PhaseChangedEvent,
		State:   next.String(),
		Message: fmt.Sprintf("%s -> %s", previous, next),
	})
}

func (e *Engine) loadMap(cmd *Command) error {
	if len(cmd.Args) == 0 {
		return fmt.Errorf("usage: loadmap <name|path>: %w", ErrInvalidCommand)
	}
	m, err := e.maps.Load(cmd.arg())
	if err != nil {
		return err
	}
	e.m = m
	cmd.Effect = fmt.Sprintf("loaded map %s with %d territories", m.Name, len(m.Territories))
	log.Info().Msg(cmd.Effect)
	return nil
}

func (e *Engine) validateMap(cmd *Command) error {
	if err := e.m.Validate().Err(); err != nil {
		return err
	}
	cmd.Effect = fmt.Sprintf("map %s is valid", e.m.Name)
	return nil
}

func (e *Engine) addPlayer(cmd *Command) error {
	if len(cmd.Args) == 0 || len(cmd.Args) > 2 {
		return fmt.Errorf("usage: addplayer <name> [strategy]: %w", ErrInvalidCommand)
	}
	if len(e.players) >= MaxPlayers {
		return fmt.Errorf("cannot add %s: %w", cmd.Args[0], ErrPlayerCount)
	}
	name := cmd.Args[0]
	for _, p := range e.players {
		if p.Name == name {
			return fmt.Errorf("player %s already exists: %w", name, ErrInvalidCommand)
		}
	}

	strategyName := "human"
	if len(cmd.Args) == 2 {
		strategyName = cmd.Args[1]
	}
	strategy, err := e.strategy(strategyName)
	if err != nil {
		return err
	}

	e.nextID++
	p := game.NewPlayer(e.nextID, name, strategy)
	p.SetDispatcher(e.events)
	e.players = append(e.players, p)
	cmd.Effect = fmt.Sprintf("added %s playing %s", name, strategy.Name())
	return nil
}

func (e *Engine) strategy(name string) (game.Strategy, error) {
	if name != "human" {
		return player.ForName(name)
	}
	if e.prompter == nil {
		return nil, fmt.Errorf("human players need a console: %w", ErrInvalidCommand)
	}
	return &player.Human{IO: e.prompter, Map: e.m, Players: e.Players}, nil
}

// reset discards the map and the players for a new game.
func (e *Engine) reset() {
	e.m = nil
	e.players = nil
	e.neutral = nil
	e.deck = nil
	e.turn = nil
	e.nextID = 0
	e.winner = nil
	e.events.SetRound(0)
}
