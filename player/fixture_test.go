package player

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"warzone/game"
)

// board is a chain A-B-C-D where p1 holds A (2) and B (6) and p2 holds
// C (3) and D (4).
type board struct {
	m      *game.Map
	t      map[string]*game.Territory
	p1, p2 *game.Player
	deck   *game.Deck
	turn   *game.Turn
}

func newBoard(t *testing.T, strategy game.Strategy) *board {
	t.Helper()
	b := &board{m: game.NewMap("chain"), t: make(map[string]*game.Territory)}
	for _, name := range []string{"A", "B", "C", "D"} {
		territory, err := b.m.AddTerritory(name, 0, 0)
		require.NoError(t, err)
		b.t[name] = territory
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, b.m.AddBorder(i, i+1))
	}

	b.p1 = game.NewPlayer(1, "alice", strategy)
	b.p2 = game.NewPlayer(2, "bob", Aggressive{})
	for name, armies := range map[string]int{"A": 2, "B": 6} {
		b.t[name].SetOwner(b.p1)
		b.t[name].SetArmies(armies)
	}
	for name, armies := range map[string]int{"C": 3, "D": 4} {
		b.t[name].SetOwner(b.p2)
		b.t[name].SetArmies(armies)
	}

	rng := rand.New(rand.NewSource(1))
	b.deck = game.NewDeck(rng, 1)
	b.turn = game.NewTurn(rng, game.NewStandardRules(), b.deck, game.NewPlayer(-1, "Neutral", Neutral{}), nil, []*game.Player{b.p1, b.p2})
	return b
}

// scripted feeds canned lines to a Human and records what it was told.
type scripted struct {
	lines []string
	said  []string
}

func (s *scripted) Prompt(string) (string, bool) {
	if len(s.lines) == 0 {
		return "", false
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, true
}

func (s *scripted) Say(format string, args ...any) {
	s.said = append(s.said, fmt.Sprintf(format, args...))
}
