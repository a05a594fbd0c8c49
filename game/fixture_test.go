package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// diamond is a four territory chain T1-T2-T3-T4 where p1 holds T1 (3) and
// T2 (5) and p2 holds T3 (3) and T4 (5).
type diamond struct {
	m       *Map
	t       []*Territory
	p1, p2  *Player
	neutral *Player
	deck    *Deck
	turn    *Turn
	events  []Event
}

func newDiamond(t *testing.T, seed uint64) *diamond {
	t.Helper()
	d := &diamond{m: NewMap("diamond")}
	for _, name := range []string{"T1", "T2", "T3", "T4"} {
		territory, err := d.m.AddTerritory(name, 0, 0)
		require.NoError(t, err)
		d.t = append(d.t, territory)
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, d.m.AddBorder(i, i+1))
	}
	west := d.m.AddContinent("West", 2)
	east := d.m.AddContinent("East", 3)
	require.NoError(t, d.m.Assign(0, west.ID))
	require.NoError(t, d.m.Assign(1, west.ID))
	require.NoError(t, d.m.Assign(2, east.ID))
	require.NoError(t, d.m.Assign(3, east.ID))

	d.p1 = NewPlayer(1, "alice", nil)
	d.p2 = NewPlayer(2, "bob", nil)
	d.neutral = NewPlayer(-1, "Neutral", nil)

	d.t[0].SetOwner(d.p1)
	d.t[0].SetArmies(3)
	d.t[1].SetOwner(d.p1)
	d.t[1].SetArmies(5)
	d.t[2].SetOwner(d.p2)
	d.t[2].SetArmies(3)
	d.t[3].SetOwner(d.p2)
	d.t[3].SetArmies(5)

	rng := rand.New(rand.NewSource(seed))
	events := NewDispatcher(SinkFunc(func(e Event) { d.events = append(d.events, e) }))
	d.deck = NewDeck(rng, 2)
	d.turn = NewTurn(rng, NewStandardRules(), d.deck, d.neutral, events, []*Player{d.p1, d.p2})
	d.p1.SetDispatcher(events)
	d.p2.SetDispatcher(events)
	return d
}

func (d *diamond) executed() []Event {
	var executed []Event
	for _, e := range d.events {
		if e.Kind == OrderExecutedEvent {
			executed = append(executed, e)
		}
	}
	return executed
}
