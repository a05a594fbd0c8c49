package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

type truce struct {
	low, high *Player
}

func newTruce(a, b *Player) truce {
	if a.ID > b.ID {
		a, b = b, a
	}
	return truce{low: a, high: b}
}

// Turn is the context shared by every order executed during a round: the
// truces negotiated this round, the battle odds and the random source.
type Turn struct {
	Round   int
	Rules   Rules
	Deck    *Deck
	Neutral *Player

	rng     *rand.Rand
	events  *Dispatcher
	players []*Player
	truces  map[truce]struct{}
}

func NewTurn(rng *rand.Rand, rules Rules, deck *Deck, neutral *Player, events *Dispatcher, players []*Player) *Turn {
	return &Turn{
		Rules:   rules,
		Deck:    deck,
		Neutral: neutral,
		rng:     rng,
		events:  events,
		players: players,
		truces:  make(map[truce]struct{}),
	}
}

// NextRound starts a new round and drops every truce from the previous one.
func (t *Turn) NextRound() {
	t.Round++
	t.events.SetRound(t.Round)
	clear(t.truces)
}

// SetPlayers replaces the roster that Negotiate targets are checked against.
func (t *Turn) SetPlayers(players []*Player) {
	t.players = players
}

func (t *Turn) HasPlayer(p *Player) bool {
	for _, q := range t.players {
		if q == p {
			return true
		}
	}
	return false
}

// Negotiated reports whether a and b hold a truce this round.
func (t *Turn) Negotiated(a, b *Player) bool {
	if a == nil || b == nil {
		return false
	}
	_, ok := t.truces[newTruce(a, b)]
	return ok
}

func (t *Turn) negotiate(a, b *Player) {
	t.truces[newTruce(a, b)] = struct{}{}
}

func (t *Turn) Rand() *rand.Rand { return t.rng }

func (t *Turn) Emit(e Event) { t.events.Emit(e) }

// conquer hands target to p with the given garrison. The first conquest of a
// turn earns a freshly minted card.
func (t *Turn) conquer(p *Player, target *Territory, armies int) {
	previous := target.owner
	target.SetOwner(p)
	target.SetArmies(armies)

	from := "no one"
	if previous != nil {
		from = previous.Name
	}
	t.Emit(Event{
		Kind:    ConquestEvent,
		Player:  p.Name,
		Message: fmt.Sprintf("%s took %s from %s with %d armies", p.Name, target.Name, from, armies),
	})

	if !p.conquered {
		p.conquered = true
		p.AddCard(RandomCard(t.rng))
	}
}
