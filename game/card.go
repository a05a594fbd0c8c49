package game

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

var (
	ErrEmptyDeck     = errors.New("deck is empty")
	ErrCardNotInHand = errors.New("card not in hand")
)

type Card int

const (
	BombCard Card = iota
	ReinforcementCard
	BlockadeCard
	AirliftCard
	DiplomacyCard
)

// NumCardKinds is the number of distinct card kinds.
const NumCardKinds = 5

// ReinforcementCardArmies is added to the pool when a Reinforcement card is played.
const ReinforcementCardArmies = 5

var cardNames = []string{"bomb", "reinforcement", "blockade", "airlift", "diplomacy"}

func (c Card) String() string {
	if c < 0 || int(c) >= len(cardNames) {
		return "unknown"
	}
	return cardNames[c]
}

// ParseCard maps a card name to its kind.
func ParseCard(name string) (Card, error) {
	for i, n := range cardNames {
		if strings.EqualFold(n, name) {
			return Card(i), nil
		}
	}
	return 0, fmt.Errorf("unknown card %q", name)
}

// RandomCard mints a card of a uniformly random kind, outside of any deck.
func RandomCard(rng *rand.Rand) Card {
	return Card(rng.Intn(NumCardKinds))
}

// Deck is a shuffled bag of cards.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a shuffled deck holding perKind cards of every kind.
func NewDeck(rng *rand.Rand, perKind int) *Deck {
	d := &Deck{rng: rng}
	for i := 0; i < perKind; i++ {
		for c := Card(0); c < NumCardKinds; c++ {
			d.cards = append(d.cards, c)
		}
	}
	d.shuffle()
	return d
}

func (d *Deck) Size() int { return len(d.cards) }

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return 0, ErrEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Return puts a card back and reshuffles the whole deck immediately.
func (d *Deck) Return(c Card) {
	d.cards = append(d.cards, c)
	d.shuffle()
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
