package game

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInsufficientArmies = errors.New("not enough armies in the reinforcement pool")

// Strategy decides which orders a player issues each turn.
type Strategy interface {
	Name() string
	IssueOrders(p *Player, deck *Deck)
	ToDefend(p *Player) []*Territory
	ToAttack(p *Player) []*Territory
}

// Player owns a hand of cards, a reinforcement pool and an orders queue.
// Territories are indexed here but owned through Territory.SetOwner.
type Player struct {
	ID   int
	Name string

	// Reinforcements is the authoritative pool, only reduced by executed Deploy orders.
	Reinforcements int
	// available is the working pool reserved by issued Deploy orders.
	available int

	hand        []Card
	orders      *OrdersList
	territories map[int]*Territory
	conquered   bool
	cheated     bool
	strategy    Strategy
	events      *Dispatcher
}

func NewPlayer(id int, name string, strategy Strategy) *Player {
	return &Player{
		ID:          id,
		Name:        name,
		orders:      NewOrdersList(),
		territories: make(map[int]*Territory),
		strategy:    strategy,
	}
}

func (p *Player) String() string { return p.Name }

func (p *Player) Strategy() Strategy { return p.strategy }

// SetStrategy replaces the decision policy, e.g. when a neutral player is attacked.
func (p *Player) SetStrategy(s Strategy) { p.strategy = s }

// SetDispatcher routes the player's issuance events.
func (p *Player) SetDispatcher(d *Dispatcher) { p.events = d }

func (p *Player) Orders() *OrdersList { return p.orders }

// Territories returns the owned territories ordered by ID.
func (p *Player) Territories() []*Territory {
	owned := make([]*Territory, 0, len(p.territories))
	for _, t := range p.territories {
		owned = append(owned, t)
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	return owned
}

func (p *Player) TerritoryCount() int { return len(p.territories) }

func (p *Player) Owns(t *Territory) bool {
	return t != nil && t.owner == p
}

// Borders returns every territory not owned by p that one of p's territories
// has an edge to, ordered by ID.
func (p *Player) Borders() []*Territory {
	seen := make(map[int]bool)
	var borders []*Territory
	for _, t := range p.Territories() {
		for _, n := range t.neighbors {
			if n.owner != p && !seen[n.ID] {
				seen[n.ID] = true
				borders = append(borders, n)
			}
		}
	}
	sort.Slice(borders, func(i, j int) bool { return borders[i].ID < borders[j].ID })
	return borders
}

// Hand returns a copy of the player's cards.
func (p *Player) Hand() []Card {
	hand := make([]Card, len(p.hand))
	copy(hand, p.hand)
	return hand
}

func (p *Player) AddCard(c Card) {
	p.hand = append(p.hand, c)
}

func (p *Player) HasCard(c Card) bool {
	for _, h := range p.hand {
		if h == c {
			return true
		}
	}
	return false
}

// RemoveCard takes one card of the given kind out of the hand.
func (p *Player) RemoveCard(c Card) error {
	for i, h := range p.hand {
		if h == c {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s has no %s card: %w", p.Name, c, ErrCardNotInHand)
}

// Available is the part of the pool not yet reserved by issued Deploy orders.
func (p *Player) Available() int { return p.available }

// Conquered reports whether the player has earned its conquest card this turn.
func (p *Player) Conquered() bool { return p.conquered }

func (p *Player) Cheated() bool { return p.cheated }

func (p *Player) SetCheated(v bool) { p.cheated = v }

// StartTurn resets the per-turn flags at the reinforcement phase.
func (p *Player) StartTurn() {
	p.conquered = false
	p.cheated = false
}

// IssueOrders asks the strategy to fill the orders queue for this turn.
func (p *Player) IssueOrders(deck *Deck) {
	p.available = p.Reinforcements
	if p.strategy == nil {
		return
	}
	p.strategy.IssueOrders(p, deck)
}

func (p *Player) ToDefend() []*Territory {
	if p.strategy == nil {
		return nil
	}
	return p.strategy.ToDefend(p)
}

func (p *Player) ToAttack() []*Territory {
	if p.strategy == nil {
		return nil
	}
	return p.strategy.ToAttack(p)
}

// IssueOrder queues an order. Deploy orders reserve armies from the working
// pool and card orders consume a matching card from the hand.
func (p *Player) IssueOrder(o Order) error {
	if d, ok := o.(*Deploy); ok {
		if d.Armies > p.available {
			return fmt.Errorf("%s cannot deploy %d with %d available: %w", p.Name, d.Armies, p.available, ErrInsufficientArmies)
		}
		p.available -= d.Armies
	}
	if c, ok := o.Card(); ok {
		if err := p.RemoveCard(c); err != nil {
			return err
		}
	}
	p.orders.Add(o)
	p.events.Emit(Event{
		Kind:    OrderIssuedEvent,
		Player:  p.Name,
		Order:   o.Kind(),
		Message: fmt.Sprintf("%s issued %s", p.Name, o),
	})
	return nil
}

// PlayReinforcement plays a Reinforcement card: the pool grows at once and the
// card goes back to the deck.
func (p *Player) PlayReinforcement(deck *Deck) error {
	if err := p.RemoveCard(ReinforcementCard); err != nil {
		return err
	}
	p.Reinforcements += ReinforcementCardArmies
	p.available += ReinforcementCardArmies
	if deck != nil {
		deck.Return(ReinforcementCard)
	}
	p.events.Emit(Event{
		Kind:    CardPlayedEvent,
		Player:  p.Name,
		Message: fmt.Sprintf("%s played reinforcement for %d armies", p.Name, ReinforcementCardArmies),
	})
	return nil
}

// cancel undoes what IssueOrder took for an order that never executed.
func (p *Player) cancel(o Order) {
	if d, ok := o.(*Deploy); ok {
		p.available += d.Armies
	}
	if c, ok := o.Card(); ok {
		p.AddCard(c)
	}
}
