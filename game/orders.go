package game

import (
	"errors"
	"fmt"
)

// OrderKind represents the type of order a player can issue.
type OrderKind int

const (
	DeployOrder OrderKind = iota
	AdvanceOrder
	BombOrder
	BlockadeOrder
	AirliftOrder
	NegotiateOrder
)

var orderNames = []string{"deploy", "advance", "bomb", "blockade", "airlift", "negotiate"}

func (k OrderKind) String() string {
	if k < 0 || int(k) >= len(orderNames) {
		return "unknown"
	}
	return orderNames[k]
}

// Order is a single queued game action. Validate has no side effects; Execute
// validates again and either applies the whole effect or none of it.
type Order interface {
	Kind() OrderKind
	Issuer() *Player
	// Card returns the card kind the order consumed, if any.
	Card() (Card, bool)
	Validate(t *Turn) error
	Execute(t *Turn)
	Executed() bool
	// Effect describes what execution did, or why it was rejected.
	Effect() string
	String() string
	Clone() Order
}

var (
	errNotOwner       = errors.New("territory not owned by the issuing player")
	errNoArmies       = errors.New("army count must be positive")
	errNotAdjacent    = errors.New("territories are not adjacent")
	errTooFewArmies   = errors.New("not enough armies in the source territory")
	errTruce          = errors.New("players are under a truce this turn")
	errOwnTerritory   = errors.New("target is owned by the issuing player")
	errUnowned        = errors.New("target has no owner")
	errNotBordering   = errors.New("target does not border the issuing player")
	errUnknownPlayer  = errors.New("target player is not in the game")
	errSelfNegotiate  = errors.New("cannot negotiate with oneself")
	errPoolExhausted  = errors.New("not enough armies in the reinforcement pool")
	errMissingTargets = errors.New("order is missing a target")
)

type order struct {
	issuer   *Player
	executed bool
	effect   string
}

func (o *order) Issuer() *Player { return o.issuer }
func (o *order) Executed() bool  { return o.executed }
func (o *order) Effect() string  { return o.effect }

// run is the execution skeleton shared by every variant. A rejected order
// refunds its card; a successful card order sends the card back to the deck.
// Observers are notified once either way.
func run(t *Turn, o Order, base *order, apply func() string) {
	if err := o.Validate(t); err != nil {
		base.effect = fmt.Sprintf("%s rejected: %v", o, err)
		if c, ok := o.Card(); ok {
			base.issuer.AddCard(c)
		}
	} else {
		base.effect = apply()
		base.executed = true
		if c, ok := o.Card(); ok && t.Deck != nil {
			t.Deck.Return(c)
		}
	}
	t.Emit(Event{
		Kind:    OrderExecutedEvent,
		Player:  base.issuer.Name,
		Order:   o.Kind(),
		OK:      base.executed,
		Message: base.effect,
	})
}

// Deploy moves armies from the reinforcement pool onto an owned territory.
type Deploy struct {
	order
	Target *Territory
	Armies int
}

func NewDeploy(p *Player, target *Territory, armies int) *Deploy {
	return &Deploy{order: order{issuer: p}, Target: target, Armies: armies}
}

func (d *Deploy) Kind() OrderKind    { return DeployOrder }
func (d *Deploy) Card() (Card, bool) { return 0, false }

func (d *Deploy) String() string {
	return fmt.Sprintf("deploy %d armies to %s", d.Armies, d.Target)
}

func (d *Deploy) Validate(*Turn) error {
	switch {
	case d.Target == nil:
		return errMissingTargets
	case !d.issuer.Owns(d.Target):
		return errNotOwner
	case d.Armies <= 0:
		return errNoArmies
	case d.Armies > d.issuer.Reinforcements:
		return errPoolExhausted
	}
	return nil
}

func (d *Deploy) Execute(t *Turn) {
	run(t, d, &d.order, func() string {
		d.issuer.Reinforcements -= d.Armies
		d.Target.AddArmies(d.Armies)
		return fmt.Sprintf("%s deployed %d armies to %s (now %d)", d.issuer, d.Armies, d.Target, d.Target.armies)
	})
}

func (d *Deploy) Clone() Order {
	c := *d
	return &c
}

// Advance moves armies to an adjacent territory, attacking it if an enemy holds it.
type Advance struct {
	order
	Source *Territory
	Target *Territory
	Armies int
}

func NewAdvance(p *Player, source, target *Territory, armies int) *Advance {
	return &Advance{order: order{issuer: p}, Source: source, Target: target, Armies: armies}
}

func (a *Advance) Kind() OrderKind    { return AdvanceOrder }
func (a *Advance) Card() (Card, bool) { return 0, false }

func (a *Advance) String() string {
	return fmt.Sprintf("advance %d armies from %s to %s", a.Armies, a.Source, a.Target)
}

func (a *Advance) Validate(t *Turn) error {
	switch {
	case a.Source == nil || a.Target == nil:
		return errMissingTargets
	case !a.issuer.Owns(a.Source):
		return errNotOwner
	case !a.Source.IsAdjacent(a.Target):
		return errNotAdjacent
	case a.Armies <= 0:
		return errNoArmies
	case a.Source.armies < a.Armies:
		return errTooFewArmies
	}
	enemy := a.Target.owner
	if enemy != nil && enemy != a.issuer && t.Negotiated(a.issuer, enemy) {
		return errTruce
	}
	return nil
}

func (a *Advance) Execute(t *Turn) {
	run(t, a, &a.order, func() string {
		p := a.issuer
		a.Source.RemoveArmies(a.Armies)

		switch a.Target.owner {
		case p:
			a.Target.AddArmies(a.Armies)
			return fmt.Sprintf("%s moved %d armies from %s to %s", p, a.Armies, a.Source, a.Target)
		case nil:
			t.conquer(p, a.Target, a.Armies)
			return fmt.Sprintf("%s claimed %s with %d armies", p, a.Target, a.Armies)
		}

		defender := a.Target.owner
		attackersLeft, defendersLeft := t.Rules.Battle(t.rng, a.Armies, a.Target.armies)
		if defendersLeft == 0 && attackersLeft > 0 {
			t.conquer(p, a.Target, attackersLeft)
			return fmt.Sprintf("%s captured %s from %s, %d of %d attackers survived", p, a.Target, defender, attackersLeft, a.Armies)
		}
		a.Target.SetArmies(defendersLeft)
		return fmt.Sprintf("%s repelled %s at %s, %d defenders left", defender, p, a.Target, defendersLeft)
	})
}

func (a *Advance) Clone() Order {
	c := *a
	return &c
}

// Bomb halves the armies of an enemy territory bordering the issuer.
type Bomb struct {
	order
	Target *Territory
}

func NewBomb(p *Player, target *Territory) *Bomb {
	return &Bomb{order: order{issuer: p}, Target: target}
}

func (b *Bomb) Kind() OrderKind    { return BombOrder }
func (b *Bomb) Card() (Card, bool) { return BombCard, true }

func (b *Bomb) String() string {
	return fmt.Sprintf("bomb %s", b.Target)
}

func (b *Bomb) Validate(*Turn) error {
	switch {
	case b.Target == nil:
		return errMissingTargets
	case b.Target.owner == nil:
		return errUnowned
	case b.Target.owner == b.issuer:
		return errOwnTerritory
	}
	for _, t := range b.issuer.territories {
		if t.IsAdjacent(b.Target) {
			return nil
		}
	}
	return errNotBordering
}

func (b *Bomb) Execute(t *Turn) {
	run(t, b, &b.order, func() string {
		before := b.Target.armies
		b.Target.SetArmies(before / 2)
		return fmt.Sprintf("%s bombed %s from %d to %d armies", b.issuer, b.Target, before, b.Target.armies)
	})
}

func (b *Bomb) Clone() Order {
	c := *b
	return &c
}

// Blockade doubles an owned territory's armies and hands it to the neutral player.
type Blockade struct {
	order
	Target *Territory
}

func NewBlockade(p *Player, target *Territory) *Blockade {
	return &Blockade{order: order{issuer: p}, Target: target}
}

func (b *Blockade) Kind() OrderKind    { return BlockadeOrder }
func (b *Blockade) Card() (Card, bool) { return BlockadeCard, true }

func (b *Blockade) String() string {
	return fmt.Sprintf("blockade %s", b.Target)
}

func (b *Blockade) Validate(*Turn) error {
	switch {
	case b.Target == nil:
		return errMissingTargets
	case !b.issuer.Owns(b.Target):
		return errNotOwner
	}
	return nil
}

func (b *Blockade) Execute(t *Turn) {
	run(t, b, &b.order, func() string {
		b.Target.SetArmies(b.Target.armies * 2)
		b.Target.SetOwner(t.Neutral)
		return fmt.Sprintf("%s blockaded %s, now neutral with %d armies", b.issuer, b.Target, b.Target.armies)
	})
}

func (b *Blockade) Clone() Order {
	c := *b
	return &c
}

// Airlift moves armies between any two owned territories.
type Airlift struct {
	order
	Source *Territory
	Target *Territory
	Armies int
}

func NewAirlift(p *Player, source, target *Territory, armies int) *Airlift {
	return &Airlift{order: order{issuer: p}, Source: source, Target: target, Armies: armies}
}

func (a *Airlift) Kind() OrderKind    { return AirliftOrder }
func (a *Airlift) Card() (Card, bool) { return AirliftCard, true }

func (a *Airlift) String() string {
	return fmt.Sprintf("airlift %d armies from %s to %s", a.Armies, a.Source, a.Target)
}

func (a *Airlift) Validate(*Turn) error {
	switch {
	case a.Source == nil || a.Target == nil:
		return errMissingTargets
	case !a.issuer.Owns(a.Source) || !a.issuer.Owns(a.Target):
		return errNotOwner
	case a.Armies <= 0:
		return errNoArmies
	case a.Source.armies < a.Armies:
		return errTooFewArmies
	}
	return nil
}

func (a *Airlift) Execute(t *Turn) {
	run(t, a, &a.order, func() string {
		a.Source.RemoveArmies(a.Armies)
		a.Target.AddArmies(a.Armies)
		return fmt.Sprintf("%s airlifted %d armies from %s to %s", a.issuer, a.Armies, a.Source, a.Target)
	})
}

func (a *Airlift) Clone() Order {
	c := *a
	return &c
}

// Negotiate prevents the issuer and the target from attacking each other for
// the rest of the round.
type Negotiate struct {
	order
	Target *Player
}

func NewNegotiate(p *Player, target *Player) *Negotiate {
	return &Negotiate{order: order{issuer: p}, Target: target}
}

func (n *Negotiate) Kind() OrderKind    { return NegotiateOrder }
func (n *Negotiate) Card() (Card, bool) { return DiplomacyCard, true }

func (n *Negotiate) String() string {
	return fmt.Sprintf("negotiate with %s", n.Target)
}

func (n *Negotiate) Validate(t *Turn) error {
	switch {
	case n.Target == nil:
		return errMissingTargets
	case n.Target == n.issuer:
		return errSelfNegotiate
	case !t.HasPlayer(n.Target):
		return errUnknownPlayer
	}
	return nil
}

func (n *Negotiate) Execute(t *Turn) {
	run(t, n, &n.order, func() string {
		t.negotiate(n.issuer, n.Target)
		return fmt.Sprintf("%s and %s agreed to a truce", n.issuer, n.Target)
	})
}

func (n *Negotiate) Clone() Order {
	c := *n
	return &c
}
