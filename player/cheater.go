package player

import "warzone/game"

// Cheater takes every territory it borders once per turn, without orders.
type Cheater struct{}

func (Cheater) Name() string { return "cheater" }

func (Cheater) IssueOrders(p *game.Player, _ *game.Deck) {
	if p.Cheated() {
		return
	}
	p.SetCheated(true)
	for _, t := range p.Borders() {
		t.SetOwner(p)
		t.SetArmies(1)
	}
}

func (Cheater) ToDefend(p *game.Player) []*game.Territory { return p.Territories() }

func (Cheater) ToAttack(p *game.Player) []*game.Territory { return p.Borders() }
