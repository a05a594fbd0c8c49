package player

import "warzone/game"

// Neutral issues nothing. Blockaded territories belong to a Neutral player.
type Neutral struct{}

func (Neutral) Name() string { return "neutral" }

func (Neutral) IssueOrders(*game.Player, *game.Deck) {}

func (Neutral) ToDefend(p *game.Player) []*game.Territory { return p.Territories() }

func (Neutral) ToAttack(*game.Player) []*game.Territory { return nil }
