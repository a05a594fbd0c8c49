package player

import "warzone/game"

// Benevolent never attacks. It reinforces its weakest territories and buys
// peace with its strongest neighbor.
type Benevolent struct{}

func (Benevolent) Name() string { return "benevolent" }

func (b Benevolent) IssueOrders(p *game.Player, deck *game.Deck) {
	defend := b.ToDefend(p)
	if len(defend) == 0 {
		return
	}
	weakest, strongest := defend[0], defend[len(defend)-1]

	if p.HasCard(game.ReinforcementCard) {
		if err := p.PlayReinforcement(deck); err != nil {
			logRefused(p, "reinforcement card", err)
		}
	} else if p.HasCard(game.DiplomacyCard) {
		if enemy := threat(p); enemy != nil {
			issue(p, game.NewNegotiate(p, enemy))
		}
	}

	if pool := p.Available(); pool > 0 {
		issue(p, game.NewDeploy(p, weakest, pool))
	}

	if half := strongest.Armies() / 2; strongest != weakest && half > 0 && strongest.IsAdjacent(weakest) {
		issue(p, game.NewAdvance(p, strongest, weakest, half))
	}
}

// ToDefend orders owned territories from weakest to strongest.
func (Benevolent) ToDefend(p *game.Player) []*game.Territory {
	return byArmies(p.Territories(), false)
}

func (Benevolent) ToAttack(*game.Player) []*game.Territory { return nil }

// threat returns the owner of the strongest bordering territory held by a
// player that may attack.
func threat(p *game.Player) *game.Player {
	var strongest *game.Territory
	for _, t := range p.Borders() {
		if t.Owner() == nil || isPassive(t.Owner()) {
			continue
		}
		if strongest == nil || t.Armies() > strongest.Armies() {
			strongest = t
		}
	}
	if strongest == nil {
		return nil
	}
	return strongest.Owner()
}
