package player

import (
	"warzone/game"
	"warzone/utils"
)

// Aggressive piles every army onto its strongest territory and keeps
// attacking from there.
type Aggressive struct{}

func (Aggressive) Name() string { return "aggressive" }

func (a Aggressive) IssueOrders(p *game.Player, _ *game.Deck) {
	defend := a.ToDefend(p)
	if len(defend) == 0 {
		return
	}
	strongest := defend[0]
	armies := strongest.Armies()

	if pool := p.Available(); pool > 0 && issue(p, game.NewDeploy(p, strongest, pool)) {
		armies += pool
	}

	// Bomb when there is a target, otherwise fall back to an airlift.
	bombed := false
	if p.HasCard(game.BombCard) {
		if attack := a.ToAttack(p); len(attack) > 0 {
			bombed = issue(p, game.NewBomb(p, attack[0]))
		}
	}
	if !bombed && p.HasCard(game.AirliftCard) {
		weakest := defend[len(defend)-1]
		if weakest != strongest && weakest.Armies() > 0 &&
			issue(p, game.NewAirlift(p, weakest, strongest, weakest.Armies())) {
			armies += weakest.Armies()
		}
	}

	target := weakestEnemyNeighbor(p, strongest, true)
	if target == nil || armies-1 <= 0 {
		return
	}
	issue(p, game.NewAdvance(p, strongest, target, armies-1))
}

// ToDefend orders owned territories from strongest to weakest.
func (Aggressive) ToDefend(p *game.Player) []*game.Territory {
	return byArmies(p.Territories(), true)
}

// ToAttack orders enemy-owned border territories from weakest to strongest.
func (Aggressive) ToAttack(p *game.Player) []*game.Territory {
	enemies := utils.Filter(p.Borders(), func(t *game.Territory) bool { return t.Owner() != nil })
	return byArmies(enemies, false)
}
