package game

import "golang.org/x/exp/rand"

// Rules holds the battle odds.
type Rules struct {
	AttackKillChance float64 // Chance that one attacking unit kills a defender
	DefendKillChance float64 // Chance that one defending unit kills an attacker
}

func NewStandardRules() Rules {
	return Rules{
		AttackKillChance: 0.6,
		DefendKillChance: 0.7,
	}
}

// Battle resolves a fight in a single pass over the pre-battle army sizes and
// returns the survivors on each side.
func (r Rules) Battle(rng *rand.Rand, attackers, defenders int) (attackersLeft, defendersLeft int) {
	attackerKills := rollKills(rng, attackers, r.AttackKillChance)
	defenderKills := rollKills(rng, defenders, r.DefendKillChance)
	return max(0, attackers-defenderKills), max(0, defenders-attackerKills)
}

func rollKills(rng *rand.Rand, units int, chance float64) int {
	kills := 0
	for i := 0; i < units; i++ {
		if rng.Float64() < chance {
			kills++
		}
	}
	return kills
}

// ReinforcementPolicy computes the armies a player receives each round.
type ReinforcementPolicy interface {
	Reinforcements(p *Player, m *Map) int
}

// StandardReinforcement grants max(3, territories/3) plus the bonus of every
// continent the player fully owns.
type StandardReinforcement struct{}

func (StandardReinforcement) Reinforcements(p *Player, m *Map) int {
	troops := max(3, p.TerritoryCount()/3)
	for _, c := range m.Continents {
		if c.OwnedBy(p) {
			troops += c.Bonus
		}
	}
	return troops
}

// FlatReinforcement grants the same number of armies every round.
type FlatReinforcement struct {
	Armies int
}

func (f FlatReinforcement) Reinforcements(*Player, *Map) int {
	return f.Armies
}
