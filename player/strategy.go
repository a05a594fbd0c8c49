package player

import (
	"fmt"
	"sort"
	"strings"

	"warzone/game"
)

// Computer lists the strategies that need no human input.
var Computer = []string{"aggressive", "benevolent", "neutral", "cheater"}

// ForName returns the computer strategy with the given name.
func ForName(name string) (game.Strategy, error) {
	switch strings.ToLower(name) {
	case "aggressive":
		return Aggressive{}, nil
	case "benevolent":
		return Benevolent{}, nil
	case "neutral":
		return Neutral{}, nil
	case "cheater":
		return Cheater{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// byArmies sorts territories by army count, keeping ID order among equals.
func byArmies(territories []*game.Territory, descending bool) []*game.Territory {
	sorted := make([]*game.Territory, len(territories))
	copy(sorted, territories)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Armies() > sorted[j].Armies()
		}
		return sorted[i].Armies() < sorted[j].Armies()
	})
	return sorted
}

// weakestEnemyNeighbor returns the enemy-owned territory with the fewest
// armies that from has an edge to.
func weakestEnemyNeighbor(p *game.Player, from *game.Territory, allowUnowned bool) *game.Territory {
	var weakest *game.Territory
	for _, n := range from.Neighbors() {
		if n.Owner() == p || (n.Owner() == nil && !allowUnowned) {
			continue
		}
		if weakest == nil || n.Armies() < weakest.Armies() {
			weakest = n
		}
	}
	return weakest
}

// isPassive reports whether a player never attacks, so there is no point in
// negotiating with it.
func isPassive(p *game.Player) bool {
	s := p.Strategy()
	return s == nil || s.Name() == Neutral{}.Name()
}

// issue queues an order and logs why it was refused, if it was.
func issue(p *game.Player, o game.Order) bool {
	if err := p.IssueOrder(o); err != nil {
		logRefused(p, o.String(), err)
		return false
	}
	return true
}
