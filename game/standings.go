package game

import "sort"

// Standing summarizes how much of the board a player controls. Every share
// is between 0 and 1.
type Standing struct {
	Player       *Player
	Territories  float64 // Share of all territories
	Armies       float64 // Share of all armies on the map
	Bonus        float64 // Share of all continent bonuses fully held
	Connectivity float64 // Largest connected holding relative to all territories
	Score        float64 // Mean of the shares above
}

// Standings scores the players on m, best first. Ties keep the given order.
func Standings(players []*Player, m *Map) []Standing {
	var totalArmies, totalBonus float64
	for _, t := range m.Territories {
		totalArmies += float64(t.armies)
	}
	for _, c := range m.Continents {
		totalBonus += float64(c.Bonus)
	}
	territories := float64(len(m.Territories))

	standings := make([]Standing, 0, len(players))
	for _, p := range players {
		s := Standing{Player: p}
		var armies, bonus float64
		for _, t := range p.territories {
			armies += float64(t.armies)
		}
		for _, c := range m.Continents {
			if c.OwnedBy(p) {
				bonus += float64(c.Bonus)
			}
		}
		s.Territories = share(float64(len(p.territories)), territories)
		s.Armies = share(armies, totalArmies)
		s.Bonus = share(bonus, totalBonus)
		s.Connectivity = share(float64(largestHolding(p)), territories)
		s.Score = (s.Territories + s.Armies + s.Bonus + s.Connectivity) / 4
		standings = append(standings, s)
	}
	sort.SliceStable(standings, func(i, j int) bool { return standings[i].Score > standings[j].Score })
	return standings
}

func share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total
}

// largestHolding returns the size of the biggest group of p's territories
// connected through p's own territories.
func largestHolding(p *Player) int {
	visited := make(map[int]bool)
	largest := 0
	for _, start := range p.Territories() {
		if visited[start.ID] {
			continue
		}
		size := 0
		stack := []*Territory{start}
		visited[start.ID] = true
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, n := range current.neighbors {
				if n.owner == p && !visited[n.ID] {
					visited[n.ID] = true
					stack = append(stack, n)
				}
			}
		}
		largest = max(largest, size)
	}
	return largest
}
