package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMap = errors.New("invalid map")

// Territory is a node of the map graph. Its owner field is the authoritative
// ownership link; the owner's territory index is kept in sync by SetOwner.
type Territory struct {
	ID        int    // Index into Map.Territories
	Name      string // Unique name of the territory
	X, Y      int    // Cosmetic position
	neighbors []*Territory
	owner     *Player
	armies    int
}

func (t *Territory) Owner() *Player { return t.owner }

func (t *Territory) Armies() int { return t.armies }

// SetOwner transfers the territory, updating both the previous and the new
// owner's territory index. A nil player leaves the territory unowned.
func (t *Territory) SetOwner(p *Player) {
	if t.owner == p {
		return
	}
	if t.owner != nil {
		delete(t.owner.territories, t.ID)
	}
	t.owner = p
	if p != nil {
		p.territories[t.ID] = t
	}
}

func (t *Territory) SetArmies(n int) {
	t.armies = max(0, n)
}

func (t *Territory) AddArmies(n int) {
	t.SetArmies(t.armies + n)
}

// RemoveArmies never leaves a negative army count.
func (t *Territory) RemoveArmies(n int) {
	t.SetArmies(t.armies - n)
}

// Neighbors returns the territories this one has an edge to.
func (t *Territory) Neighbors() []*Territory {
	return t.neighbors
}

// IsAdjacent reports whether there is an edge from t to other.
func (t *Territory) IsAdjacent(other *Territory) bool {
	for _, n := range t.neighbors {
		if n == other {
			return true
		}
	}
	return false
}

func (t *Territory) String() string {
	return t.Name
}

// Continent groups territories and grants a bonus to whoever owns all of them.
type Continent struct {
	ID          int
	Name        string
	Bonus       int
	Territories []*Territory
}

// OwnedBy reports whether p owns every territory of the continent.
func (c *Continent) OwnedBy(p *Player) bool {
	if len(c.Territories) == 0 {
		return false
	}
	for _, t := range c.Territories {
		if t.owner != p {
			return false
		}
	}
	return true
}

// Map owns every territory and continent of a game.
type Map struct {
	Name        string
	Territories []*Territory // Indexed by territory ID
	Continents  []*Continent // Indexed by continent ID
	byName      map[string]*Territory
}

func NewMap(name string) *Map {
	return &Map{
		Name:   name,
		byName: make(map[string]*Territory),
	}
}

// AddTerritory creates a territory with the next free ID.
func (m *Map) AddTerritory(name string, x, y int) (*Territory, error) {
	key := strings.ToLower(name)
	if _, ok := m.byName[key]; ok {
		return nil, fmt.Errorf("duplicate territory %q", name)
	}
	t := &Territory{ID: len(m.Territories), Name: name, X: x, Y: y}
	m.Territories = append(m.Territories, t)
	m.byName[key] = t
	return t, nil
}

// AddContinent creates a continent with the next free ID.
func (m *Map) AddContinent(name string, bonus int) *Continent {
	c := &Continent{ID: len(m.Continents), Name: name, Bonus: bonus}
	m.Continents = append(m.Continents, c)
	return c
}

// Assign places a territory in a continent. Assigning the same territory to
// two continents is allowed here and reported by Validate.
func (m *Map) Assign(territoryID, continentID int) error {
	t, ok := m.Territory(territoryID)
	if !ok {
		return fmt.Errorf("unknown territory %d", territoryID)
	}
	if continentID < 0 || continentID >= len(m.Continents) {
		return fmt.Errorf("unknown continent %d", continentID)
	}
	c := m.Continents[continentID]
	c.Territories = append(c.Territories, t)
	return nil
}

// AddAdjacent adds the directed edge from -> to. Callers add both directions
// for a symmetric border.
func (m *Map) AddAdjacent(from, to int) error {
	a, ok := m.Territory(from)
	if !ok {
		return fmt.Errorf("unknown territory %d", from)
	}
	b, ok := m.Territory(to)
	if !ok {
		return fmt.Errorf("unknown territory %d", to)
	}
	if !a.IsAdjacent(b) {
		a.neighbors = append(a.neighbors, b)
	}
	return nil
}

// AddBorder adds a bidirectional border between two territories.
func (m *Map) AddBorder(id1, id2 int) error {
	if err := m.AddAdjacent(id1, id2); err != nil {
		return err
	}
	return m.AddAdjacent(id2, id1)
}

func (m *Map) Territory(id int) (*Territory, bool) {
	if id < 0 || id >= len(m.Territories) {
		return nil, false
	}
	return m.Territories[id], true
}

// TerritoryByName looks up a territory case-insensitively.
func (m *Map) TerritoryByName(name string) (*Territory, bool) {
	t, ok := m.byName[strings.ToLower(name)]
	return t, ok
}

// ValidationReport holds the result of each map invariant check.
type ValidationReport struct {
	Connected           bool // Every territory is reachable from the first one
	ContinentsConnected bool // Each continent's territories are reachable from one of its members
	UniqueMembership    bool // No territory belongs to more than one continent
}

func (r ValidationReport) Valid() bool {
	return r.Connected && r.ContinentsConnected && r.UniqueMembership
}

// Err wraps ErrInvalidMap with the names of the failing checks.
func (r ValidationReport) Err() error {
	var failed []string
	if !r.Connected {
		failed = append(failed, "map is not connected")
	}
	if !r.ContinentsConnected {
		failed = append(failed, "a continent is not connected")
	}
	if !r.UniqueMembership {
		failed = append(failed, "a territory belongs to several continents")
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidMap, strings.Join(failed, ", "))
}

// Validate runs the three map invariant checks.
func (m *Map) Validate() ValidationReport {
	return ValidationReport{
		Connected:           m.isConnected(),
		ContinentsConnected: m.continentsConnected(),
		UniqueMembership:    m.uniqueMembership(),
	}
}

func (m *Map) isConnected() bool {
	if len(m.Territories) == 0 {
		return false
	}
	return len(reachable(m.Territories[0])) == len(m.Territories)
}

// continentsConnected walks the full graph from a member of each continent,
// so a continent may be linked through territories outside of it.
func (m *Map) continentsConnected() bool {
	for _, c := range m.Continents {
		if len(c.Territories) == 0 {
			continue
		}
		visited := reachable(c.Territories[0])
		for _, t := range c.Territories {
			if !visited[t.ID] {
				return false
			}
		}
	}
	return true
}

func (m *Map) uniqueMembership() bool {
	seen := make(map[int]bool)
	for _, c := range m.Continents {
		for _, t := range c.Territories {
			if seen[t.ID] {
				return false
			}
			seen[t.ID] = true
		}
	}
	return true
}

// reachable returns the IDs of every territory reachable from start by
// depth-first traversal along directed edges.
func reachable(start *Territory) map[int]bool {
	visited := map[int]bool{start.ID: true}
	stack := []*Territory{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range current.neighbors {
			if !visited[n.ID] {
				visited[n.ID] = true
				stack = append(stack, n)
			}
		}
	}
	return visited
}
