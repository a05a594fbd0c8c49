// Package maploader turns map names and YAML map files into game maps.
package maploader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"warzone/game"
)

var ErrUnknownMap = errors.New("unknown map")

// builtins are maps compiled into the binary, looked up by name.
var builtins = map[string]func() *game.Map{
	"switzerland": game.CreateSwitzerland,
}

// File is the YAML layout of a map.
type File struct {
	Name        string          `yaml:"name"`
	Continents  []ContinentFile `yaml:"continents"`
	Territories []TerritoryFile `yaml:"territories"`
}

type ContinentFile struct {
	Name  string `yaml:"name"`
	Bonus int    `yaml:"bonus"`
}

type TerritoryFile struct {
	Name      string `yaml:"name"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Continent string `yaml:"continent"`
	// Adjacent lists outgoing edges. Write both directions for a border.
	Adjacent []string `yaml:"adjacent"`
}

// Loader finds maps by built-in name, by path, or as <name>.yaml in Dir.
type Loader struct {
	Dir string
}

func New(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Names lists the built-in maps.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns a fresh, unvalidated map on every call.
func (l *Loader) Load(name string) (*game.Map, error) {
	if create, ok := builtins[strings.ToLower(name)]; ok {
		return create(), nil
	}

	for _, path := range l.candidates(name) {
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open map %s: %w", path, err)
		}
		defer f.Close()
		return Parse(f)
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownMap)
}

func (l *Loader) candidates(name string) []string {
	if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
		return []string{name, filepath.Join(l.Dir, name)}
	}
	return []string{filepath.Join(l.Dir, name+".yaml"), filepath.Join(l.Dir, name+".yml")}
}

// Parse reads a YAML map. Structural problems such as unknown continents or
// neighbors are reported here; graph checks are left to Map.Validate.
func Parse(r io.Reader) (*game.Map, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	return file.Build()
}

// Build creates the map the file describes.
func (file File) Build() (*game.Map, error) {
	if file.Name == "" {
		return nil, fmt.Errorf("map has no name: %w", game.ErrInvalidMap)
	}
	m := game.NewMap(file.Name)

	continents := make(map[string]int)
	for _, c := range file.Continents {
		key := strings.ToLower(c.Name)
		if _, ok := continents[key]; ok {
			return nil, fmt.Errorf("continent %q declared twice: %w", c.Name, game.ErrInvalidMap)
		}
		continents[key] = m.AddContinent(c.Name, c.Bonus).ID
	}

	for _, tf := range file.Territories {
		t, err := m.AddTerritory(tf.Name, tf.X, tf.Y)
		if err != nil {
			return nil, err
		}
		if tf.Continent == "" {
			continue
		}
		cid, ok := continents[strings.ToLower(tf.Continent)]
		if !ok {
			return nil, fmt.Errorf("territory %s is in unknown continent %q: %w", tf.Name, tf.Continent, game.ErrInvalidMap)
		}
		if err := m.Assign(t.ID, cid); err != nil {
			return nil, err
		}
	}

	for _, tf := range file.Territories {
		from, _ := m.TerritoryByName(tf.Name)
		for _, name := range tf.Adjacent {
			to, ok := m.TerritoryByName(name)
			if !ok {
				return nil, fmt.Errorf("territory %s borders unknown %q: %w", tf.Name, name, game.ErrInvalidMap)
			}
			if err := m.AddAdjacent(from.ID, to.ID); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
