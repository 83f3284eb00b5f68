// Package scenario loads search scenarios for the command-line tools.
//
// A scenario names a map (inline or as a file), how to search it, and a list
// of start/goal queries. TOML and YAML are both accepted, chosen by the file
// extension:
//
//	map_file = "maze.txt"
//	diagonal = true
//	frontier = "heap"
//	pool_capacity = 4096
//
//	[[queries]]
//	from = [0, 0]
//	to = [9, 9]
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	astar "github.com/pdrpinto/astarstep"
	"github.com/pdrpinto/astarstep/grid"
)

var (
	// ErrUnsupportedFormat is returned for scenario files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("scenario: unsupported file format")

	// ErrNoMap is returned when a scenario has neither map nor map_file.
	ErrNoMap = errors.New("scenario: no map")

	// ErrUnknownFrontier is returned for frontier names other than sorted and heap.
	ErrUnknownFrontier = errors.New("scenario: unknown frontier")
)

// Query is a start/goal pair in grid coordinates.
type Query struct {
	From [2]int `toml:"from" yaml:"from"`
	To   [2]int `toml:"to" yaml:"to"`
}

// Scenario is the decoded scenario file.
type Scenario struct {
	Map          string  `toml:"map" yaml:"map"`
	MapFile      string  `toml:"map_file" yaml:"map_file"`
	Diagonal     bool    `toml:"diagonal" yaml:"diagonal"`
	Frontier     string  `toml:"frontier" yaml:"frontier"`
	PoolCapacity int     `toml:"pool_capacity" yaml:"pool_capacity"`
	Workers      int     `toml:"workers" yaml:"workers"`
	Queries      []Query `toml:"queries" yaml:"queries"`

	// dir resolves a relative MapFile.
	dir string
}

// Load reads a scenario from a .toml, .yaml or .yml file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	s.dir = filepath.Dir(path)
	return &s, nil
}

// MapPath returns the resolved map file path, or "" for an inline map.
func (s *Scenario) MapPath() string {
	if s.MapFile == "" {
		return ""
	}
	if filepath.IsAbs(s.MapFile) || s.dir == "" {
		return s.MapFile
	}
	return filepath.Join(s.dir, s.MapFile)
}

// LoadMap parses the scenario's map.
func (s *Scenario) LoadMap() (*grid.Map, error) {
	var opts []grid.Option
	if s.Diagonal {
		opts = append(opts, grid.WithDiagonal())
	}
	if s.Map != "" {
		return grid.ParseString(s.Map, opts...)
	}
	path := s.MapPath()
	if path == "" {
		return nil, ErrNoMap
	}
	return LoadMapFile(path, opts...)
}

// LoadMapFile parses an ASCII map file.
func LoadMapFile(path string, opts ...grid.Option) (*grid.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()
	m, err := grid.Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Options converts the scenario's engine settings.
func (s *Scenario) Options() ([]astar.Option, error) {
	var opts []astar.Option
	if s.Frontier != "" {
		kind, err := ParseFrontier(s.Frontier)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithFrontier(kind))
	}
	if s.PoolCapacity > 0 {
		opts = append(opts, astar.WithPoolCapacity(s.PoolCapacity))
	}
	if s.Workers > 0 {
		opts = append(opts, astar.WithWorkers(s.Workers))
	}
	return opts, nil
}

// ParseFrontier maps "sorted" and "heap" to a FrontierKind.
func ParseFrontier(name string) (astar.FrontierKind, error) {
	switch strings.ToLower(name) {
	case "", "sorted":
		return astar.FrontierSorted, nil
	case "heap":
		return astar.FrontierHeap, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFrontier, name)
}

// Resolve converts the queries to grid identities, checking they are inside g.
func (s *Scenario) Resolve(g *grid.Grid) ([]astar.Query[int], error) {
	queries := make([]astar.Query[int], 0, len(s.Queries))
	for i, q := range s.Queries {
		from, to := grid.Point{X: q.From[0], Y: q.From[1]}, grid.Point{X: q.To[0], Y: q.To[1]}
		if !g.In(from) || !g.In(to) {
			return nil, fmt.Errorf("query %d: %w: %s -> %s", i, grid.ErrOutOfBounds, from, to)
		}
		queries = append(queries, astar.Query[int]{Start: g.ID(from), Goal: g.ID(to)})
	}
	return queries, nil
}
