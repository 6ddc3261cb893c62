package model

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
)

const (
	PatternRPentomino = "r-pentomino"
	PatternGlider     = "glider"
	PatternBlinker    = "blinker"
	PatternBlock      = "block"

	// DefaultPattern seeds the simulation when nothing else is configured
	DefaultPattern = PatternRPentomino
)

var patterns = map[string][]Cell{
	// Runs for 1103 generations before settling
	PatternRPentomino: {{0, 1}, {1, 1}, {-1, 0}, {0, 0}, {0, -1}},
	// Travels by (1,1) every 4 generations
	PatternGlider: {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	// Period 2 oscillator
	PatternBlinker: {{0, 0}, {1, 0}, {2, 0}},
	// Still life
	PatternBlock: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
}

// Pattern returns a fresh generation seeded with the named pattern
func Pattern(name string) (CellSet, error) {
	cells, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("[Pattern] unknown pattern %q, want one of %v", name, PatternNames())
	}
	return NewCellSet(cells...), nil
}

// PatternNames lists the known pattern names in sorted order
func PatternNames() []string {
	return slices.Sorted(maps.Keys(patterns))
}
