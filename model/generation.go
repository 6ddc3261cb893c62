package model

import "github.com/sheikhrachel/sparse-gol/rules"

// Neighborhood returns every cell that has to be evaluated for the next
// generation: the alive cells plus all of their neighbors. Cells outside the
// neighborhood have no alive neighbor and stay dead.
func Neighborhood(alive CellSet) CellSet {
	out := make(CellSet, len(alive)*9)
	out.Extend(alive)
	for c := range alive {
		out.Extend(c.Neighbors())
	}
	return out
}

// IsAliveInNextGeneration decides the fate of a single cell given the
// current generation
func IsAliveInNextGeneration(current CellSet, c Cell) bool {
	return rules.ApplyConwayRules(c.countLivingNeighbors(current), current.Contains(c))
}

// NextGeneration computes the generation following current. Every candidate
// is evaluated against the unmodified current set, and the result is always
// a new set.
func NextGeneration(current CellSet) CellSet {
	next := make(CellSet, len(current))
	for c := range Neighborhood(current) {
		if IsAliveInNextGeneration(current, c) {
			next.Add(c)
		}
	}
	return next
}
