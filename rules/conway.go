package rules

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

A living cell survives with 2 or 3 living neighbors (fewer dies of isolation,
more of overcrowding). A dead cell is born with exactly 3 living neighbors.
Every other combination leaves the cell dead.
*/
func ApplyConwayRules(livingNeighbors int, alive bool) bool {
	if alive {
		return livingNeighbors >= 2 && livingNeighbors < 4
	}
	return livingNeighbors == 3
}
