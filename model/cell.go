package model

import "fmt"

// neighborOffsets are the 8 compass directions around a cell
var neighborOffsets = [8][2]int64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Cell is a single position on the unbounded grid
type Cell struct {
	X int64
	Y int64
}

// String returns the cell formatted as (x,y)
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbors returns the 8 cells at Chebyshev distance 1 from c.
// Coordinates at the very edge of the int64 range wrap around.
func (c Cell) Neighbors() CellSet {
	set := make(CellSet, len(neighborOffsets))
	for _, off := range neighborOffsets {
		set.Add(Cell{X: c.X + off[0], Y: c.Y + off[1]})
	}
	return set
}

// countLivingNeighbors counts the neighbors of c present in alive without
// building the neighbor set
func (c Cell) countLivingNeighbors(alive CellSet) (count int) {
	for _, off := range neighborOffsets {
		if alive.Contains(Cell{X: c.X + off[0], Y: c.Y + off[1]}) {
			count++
		}
	}
	return
}
