package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"
)

// CellSet is an unordered set of cells. A generation is the CellSet of every
// alive cell; any cell absent from it is dead.
type CellSet map[Cell]struct{}

// NewCellSet creates a set holding the given cells
func NewCellSet(cells ...Cell) CellSet {
	set := make(CellSet, len(cells))
	for _, c := range cells {
		set.Add(c)
	}
	return set
}

// Add inserts c into the set
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Contains reports whether c is in the set
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells in the set
func (s CellSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out.Add(c)
	}
	return out
}

// Extend adds every cell of other to s
func (s CellSet) Extend(other CellSet) {
	for c := range other {
		s.Add(c)
	}
}

// IntersectionCount returns how many cells s and other have in common
func (s CellSet) IntersectionCount(other CellSet) (count int) {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for c := range small {
		if large.Contains(c) {
			count++
		}
	}
	return
}

// Equal reports whether both sets hold exactly the same cells
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Translate returns a new set with every cell shifted by (dx, dy)
func (s CellSet) Translate(dx, dy int64) CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out.Add(Cell{X: c.X + dx, Y: c.Y + dy})
	}
	return out
}

// Sorted returns the cells ordered by X, then Y
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if n := cmp.Compare(a.X, b.X); n != 0 {
			return n
		}
		return cmp.Compare(a.Y, b.Y)
	})
	return cells
}

// Bounds is the smallest rectangle enclosing every cell of a set
type Bounds struct {
	MinX, MaxX, MinY, MaxY int64
}

// Width returns the number of columns covered by the bounds
func (b Bounds) Width() int64 {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows covered by the bounds
func (b Bounds) Height() int64 {
	return b.MaxY - b.MinY + 1
}

// Bounds returns the bounding box of the set. ok is false for an empty set.
func (s CellSet) Bounds() (b Bounds, ok bool) {
	for c := range s {
		if !ok {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			ok = true
			continue
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return
}

// Hash returns an MD5 digest of the set's contents. Equal sets always hash
// to the same value regardless of insertion order.
func (s CellSet) Hash() string {
	h := md5.New()
	var buf [16]byte
	for _, c := range s.Sorted() {
		binary.BigEndian.PutUint64(buf[:8], uint64(c.X))
		binary.BigEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
