package model

// stagnationWindow is how many recent generations are compared against the
// current one; it catches still lifes and oscillators up to period 3
const stagnationWindow = 3

// History remembers the hashes of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history retaining at most size generations
func NewHistory(size int) *History {
	if size < stagnationWindow {
		size = stagnationWindow
	}
	return &History{size: size}
}

// Record adds gen to the history, dropping the oldest entry when full
func (h *History) Record(gen CellSet) {
	h.hashes = append(h.hashes, gen.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether gen repeats one of the last few recorded
// generations, i.e. the pattern is static or stuck in a short cycle
func (h *History) IsStagnant(gen CellSet) bool {
	if len(h.hashes) == 0 {
		return false
	}

	current := gen.Hash()
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-stagnationWindow; i-- {
		if h.hashes[i] == current {
			return true
		}
	}
	return false
}
