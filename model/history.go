package model

const historySize = 5

// History remembers the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds g to the history, keeping only the most recent states
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// which covers still lifes and oscillators up to period 3
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Hash()
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}
