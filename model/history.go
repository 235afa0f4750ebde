package model

// historyDepth bounds how many past fingerprints History keeps. Matching
// any of the last three catches still lifes and period-2 and period-3
// oscillators (blinkers, pulsars).
const (
	historyDepth = 5
	cycleWindow  = 3
)

// History remembers recent grid fingerprints to detect a stuck simulation
type History struct {
	hashes []string
}

// Observe records the grid's current generation and reports whether it
// repeats one of the last few generations observed
func (h *History) Observe(g *Grid) bool {
	hash := g.Hash()

	stagnant := false
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-cycleWindow; i-- {
		if h.hashes[i] == hash {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Len returns how many fingerprints are held
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}
