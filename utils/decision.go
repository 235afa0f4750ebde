package utils

import "math/rand/v2"

// aliveThreshold is the draw at or above which a cell starts alive
const aliveThreshold = 0.5

// NewDecisionSource returns a deterministic coin flip for seeding random
// grids. The same seed always yields the same sequence.
func NewDecisionSource(seed int64) func() bool {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	return func() bool {
		return r.Float64() >= aliveThreshold
	}
}
