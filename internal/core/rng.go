package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillCells sets each cell alive or dead with equal probability.
func (r *RNG) FillCells(cells []Cell) {
	for i := range cells {
		cells[i] = Dead
		if r.Bool() {
			cells[i] = Alive
		}
	}
}

// Randomize replaces the board with a random soup derived from seed. The
// generation counter restarts; view state and the running flag are kept.
func (g *Grid) Randomize(seed int64) {
	NewRNG(seed).FillCells(g.cells)
	g.generation = 0
}
