package snake

import "math/rand"

// Apple is the single piece of food on the board.
type Apple struct {
	grid     Grid
	position Cell
}

// NewApple creates the apple at its starting cell.
func NewApple(grid Grid) *Apple {
	return NewAppleAt(grid, Cell{Col: 10, Row: 10})
}

// NewAppleAt creates an apple at c.
func NewAppleAt(grid Grid, c Cell) *Apple {
	return &Apple{grid: grid, position: c}
}

// Position returns the apple's cell.
func (a *Apple) Position() Cell {
	return a.position
}

// Relocate moves the apple to a uniformly random interior cell that is not
// in occupied, resampling until one is found. The caller must make sure a
// free interior cell exists; Session ends the game on a full board instead.
func (a *Apple) Relocate(rng *rand.Rand, occupied []Cell) {
	for {
		c := Cell{
			Col: rng.Intn(a.grid.Width-2) + 1,
			Row: rng.Intn(a.grid.Height-2) + 1,
		}
		if !containsCell(occupied, c) {
			a.position = c
			return
		}
	}
}
