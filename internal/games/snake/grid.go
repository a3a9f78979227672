package snake

import (
	"errors"
	"fmt"
)

// MinGridSize is the smallest board edge, in cells, that still holds the
// starting snake and the starting apple inside the border ring.
const MinGridSize = 12

// ErrGridTooSmall is returned when a board cannot hold the starting layout.
var ErrGridTooSmall = errors.New("snake: grid too small")

// Grid describes the board coordinate space. The outermost ring of cells is
// the border and is impassable.
type Grid struct {
	Width    int // Width in cells
	Height   int // Height in cells
	CellSize int // Rendering size of one cell (terminal columns or canvas pixels)
}

// NewGrid creates a board of width x height cells.
func NewGrid(width, height, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		cellSize = 1
	}
	g := Grid{Width: width, Height: height, CellSize: cellSize}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate reports ErrGridTooSmall when the starting snake or apple would
// not lie strictly inside the border ring.
func (g Grid) Validate() error {
	start := append(NewSnake(g).Segments(), NewApple(g).Position())
	for _, c := range start {
		if !g.Contains(c) || g.OnBorder(c) {
			return fmt.Errorf("%w: %dx%d cells, need at least %dx%d",
				ErrGridTooSmall, g.Width, g.Height, MinGridSize, MinGridSize)
		}
	}
	return nil
}

// GridFromSurface derives a board from a rendering surface measured in the
// same unit as cellSize.
func GridFromSurface(surfaceW, surfaceH, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		cellSize = 1
	}
	return NewGrid(surfaceW/cellSize, surfaceH/cellSize, cellSize)
}

// Contains reports whether c lies on the board, border included.
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// OnBorder reports whether c touches the border ring.
func (g Grid) OnBorder(c Cell) bool {
	return c.Col == 0 || c.Row == 0 || c.Col == g.Width-1 || c.Row == g.Height-1
}

// Interior returns the number of playable cells inside the border ring.
func (g Grid) Interior() int {
	return (g.Width - 2) * (g.Height - 2)
}

// SurfaceSize returns the board size in rendering units.
func (g Grid) SurfaceSize() (int, int) {
	return g.Width * g.CellSize, g.Height * g.CellSize
}
