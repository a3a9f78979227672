package snake

import "fmt"

// Cell is one board square. It is a value: moving produces a new Cell.
type Cell struct {
	Col int
	Row int
}

// Equals reports whether both cells name the same square.
func (c Cell) Equals(other Cell) bool {
	return c.Col == other.Col && c.Row == other.Row
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirRight:
		return Cell{Col: c.Col + 1, Row: c.Row}
	case DirLeft:
		return Cell{Col: c.Col - 1, Row: c.Row}
	case DirDown:
		return Cell{Col: c.Col, Row: c.Row + 1}
	case DirUp:
		return Cell{Col: c.Col, Row: c.Row - 1}
	}
	return c
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// containsCell reports whether cells holds c.
func containsCell(cells []Cell, c Cell) bool {
	for _, other := range cells {
		if other.Equals(c) {
			return true
		}
	}
	return false
}
