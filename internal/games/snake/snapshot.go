package snake

// Snapshot is a read-only copy of a session for renderers, determinism
// tests and the browser protocol.
type Snapshot struct {
	Grid     Grid
	Tick     uint64
	Score    int
	Segments []Cell // Head first
	Dir      Direction
	Apple    Cell
	Running  bool
	Outcome  MoveOutcome
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:     s.grid,
		Tick:     s.ticks,
		Score:    s.score,
		Segments: s.snake.Segments(),
		Dir:      s.snake.Direction(),
		Apple:    s.apple.Position(),
		Running:  s.running,
		Outcome:  s.last,
	}
}

// Head returns the head cell of the snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Segments) == 0 {
		return Cell{}
	}
	return s.Segments[0]
}

// Len returns the snake length in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Segments)
}
