package snake

// MoveOutcome is the result of advancing the snake by one cell.
type MoveOutcome int

const (
	Moved    MoveOutcome = iota // Head advanced, tail followed
	Ate                         // Head landed on the apple, tail kept
	Collided                    // Head hit the border or the body; snake is frozen
)

func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Collided:
		return "collided"
	default:
		return "unknown"
	}
}

// Snake is the player's body and heading.
//
// Direction changes are buffered in pending and committed at the start of
// the next Move, so a single tick applies at most one turn.
type Snake struct {
	grid     Grid
	segments []Cell // Head at index 0
	current  Direction
	pending  Direction
	alive    bool
}

// NewSnake creates the starting three-segment snake heading right.
func NewSnake(grid Grid) *Snake {
	return NewSnakeFrom(grid, []Cell{
		{Col: 7, Row: 5}, // Head
		{Col: 6, Row: 5},
		{Col: 5, Row: 5},
	}, DirRight)
}

// NewSnakeFrom creates a snake with the given body (head first) and heading.
// The body must not be empty.
func NewSnakeFrom(grid Grid, segments []Cell, dir Direction) *Snake {
	body := make([]Cell, len(segments))
	copy(body, segments)
	return &Snake{
		grid:     grid,
		segments: body,
		current:  dir,
		pending:  dir,
		alive:    true,
	}
}

// Move advances the snake one cell. apple is the current apple position.
// Once the snake has collided Move changes nothing and keeps returning Collided.
func (s *Snake) Move(apple Cell) MoveOutcome {
	if !s.alive {
		return Collided
	}

	// Apply buffered direction
	s.current = s.pending

	newHead := s.segments[0].Step(s.current)

	if s.CheckCollision(newHead) {
		s.alive = false
		return Collided
	}

	s.segments = append([]Cell{newHead}, s.segments...)

	if newHead.Equals(apple) {
		return Ate
	}

	s.segments = s.segments[:len(s.segments)-1]
	return Moved
}

// CheckCollision reports whether a head at c would hit the border ring or
// any current segment. The tail counts: it has not moved away yet.
func (s *Snake) CheckCollision(c Cell) bool {
	return s.grid.OnBorder(c) || containsCell(s.segments, c)
}

// SetPendingDirection queues d for the next Move. A request for the exact
// opposite of the current heading is ignored, as is any request after the
// snake has collided. Returns whether d was queued.
func (s *Snake) SetPendingDirection(d Direction) bool {
	if !s.alive || !d.Valid() || d == s.current.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Cell {
	out := make([]Cell, len(s.segments))
	copy(out, s.segments)
	return out
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.segments[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Direction returns the committed heading.
func (s *Snake) Direction() Direction {
	return s.current
}

// Pending returns the heading the next Move will commit.
func (s *Snake) Pending() Direction {
	return s.pending
}

// Alive reports whether the snake has not collided yet.
func (s *Snake) Alive() bool {
	return s.alive
}
