package snake

import "math/rand"

// TickResult reports what one tick did.
type TickResult struct {
	Outcome MoveOutcome
	Score   int
	Running bool
}

// Session is one game from start to game over. It owns the snake, the
// apple, the score and the RNG used for apple placement.
//
// A Session is not safe for concurrent use; the platform serialises ticks
// and direction requests.
type Session struct {
	grid    Grid
	rng     *rand.Rand
	snake   *Snake
	apple   *Apple
	score   int
	ticks   uint64
	running bool
	last    MoveOutcome
}

// NewSession starts a game on grid. Apple placement is driven by seed.
// It fails with ErrGridTooSmall when grid cannot hold the starting layout.
func NewSession(grid Grid, seed int64) (*Session, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		grid:    grid,
		rng:     rand.New(rand.NewSource(seed)),
		snake:   NewSnake(grid),
		apple:   NewApple(grid),
		running: true,
		last:    Moved,
	}, nil
}

// Tick advances the game by one step. It does nothing once the game is over.
func (s *Session) Tick() TickResult {
	if !s.running {
		return s.result()
	}

	s.ticks++
	s.last = s.snake.Move(s.apple.Position())

	switch s.last {
	case Collided:
		s.running = false
	case Ate:
		s.score++
		if s.snake.Len() >= s.grid.Interior() {
			// No free cell left for the apple.
			s.running = false
			break
		}
		s.apple.Relocate(s.rng, s.snake.Segments())
	}

	return s.result()
}

func (s *Session) result() TickResult {
	return TickResult{Outcome: s.last, Score: s.score, Running: s.running}
}

// SetDirection queues a direction change for the next tick.
// See Snake.SetPendingDirection for when a request is ignored.
func (s *Session) SetDirection(d Direction) bool {
	return s.snake.SetPendingDirection(d)
}

// Score returns the number of apples eaten.
func (s *Session) Score() int {
	return s.score
}

// Running reports whether the game is still in progress.
func (s *Session) Running() bool {
	return s.running
}

// Grid returns the board the session plays on.
func (s *Session) Grid() Grid {
	return s.grid
}

// Snake returns the session's snake. Callers must not move it.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Apple returns the session's apple.
func (s *Session) Apple() *Apple {
	return s.apple
}
