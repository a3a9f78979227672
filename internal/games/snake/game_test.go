package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  23,
		CellSize: 2,
	}
	g := New()
	g.Reset(cfg)
	if g.Session() == nil {
		t.Fatal("Session should start on an 80x23 screen")
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameBoardFromScreen(t *testing.T) {
	g := newTestGame(t, 1)
	grid := g.Session().Grid()

	if grid.Width != 40 || grid.Height != 22 || grid.CellSize != 2 {
		t.Errorf("Grid = %+v, expected 40x22 with 2-column cells", grid)
	}
}

func TestGameGridOverride(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 23, CellSize: 2, GridW: 20, GridH: 15})

	grid := g.Session().Grid()
	if grid.Width != 20 || grid.Height != 15 {
		t.Errorf("Grid = %dx%d, expected 20x15", grid.Width, grid.Height)
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 100; i++ {
		var in core.InputFrame
		switch i {
		case 2:
			in = frame(core.ActionDown)
		case 6:
			in = frame(core.ActionRight)
		case 9:
			in = frame(core.ActionUp)
		}
		g1.Step(in)
		g2.Step(in)
	}

	a, b := g1.Session().Snapshot(), g2.Session().Snapshot()
	if a.Tick != b.Tick || a.Score != b.Score {
		t.Errorf("Tick/score mismatch: %d/%d vs %d/%d", a.Tick, a.Score, b.Tick, b.Score)
	}
	if !a.Head().Equals(b.Head()) || !a.Apple.Equals(b.Apple) {
		t.Errorf("Position mismatch: head %v/%v apple %v/%v", a.Head(), b.Head(), a.Apple, b.Apple)
	}
}

func TestGameDirectionPressesReplayInOrder(t *testing.T) {
	g := newTestGame(t, 42)

	// Left is rejected (reversal), down is accepted.
	g.Step(frame(core.ActionLeft, core.ActionDown))
	s := g.Session().Snake()
	if s.Direction() != DirDown {
		t.Errorf("Direction = %v, expected down", s.Direction())
	}
	if !s.Head().Equals(Cell{7, 6}) {
		t.Errorf("Head = %v, expected (7,6)", s.Head())
	}

	// Both left and right are legal while heading down; the last one wins.
	g.Step(frame(core.ActionLeft, core.ActionRight))
	if s.Direction() != DirRight {
		t.Errorf("Direction = %v, expected right", s.Direction())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 7)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}
	head := g.Session().Snake().Head()

	g.Step(frame(core.ActionDown))
	g.Step(core.NewInputFrame())
	if !g.Session().Snake().Head().Equals(head) {
		t.Error("Snake should not move while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("Game should resume")
	}
	if g.Session().Snake().Head().Equals(head) {
		t.Error("Snake should move after resuming")
	}
}

func TestGameOverState(t *testing.T) {
	g := newTestGame(t, 9)

	g.Step(frame(core.ActionUp))
	for range_i := 0; range_i < 10; range_i++ {
		g.Step(core.NewInputFrame())
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("Hitting the top border should end the game")
	}

	// Pause has no effect once the game is over
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Pause should be ignored after game over")
	}

	g.Restart()
	st = g.State()
	if st.GameOver || st.Score != 0 {
		t.Errorf("After Restart state = %+v", st)
	}
	if !g.Session().Snake().Head().Equals(Cell{7, 5}) {
		t.Errorf("After Restart head = %v, expected (7,5)", g.Session().Snake().Head())
	}
	if g.Session().Grid().Width != 40 {
		t.Errorf("Restart should keep the board size, got width %d", g.Session().Grid().Width)
	}
}

func TestGameWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5, CellSize: 2})

	if g.Session() != nil {
		t.Fatal("No session should start on a 10x5 screen")
	}
	if !g.State().Blocked {
		t.Error("State should report blocked")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("Too-small overlay should be rendered")
	}

	// Growing the window starts the session
	g.Resize(80, 23)
	if g.Session() == nil || g.State().Blocked {
		t.Fatal("Session should start after resize")
	}
}

func TestGameResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, 5)
	before := g.Session().Grid()

	g.Resize(120, 40)
	if g.Session().Grid() != before {
		t.Errorf("Grid changed on resize: %+v -> %+v", before, g.Session().Grid())
	}

	// Shrinking below the board blocks ticking
	g.Resize(40, 10)
	if !g.State().Blocked {
		t.Fatal("State should be blocked when the board does not fit")
	}
	head := g.Session().Snake().Head()
	g.Step(core.NewInputFrame())
	if !g.Session().Snake().Head().Equals(head) {
		t.Error("Snake should not move while blocked")
	}

	g.Resize(80, 23)
	if g.State().Blocked {
		t.Error("State should unblock when the board fits again")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 444)
	screen := core.NewScreen(80, 23)
	g.Render(screen)

	if !strings.HasPrefix(screen.Row(0), " Score: 0  Length: 3") {
		t.Errorf("HUD = %q", screen.Row(0))
	}

	// 40x22 board on 80x22 play area starts at (0,1)
	if c := screen.GetCell(0, 1); c.Rune != '█' || c.Color != core.ColorGray {
		t.Errorf("Top-left border = %+v, expected gray block", c)
	}

	// Head (7,5) -> columns 14-15, row 6
	for _, x := range []int{14, 15} {
		if c := screen.GetCell(x, 6); c.Color != core.ColorBrightWhite {
			t.Errorf("Head column %d = %+v, expected bright white", x, c)
		}
	}
	if c := screen.GetCell(12, 6); c.Color != core.ColorYellow {
		t.Errorf("First body segment = %+v, expected yellow", c)
	}
	if c := screen.GetCell(10, 6); c.Color != core.ColorBlue {
		t.Errorf("Second body segment = %+v, expected blue", c)
	}

	// Apple (10,10) -> column 20, row 11
	if c := screen.GetCell(20, 11); c.Rune != '●' || c.Color != core.ColorBrightGreen {
		t.Errorf("Apple = %+v, expected green dot", c)
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, 10)
	g.Step(frame(core.ActionUp))
	for range_i := 0; range_i < 10; range_i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 23)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game over") {
		t.Error("Game over overlay should be rendered")
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "snake" {
		t.Errorf("ID() = %q, expected snake", g.ID())
	}
	if g.Title() != "Snake" {
		t.Errorf("Title() = %q, expected Snake", g.Title())
	}
}
