package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 1

// Game runs a Session on the terminal platform. It adds pause, restart and
// screen layout on top of the session; the rules live in Session.
type Game struct {
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	session *Session

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a Snake game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new session sized from cfg.
// The board stays fixed until the next Reset.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.session = nil

	g.startSession()
}

// Restart starts a fresh session on the same board size.
func (g *Game) Restart() {
	cfg := g.cfg
	cfg.Seed = g.rng.Int63()
	cfg.ScreenW = g.screenW
	cfg.ScreenH = g.screenH
	g.Reset(cfg)
}

// startSession builds the board from the current config and screen.
func (g *Game) startSession() {
	cellSize := g.cellSize()
	gridW := g.cfg.GridW
	if gridW <= 0 {
		gridW = g.screenW / cellSize
	}
	gridH := g.cfg.GridH
	if gridH <= 0 {
		gridH = g.screenH - hudHeight
	}

	grid, err := NewGrid(gridW, gridH, cellSize)
	if err != nil {
		g.tooSmall = true
		return
	}

	session, err := NewSession(grid, g.rng.Int63())
	if err != nil {
		g.tooSmall = true
		return
	}
	g.session = session
	g.tooSmall = !g.fits()
}

func (g *Game) cellSize() int {
	if g.cfg.CellSize <= 0 {
		return 1
	}
	return g.cfg.CellSize
}

// fits reports whether the current screen can show the whole board.
func (g *Game) fits() bool {
	if g.session == nil {
		return false
	}
	w, h := g.boardSize()
	return g.playArea().Fits(w, h)
}

// boardSize returns the board size in screen characters. A cell is
// CellSize columns wide and one row tall.
func (g *Game) boardSize() (int, int) {
	grid := g.session.Grid()
	return grid.Width * grid.CellSize, grid.Height
}

// playArea is the screen area below the HUD.
func (g *Game) playArea() core.Rect {
	return core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)
}

// Resize records a new screen size. The board keeps its size; if no session
// could be started yet, one is started now.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.session == nil {
		g.startSession()
		return
	}
	g.tooSmall = !g.fits()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionPause) && g.session != nil && g.session.Running() {
		g.paused = !g.paused
	}

	if g.session == nil || g.paused || g.tooSmall || !g.session.Running() {
		return core.StepResult{State: g.State()}
	}

	// Replay direction presses in order; each is checked against the
	// committed heading, so the last legal one wins.
	for _, a := range input.Actions() {
		if a.IsDirection() {
			g.session.SetDirection(actionDirection(a))
		}
	}

	g.session.Tick()
	return core.StepResult{State: g.State()}
}

// actionDirection maps a direction action to a heading.
func actionDirection(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	default:
		return DirRight
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused:  g.paused,
		Blocked: g.tooSmall,
	}
	if g.session != nil {
		st.Score = g.session.Score()
		st.GameOver = !g.session.Running()
	}
	return st
}

// Session returns the running session, or nil when the screen is too small
// to start one.
func (g *Game) Session() *Session {
	return g.session
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		need := fmt.Sprintf("Need %dx%d", MinGridSize*g.cellSize(), MinGridSize+hudHeight)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		w, h := g.boardSize()
		need := fmt.Sprintf("Need %dx%d", w, h+hudHeight)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	board := g.boardRect()
	g.renderBorder(dst, board)
	g.renderApple(dst, board, snap.Apple)
	g.renderSnake(dst, board, snap)

	switch {
	case !snap.Running:
		g.renderOverlay(dst, "Game over", fmt.Sprintf("Score: %d  -  press R to restart", snap.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardRect returns the board's screen area, centered below the HUD.
func (g *Game) boardRect() core.Rect {
	return g.playArea().CenterIn(g.boardSize())
}

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Score: %d  Length: %d", snap.Score, snap.Len())
	dst.DrawText(0, 0, hud)
}

// drawCell fills one board cell, which is cellSize columns wide.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, c Cell, r rune, color core.Color) {
	size := g.session.Grid().CellSize
	x := board.X + c.Col*size
	y := board.Y + c.Row
	for i := 0; i < size; i++ {
		dst.SetColored(x+i, y, r, color)
	}
}

// renderBorder draws the impassable ring.
func (g *Game) renderBorder(dst *core.Screen, board core.Rect) {
	grid := g.session.Grid()
	for col := 0; col < grid.Width; col++ {
		g.drawCell(dst, board, Cell{Col: col, Row: 0}, '█', core.ColorGray)
		g.drawCell(dst, board, Cell{Col: col, Row: grid.Height - 1}, '█', core.ColorGray)
	}
	for row := 1; row < grid.Height-1; row++ {
		g.drawCell(dst, board, Cell{Col: 0, Row: row}, '█', core.ColorGray)
		g.drawCell(dst, board, Cell{Col: grid.Width - 1, Row: row}, '█', core.ColorGray)
	}
}

// renderSnake draws the head and the striped body.
func (g *Game) renderSnake(dst *core.Screen, board core.Rect, snap Snapshot) {
	for i, seg := range snap.Segments[1:] {
		switch {
		case i%2 == 0:
			g.drawCell(dst, board, seg, '█', core.ColorYellow)
		default:
			g.drawCell(dst, board, seg, '█', core.ColorBlue)
		}
	}
	g.drawCell(dst, board, snap.Head(), '█', core.ColorBrightWhite)
}

// renderApple draws the apple as a dot in the first column of its cell.
func (g *Game) renderApple(dst *core.Screen, board core.Rect, a Cell) {
	size := g.session.Grid().CellSize
	dst.SetColored(board.X+a.Col*size, board.Y+a.Row, '●', core.ColorBrightGreen)
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().CenterIn(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
