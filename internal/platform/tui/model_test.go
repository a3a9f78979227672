package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func newTestModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	g := snake.New()
	cfg := core.RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 50 * time.Millisecond,
		Seed:         99,
		CellSize:     2,
	}
	m := NewModel(g, cfg)
	if g.Session() == nil {
		t.Fatal("NewModel should start a session on an 80x24 terminal")
	}
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelLeavesRoomForHelp(t *testing.T) {
	_, g := newTestModel(t)

	grid := g.Session().Grid()
	if grid.Width != 40 || grid.Height != 22 {
		t.Errorf("Grid = %dx%d, expected 40x22", grid.Width, grid.Height)
	}
}

func TestModelTickSchedulingStopsOnGameOver(t *testing.T) {
	m, g := newTestModel(t)

	if m.Init() == nil {
		t.Fatal("Init should schedule the first tick")
	}

	// Heading right from (7,5) on a 40-wide board: the border is 32 cells away.
	var cmd tea.Cmd
	for i := 0; i < 40; i++ {
		m, cmd = update(t, m, TickMsg(time.Now()))
		if m.State().GameOver {
			break
		}
		if cmd == nil {
			t.Fatalf("tick %d: next tick not scheduled while running", i)
		}
	}

	if !m.State().GameOver {
		t.Fatal("Game should be over after hitting the right border")
	}
	if cmd != nil {
		t.Error("No tick should be scheduled after game over")
	}
	if g.Session().Running() {
		t.Error("Session should not be running")
	}

	// Restart resumes the loop
	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("Restart should schedule a tick")
	}
	if m.State().GameOver || m.State().Score != 0 {
		t.Errorf("State after restart = %+v", m.State())
	}
	if !g.Session().Running() {
		t.Error("Session should be running after restart")
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	m, g := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))
	head := g.Session().Snake().Head()

	_, cmd := update(t, m, runeKey('r'))
	if cmd != nil {
		t.Error("Restart while running should not schedule another tick")
	}
	if !g.Session().Snake().Head().Equals(head) {
		t.Error("Restart while running should not reset the game")
	}
}

func TestModelDirectionAppliedOnTick(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := g.Session().Snake().Head(); !got.Equals(snake.Cell{Col: 7, Row: 5}) {
		t.Fatalf("Key press should not move the snake, head = %v", got)
	}

	update(t, m, TickMsg(time.Now()))
	if got := g.Session().Snake().Head(); !got.Equals(snake.Cell{Col: 7, Row: 6}) {
		t.Errorf("Head after tick = %v, expected (7,6)", got)
	}
}

func TestModelPause(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg(time.Now()))
	if !m.State().Paused {
		t.Fatal("Game should be paused")
	}
	if cmd == nil {
		t.Error("Ticks should continue while paused")
	}

	head := g.Session().Snake().Head()
	m, _ = update(t, m, TickMsg(time.Now()))
	if !g.Session().Snake().Head().Equals(head) {
		t.Error("Snake should not move while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	m, g := newTestModel(t)
	before := g.Session().Grid()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.Session().Grid() != before {
		t.Error("Resize should not change the board")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !m.State().Blocked {
		t.Error("State should be blocked in a small window")
	}
	if !strings.Contains(m.View(), "too small") {
		t.Error("View should show the too-small overlay")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("View should contain the score")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View should contain the help line")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	short := m.screen.Height()

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should show the full help")
	}
	if m.screen.Height() >= short {
		t.Errorf("Full help should take more rows: screen height %d, was %d", m.screen.Height(), short)
	}
}
