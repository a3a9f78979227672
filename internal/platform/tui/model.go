package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Game is the contract between a game and the terminal platform.
// Games draw into a core.Screen and never see Bubble Tea types.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Resizer is implemented by games that keep their board across window
// resizes instead of being Reset.
type Resizer interface {
	Resize(w, h int)
}

// Restarter is implemented by games that can start over on their current
// board size.
type Restarter interface {
	Restart()
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game and resets the game.
// cfg.ScreenW and cfg.ScreenH are the full terminal size; the game gets the
// area above the help line.
func NewModel(game Game, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}

	w, h := m.gameArea()
	m.screen = core.NewScreen(w, h)

	gameCfg := cfg
	gameCfg.ScreenW, gameCfg.ScreenH = w, h
	game.Reset(gameCfg)
	m.gameState = game.State()

	return m
}

// gameArea returns the screen size available to the game.
func (m Model) gameArea() (int, int) {
	helpH := lipgloss.Height(m.helpView())
	return m.width, max(m.height-helpH, 0)
}

func (m Model) helpView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickInterval),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction and pause requests are
// buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		// No tick is pending after game over, so restart restarts the loop.
		if m.gameState.GameOver {
			m.restart()
			return m, tickCmd(m.config.TickInterval)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// restart starts a new game on the same screen.
func (m *Model) restart() {
	if r, ok := m.game.(Restarter); ok {
		r.Restart()
	} else {
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		cfg.ScreenW, cfg.ScreenH = m.screen.Width(), m.screen.Height()
		m.game.Reset(cfg)
	}
	m.gameState = m.game.State()
	m.inputFrame.Clear()
}

// layout resizes the screen buffer after the window or help line changed.
func (m *Model) layout() {
	w, h := m.gameArea()
	m.screen.Resize(w, h)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(w, h)
	} else if !m.gameState.GameOver {
		cfg := m.config
		cfg.ScreenW, cfg.ScreenH = w, h
		m.game.Reset(cfg)
	}
	m.gameState = m.game.State()
}

// handleTick runs one simulation step and schedules the next one while the
// game is still running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval)
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
