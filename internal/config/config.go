// Package config provides YAML-based configuration for gridsnake.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Validation errors.
var (
	ErrInvalidInterval = errors.New("config: tick interval must be positive")
	ErrInvalidCellSize = errors.New("config: cell size must be positive")
	ErrInvalidLogLevel = errors.New("config: unknown log level")

	// ErrGridTooSmall is snake.ErrGridTooSmall, so either can be matched.
	ErrGridTooSmall = snake.ErrGridTooSmall
)

// Config contains all gridsnake configuration.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Terminal TerminalConfig `yaml:"terminal"`
	SSH      SSHConfig      `yaml:"ssh"`
	Web      WebConfig      `yaml:"web"`
	Log      LogConfig      `yaml:"log"`
}

// GameConfig defines settings shared by every front end.
type GameConfig struct {
	TickIntervalMS int   `yaml:"tick_interval_ms"`
	Seed           int64 `yaml:"seed"`
}

// TerminalConfig defines the board for play and serve.
type TerminalConfig struct {
	GridWidth  int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
	CellSize   int `yaml:"cell_size"`
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// WebConfig defines the browser server and canvas.
type WebConfig struct {
	Address      string `yaml:"address"`
	CanvasWidth  int    `yaml:"canvas_width"`
	CanvasHeight int    `yaml:"canvas_height"`
	CellSize     int    `yaml:"cell_size"`
}

// LogConfig defines server logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TickInterval returns the tick interval as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Game.TickIntervalMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMinutes) * time.Minute
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return lvl, nil
}

// Runtime returns the terminal runtime config. Screen size is filled in by
// the platform.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickInterval = c.TickInterval()
	rc.Seed = c.Game.Seed
	rc.GridW = c.Terminal.GridWidth
	rc.GridH = c.Terminal.GridHeight
	rc.CellSize = c.Terminal.CellSize
	return rc
}

// Validate checks that the configuration can start a game.
func (c Config) Validate() error {
	if c.Game.TickIntervalMS <= 0 {
		return fmt.Errorf("%w: got %dms", ErrInvalidInterval, c.Game.TickIntervalMS)
	}
	if c.Terminal.CellSize <= 0 {
		return fmt.Errorf("%w: terminal cell_size %d", ErrInvalidCellSize, c.Terminal.CellSize)
	}
	if c.Web.CellSize <= 0 {
		return fmt.Errorf("%w: web cell_size %d", ErrInvalidCellSize, c.Web.CellSize)
	}

	// A zero terminal dimension is derived from the window later.
	gw, gh := c.Terminal.GridWidth, c.Terminal.GridHeight
	if gw != 0 || gh != 0 {
		if gw == 0 {
			gw = snake.MinGridSize
		}
		if gh == 0 {
			gh = snake.MinGridSize
		}
		if _, err := snake.NewGrid(gw, gh, c.Terminal.CellSize); err != nil {
			return fmt.Errorf("config: terminal grid: %w", err)
		}
	}

	if _, err := snake.GridFromSurface(c.Web.CanvasWidth, c.Web.CanvasHeight, c.Web.CellSize); err != nil {
		return fmt.Errorf("config: web canvas: %w", err)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
