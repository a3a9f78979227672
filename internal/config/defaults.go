package config

import (
	_ "embed"
)

//go:embed defaults/gridsnake.yaml
var defaultYAML []byte

// Default returns the hard-coded default configuration. It matches the
// embedded defaults/gridsnake.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickIntervalMS: 100,
		},
		Terminal: TerminalConfig{
			CellSize: 2,
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Web: WebConfig{
			Address:      ":8080",
			CanvasWidth:  400,
			CanvasHeight: 400,
			CellSize:     10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
