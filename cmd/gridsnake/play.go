package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

The board is sized from the terminal at start (or from terminal.grid_width
and terminal.grid_height in the config) and stays fixed until restart.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - More help
  Q/Ctrl+C         - Quit

Examples:
  gridsnake play
  gridsnake play --seed 42
  gridsnake play --interval 150ms
  gridsnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rc := cfg.Runtime()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	return tui.Run(snake.New(), rc)
}
