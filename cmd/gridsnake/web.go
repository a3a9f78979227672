package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the canvas version over HTTP",
	Long: `Start an HTTP server with the browser version of the game.

Every browser tab plays its own game over a WebSocket. The board is
web.canvas_width x web.canvas_height pixels with web.cell_size pixel cells
(400x400 with 10px cells by default).

Examples:
  gridsnake web                # Listen on :8080
  gridsnake web --addr :9000   # Listen on port 9000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (host:port, overrides config)")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagWebAddr != "" {
		cfg.Web.Address = flagWebAddr
	}

	logger, err := newLogger(cfg, "gridsnake-web")
	if err != nil {
		return err
	}

	server, err := web.NewServer(web.Config{
		Address:      cfg.Web.Address,
		CanvasWidth:  cfg.Web.CanvasWidth,
		CanvasHeight: cfg.Web.CanvasHeight,
		CellPx:       cfg.Web.CellSize,
		TickInterval: cfg.TickInterval(),
		Seed:         cfg.Game.Seed,
	}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	fmt.Printf("Serving gridsnake on %s\n", cfg.Web.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.Run(ctx)
}
