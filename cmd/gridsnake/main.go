// gridsnake is a grid snake game for the terminal, SSH and the browser.
//
// Usage:
//
//	gridsnake play     - Play in this terminal
//	gridsnake serve    - Start SSH server for remote play
//	gridsnake web      - Serve the canvas version over HTTP
//	gridsnake config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.gridsnake/config.yaml, ./configs/gridsnake.yaml)
//	--seed <value>      - Set RNG seed for reproducible apple placement
//	--interval <dur>    - Set the tick interval (default: 100ms)
//	--log-level <level> - Server log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagInterval string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid snake - steer a growing snake around a bordered board",
	Long: `gridsnake is the classic snake game on a bordered grid. Eat apples to
grow; hitting the border or your own body ends the game.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the canvas version over HTTP
  config   - Print the effective configuration

Examples:
  gridsnake play
  gridsnake play --seed 42 --interval 80ms
  gridsnake serve
  gridsnake web --addr :9000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagInterval, "interval", "", "Tick interval, e.g. 100ms (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}
