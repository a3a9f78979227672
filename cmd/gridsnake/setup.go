package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

// loadConfig loads the config file with the global flags that were set on
// the command line applied on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var opts []config.Option

	flags := cmd.Flags()
	if flags.Changed("seed") {
		opts = append(opts, config.WithSeed(flagSeed))
	}
	if flags.Changed("interval") {
		d, err := time.ParseDuration(flagInterval)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid --interval %q: %w", flagInterval, err)
		}
		opts = append(opts, config.WithTickInterval(d))
	}
	if flags.Changed("log-level") {
		opts = append(opts, config.WithLogLevel(flagLogLevel))
	}

	return config.Load(flagConfig, opts...)
}

// newLogger creates a stderr logger for a server.
func newLogger(cfg config.Config, prefix string) (*log.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
