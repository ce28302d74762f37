// Package dashboard parses dashboard command flags and launches the service.
package dashboard

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/louisbranch/poolview/internal/platform/cmd"
	"github.com/louisbranch/poolview/internal/services/dashboard"
)

// Config holds dashboard command configuration.
type Config struct {
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:"localhost:8090"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	ChartWidth         int           `env:"CHART_WIDTH" envDefault:"640"`
	ChartHeight        int           `env:"CHART_HEIGHT" envDefault:"360"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.DurationVar(&cfg.SessionIdleTimeout, "session-idle-timeout", cfg.SessionIdleTimeout, "Evict sessions idle for this long")
	fs.IntVar(&cfg.ChartWidth, "chart-width", cfg.ChartWidth, "Chart width in pixels")
	fs.IntVar(&cfg.ChartHeight, "chart-height", cfg.ChartHeight, "Chart height in pixels")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.ChartWidth <= 0 || cfg.ChartHeight <= 0 {
		return Config{}, fmt.Errorf("chart size must be positive, got %dx%d", cfg.ChartWidth, cfg.ChartHeight)
	}
	return cfg, nil
}

// Run starts the dashboard HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDashboard, func(ctx context.Context) error {
		server, err := dashboard.NewServer(dashboard.Config{
			HTTPAddr:           cfg.HTTPAddr,
			SessionIdleTimeout: cfg.SessionIdleTimeout,
			ChartWidth:         cfg.ChartWidth,
			ChartHeight:        cfg.ChartHeight,
			Logger:             log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init dashboard server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve dashboard: %w", err)
		}
		return nil
	})
}
