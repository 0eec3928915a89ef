package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/toastkit/internal/config"
	"github.com/vango-dev/toastkit/internal/errors"
	"github.com/vango-dev/toastkit/pkg/server"
	"github.com/vango-dev/toastkit/pkg/toast"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
		host       string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the toast page, WebSocket mirror and API",
		Long: `Serve the toast page, WebSocket mirror and REST API.

Configuration is read from --config, or from toastkit.json, .yaml or
.toml in the working directory. Without a file the defaults are used.

Examples:
  toastkit serve
  toastkit serve --port=8080
  toastkit serve --config=deploy/toastkit.yaml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			return runServe(cmd.Context(), cfg, watch)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (json, yaml or toml)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-apply toast defaults when the config file changes")

	return cmd
}

// loadConfig reads path, or the working directory when path is empty.
// A missing file in the working directory falls back to defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		if e := errors.FromError(err, "E101"); e.Code == "E100" {
			return config.New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func runServe(parent context.Context, cfg *config.Config, watch bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := cfg.Logger()
	slog.SetDefault(logger)

	toast.SetDefaults(cfg.ToastDefaults())

	opts := []toast.Option{
		toast.WithLogger(logger.With("component", "toast")),
	}
	perSec, burst := cfg.RateLimit()
	srvConfig := server.Config{
		Logger:      logger,
		StyleSheet:  cfg.Server.StyleSheet,
		RatePerSec:  perSec,
		Burst:       burst,
		MetricsPath: cfg.Metrics.Path,
	}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		opts = append(opts, toast.WithMetrics(toast.NewMetrics(toast.WithRegistry(reg))))
		srvConfig.Gatherer = reg
		srvConfig.Registerer = reg
	}
	srvConfig.Toaster = toast.New(opts...)

	if watch && cfg.Path() != "" {
		go func() {
			err := config.Watch(ctx, cfg.Path(), logger, func(next *config.Config) {
				toast.SetDefaults(next.ToastDefaults())
				logger.Info("toast defaults reloaded", "duration", toast.GetDefaults().Duration)
			})
			if err != nil {
				logger.Error("config watch stopped", "error", err)
			}
		}()
	}

	srv := server.New(srvConfig)
	info("Listening on http://%s", cfg.Address())
	if err := srv.ListenAndServe(ctx, cfg.Address()); err != nil {
		return errors.New("E204").Wrap(err)
	}
	success("Server stopped")
	return nil
}
