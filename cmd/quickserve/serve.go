package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sagarc03/quickserve/config"
	qshttp "github.com/sagarc03/quickserve/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the quickserve HTTP server and block until SIGINT or SIGTERM,
then drain in-flight requests and exit.

Routes:
  GET  /api/health
  POST /api/example
  GET  /api/example/:id`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 3000, "HTTP server port, 0 picks a free port (env: QUICKSERVE_SERVER_PORT or PORT)")
	serveCmd.Flags().Int64("max-body-bytes", 100*1024, "request body limit in bytes, 0 disables it")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handlerConfig := cfg.HandlerConfig()
	handler := qshttp.NewHandler(&handlerConfig)
	server := qshttp.NewServer(handler.Router(), cfg.ServerOptions())

	if err := server.Start(ctx, cfg.Server.Port); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	slog.Info("quickserve started",
		"port", server.Port(),
		"env", cfg.Env,
		"dev_mode", cfg.DevMode(),
		"max_body_bytes", cfg.Server.MaxBodyBytes,
		"cors", cfg.CORS.Enabled,
	)

	select {
	case <-ctx.Done():
		slog.Info("shutting down server...")
	case <-server.Done():
		slog.Warn("server exited unexpectedly")
	}

	// The signal context is already cancelled; drain on a fresh one.
	if err := server.Stop(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}
	return nil
}
