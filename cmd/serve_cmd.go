package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"aporo/pkg/config"
	"aporo/pkg/handlers"
	"aporo/pkg/logging"
	"aporo/pkg/services"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the landing page and trail viewer via HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Serve(ctx, cfg)
		},
	}
}

// Serve runs the web server until ctx is cancelled
func Serve(ctx context.Context, cfg *config.Config) error {
	mux := http.NewServeMux()
	handlers.Routes(mux)

	server := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if svc := services.Default(); svc != nil && cfg.CatalogFile != "" {
		go func() {
			if err := svc.WatchCatalog(ctx); err != nil {
				logging.Logger.Warn().Err(err).Msg("Catalog hot reload disabled")
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.PrintServerStartMessage()
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logging.Logger.Error().Err(err).Msg("Server error")
		return err
	case <-ctx.Done():
		logging.Logger.Info().Msg("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
