package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/brandqr/internal/brand"
	"github.com/cristianadrielbraun/brandqr/internal/config"
	"github.com/cristianadrielbraun/brandqr/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and QR API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			mgr, logger := logging.NewManager(cfg.Logging)
			defer mgr.Close() //nolint:errcheck
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			hup := make(chan os.Signal, 1)
			signal.Notify(hup, syscall.SIGHUP)
			defer signal.Stop(hup)

			return serve(ctx, cfg, logger, hup, func(store *brand.LogoStore) error {
				return reload(*configPath, mgr, store, logger)
			})
		},
	}
}

// serve runs the HTTP server until ctx is canceled. Each value on hup calls
// onHUP with the live logo store; either may be nil.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, hup <-chan os.Signal, onHUP func(*brand.LogoStore) error) error {
	gin.SetMode(gin.ReleaseMode)

	pipeline, store, err := buildPipeline(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Logos.Watch {
		go func() {
			if err := store.Watch(ctx); err != nil {
				logger.Warn("logo hot reload disabled", "dir", store.Dir(), "error", err)
			}
		}()
	}

	if hup != nil && onHUP != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-hup:
					if err := onHUP(store); err != nil {
						logger.Error("reload failed", "error", err)
					}
				}
			}
		}()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           newEngine(ctx, cfg, pipeline, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("brandqr listening",
			"addr", srv.Addr,
			"logos", cfg.Logos.Dir,
			"palettes", len(pipeline.Catalog().Names()),
			"logging", cfg.Logging.String(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// reload re-reads the config file on SIGHUP. Only the log level and the logo
// cache are refreshed; every other setting needs a restart.
func reload(path string, mgr *logging.Manager, store *brand.LogoStore, logger *slog.Logger) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	mgr.SetLevel(cfg.Logging.Level)
	dropped := store.Cached()
	store.Purge()
	logger.Info("configuration reloaded", "level", mgr.Level(), "logos_dropped", dropped)
	return nil
}
