package cli

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/brandqr/internal/brand"
	"github.com/cristianadrielbraun/brandqr/internal/config"
	"github.com/cristianadrielbraun/brandqr/internal/handlers"
	"github.com/cristianadrielbraun/brandqr/internal/middleware"
	"github.com/cristianadrielbraun/brandqr/internal/render"
)

// buildPipeline assembles the logo store and render pipeline from cfg.
func buildPipeline(cfg *config.Config, logger *slog.Logger) (*render.Pipeline, *brand.LogoStore, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, nil, err
	}
	store := brand.NewLogoStore(cfg.Logos.Dir,
		brand.WithRasterSize(cfg.Logos.RasterSize),
		brand.WithLogger(logger),
	)
	p := render.New(render.Options{
		Catalog:    cat,
		Policy:     cfg.Policy(),
		Logos:      store,
		ModuleSize: cfg.Render.ModuleSize,
		Border:     cfg.Render.Border,
		Overlay:    cfg.Overlay(),
		Logger:     logger,
	})
	return p, store, nil
}

// newEngine builds the gin engine with middleware and routes. The rate
// limiter's janitor stops with ctx.
func newEngine(ctx context.Context, cfg *config.Config, qr handlers.Renderer, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(logger))

	var limit gin.HandlerFunc
	if cfg.Server.RateLimit > 0 {
		limit = middleware.NewRateLimiter(ctx, cfg.Server.RateLimit, cfg.Server.RateBurst).Handler()
	}

	handlers.New(qr, logger).Register(r, limit)
	return r
}
