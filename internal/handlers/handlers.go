package handlers

import (
    "context"
    "log/slog"
    "net"
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/cristianadrielbraun/brandqr/internal/palette"
    "github.com/cristianadrielbraun/brandqr/internal/render"
    "github.com/cristianadrielbraun/brandqr/web"
    "github.com/cristianadrielbraun/brandqr/web/components"
)

// Renderer is the part of render.Pipeline the handlers use.
type Renderer interface {
    Generate(ctx context.Context, req render.Request) (*render.Result, error)
    Locked(text string) bool
    Catalog() *palette.Catalog
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
    qr     Renderer
    logger *slog.Logger
}

// New returns a new Handler instance.
func New(qr Renderer, logger *slog.Logger) *Handler {
    if logger == nil {
        logger = slog.Default()
    }
    return &Handler{qr: qr, logger: logger.With("component", "http")}
}

// Register mounts every route on r. limit guards the rendering endpoints and
// may be nil.
func (h *Handler) Register(r gin.IRouter, limit gin.HandlerFunc) {
    guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
        if limit == nil {
            return []gin.HandlerFunc{handler}
        }
        return []gin.HandlerFunc{limit, handler}
    }

    api := r.Group("/api")
    {
        api.GET("/qr", guarded(h.QRCodeHandler)...)
        api.GET("/palettes", h.Palettes)
        api.GET("/htmx/preview", guarded(h.Preview)...)
        api.POST("/htmx/toast", h.GenericToast)
    }

    // Static assets
    r.StaticFS("/web/assets", http.FS(web.Assets()))

    r.GET("/", h.HomePage)
    r.GET("/sitemap.xml", h.SitemapXML)
    r.GET("/healthz", h.Healthz)
}

// HomePage renders the form with the default palette selected.
func (h *Handler) HomePage(c *gin.Context) {
    cat := h.qr.Catalog()
    data := components.PreviewData{
        Palette:  cat.Default().Name,
        Palettes: cat.Names(),
    }
    c.Header("Content-Type", "text/html; charset=utf-8")
    c.Status(http.StatusOK)
    if err := components.HomePage(data).Render(c.Request.Context(), c.Writer); err != nil {
        _ = c.Error(err)
    }
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SitemapXML serves a minimal sitemap for the site.
func (h *Handler) SitemapXML(c *gin.Context) {
    c.Header("Content-Type", "application/xml; charset=utf-8")
    scheme := "https"
    host := c.Request.Host
    if xf := c.Request.Header.Get("X-Forwarded-Proto"); xf != "" {
        scheme = xf
    } else if c.Request.TLS == nil && isLocalHost(host) {
        scheme = "http"
    }
    base := scheme + "://" + host
    xml := "" +
        "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
        "<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n" +
        "  <url>\n" +
        "    <loc>" + base + "/" + "</loc>\n" +
        "    <changefreq>weekly</changefreq>\n" +
        "    <priority>1.0</priority>\n" +
        "  </url>\n" +
        "</urlset>\n"
    c.String(http.StatusOK, xml)
}

func isLocalHost(host string) bool {
    if h, _, err := net.SplitHostPort(host); err == nil {
        host = h
    }
    return host == "localhost" || host == "127.0.0.1"
}
