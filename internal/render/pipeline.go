// Package render turns text into a gradient-tinted QR code with an optional
// brand logo at its center.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"

	"github.com/cristianadrielbraun/brandqr/internal/brand"
	"github.com/cristianadrielbraun/brandqr/internal/palette"
)

// LogoSource resolves a brand label to a logo raster. A miss is not an error.
type LogoSource interface {
	Logo(ctx context.Context, label string) (image.Image, bool)
}

// Policy reports brands that must be rendered monochrome.
type Policy interface {
	NoColorize(label string) bool
}

// Options configures a Pipeline. Zero values fall back to defaults.
type Options struct {
	Catalog    *palette.Catalog
	Policy     Policy
	Logos      LogoSource
	ModuleSize int
	Border     int
	Overlay    OverlayOptions
	Logger     *slog.Logger
}

// Pipeline holds immutable configuration and may be shared across
// goroutines.
type Pipeline struct {
	catalog    *palette.Catalog
	policy     Policy
	logos      LogoSource
	moduleSize int
	border     int
	overlay    OverlayOptions
	logger     *slog.Logger
}

// New builds a Pipeline.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		catalog:    opts.Catalog,
		policy:     opts.Policy,
		logos:      opts.Logos,
		moduleSize: opts.ModuleSize,
		border:     opts.Border,
		overlay:    opts.Overlay.withDefaults(),
		logger:     opts.Logger,
	}
	if p.catalog == nil {
		p.catalog = palette.DefaultCatalog()
	}
	if p.policy == nil {
		p.policy = brand.DefaultPolicy()
	}
	if p.moduleSize <= 0 {
		p.moduleSize = DefaultModuleSize
	}
	if p.border <= 0 {
		p.border = DefaultBorder
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.logger = p.logger.With("component", "render")
	return p
}

// Catalog exposes the palette table the pipeline renders with.
func (p *Pipeline) Catalog() *palette.Catalog { return p.catalog }

// Request is one QR generation.
type Request struct {
	Text    string
	Palette string
}

// Result is the rendered code and what was decided while rendering it.
type Result struct {
	Image   *image.RGBA
	Palette palette.Palette
	Domain  string
	Label   string
	Locked  bool
	HasLogo bool
}

// PNG encodes the image.
func (r *Result) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePNG streams the image as PNG.
func (r *Result) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Locked reports whether text points at a no-colorize brand, in which case
// the palette choice is ignored.
func (p *Pipeline) Locked(text string) bool {
	label := brand.PrimaryLabel(brand.ExtractDomain(text))
	return label != "" && p.policy.NoColorize(label)
}

// Generate runs the full pipeline for one request.
func (p *Pipeline) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Domain: brand.ExtractDomain(req.Text)}
	res.Label = brand.PrimaryLabel(res.Domain)
	res.Locked = res.Label != "" && p.policy.NoColorize(res.Label)

	pal, err := p.selectPalette(req.Palette, res.Locked)
	if err != nil {
		return nil, err
	}
	res.Palette = pal

	grid, err := Encode(req.Text)
	if err != nil {
		return nil, err
	}
	mask := RenderMask(grid, p.moduleSize, p.border)

	mode := LogoBlack
	var ref color.Color
	if res.Locked {
		res.Image = Plain(mask)
	} else {
		b := mask.Bounds()
		gradient, err := Gradient(b.Dx(), b.Dy(), pal)
		if err != nil {
			return nil, err
		}
		if res.Image, err = ApplyGradient(mask, gradient); err != nil {
			return nil, err
		}
		mode = LogoTint
		ref = gradient.RGBAAt(b.Dx()/2, b.Dy()/2)
	}

	if res.Label != "" && p.logos != nil {
		if raw, ok := p.logos.Logo(ctx, res.Label); ok {
			res.Image = OverlayLogo(res.Image, PrepareLogo(raw, mode, ref), p.overlay)
			res.HasLogo = true
		}
	}

	p.logger.Debug("qr rendered",
		"bytes", len(req.Text),
		"modules", grid.Size(),
		"size", res.Image.Bounds().Dx(),
		"palette", pal.Name,
		"label", res.Label,
		"locked", res.Locked,
		"logo", res.HasLogo,
		"logo_mode", mode.String(),
	)
	return res, nil
}

func (p *Pipeline) selectPalette(name string, locked bool) (palette.Palette, error) {
	if locked {
		if pal, err := p.catalog.Lookup(palette.Neutral); err == nil {
			return pal, nil
		}
		return palette.Palette{Name: palette.Neutral, Stops: []palette.ColorStop{{}}}, nil
	}
	if name == "" {
		return p.catalog.Default(), nil
	}
	pal, err := p.catalog.Lookup(name)
	if errors.Is(err, palette.ErrNotFound) {
		return palette.Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return pal, err
}
