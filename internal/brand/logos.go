package brand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// DefaultRasterSize is the side in pixels logos are rasterized at before the
// compositor scales them down.
const DefaultRasterSize = 120

var labelPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// LogoStore resolves brand labels to <dir>/<label>.svg and caches the
// rasterized result. Lookups never fail: missing or broken assets are logged
// and reported as a miss.
type LogoStore struct {
	dir    string
	size   int
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]*image.NRGBA
}

// StoreOption tunes a LogoStore.
type StoreOption func(*LogoStore)

// WithRasterSize overrides DefaultRasterSize.
func WithRasterSize(px int) StoreOption {
	return func(s *LogoStore) {
		if px > 0 {
			s.size = px
		}
	}
}

// WithLogger sets the logger used for asset diagnostics.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *LogoStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewLogoStore creates a store over dir. The directory does not need to exist.
func NewLogoStore(dir string, opts ...StoreOption) *LogoStore {
	s := &LogoStore{
		dir:    filepath.Clean(dir),
		size:   DefaultRasterSize,
		logger: slog.Default(),
		cache:  make(map[string]*image.NRGBA),
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("component", "logos")
	return s
}

// Dir is the asset directory.
func (s *LogoStore) Dir() string { return s.dir }

// Path returns the asset path for label.
func (s *LogoStore) Path(label string) string {
	return filepath.Join(s.dir, label+".svg")
}

// Logo returns the rasterized logo for label.
func (s *LogoStore) Logo(ctx context.Context, label string) (image.Image, bool) {
	label = strings.ToLower(label)
	if !labelPattern.MatchString(label) {
		return nil, false
	}

	s.mu.RLock()
	img, ok := s.cache[label]
	s.mu.RUnlock()
	if ok {
		return img, true
	}

	if ctx.Err() != nil {
		return nil, false
	}

	img, err := s.load(label)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("no logo asset", "label", label)
		} else {
			s.logger.Warn("logo asset unusable", "label", label, "path", s.Path(label), "error", err)
		}
		return nil, false
	}

	s.mu.Lock()
	s.cache[label] = img
	s.mu.Unlock()
	return img, true
}

func (s *LogoStore) load(label string) (*image.NRGBA, error) {
	data, err := os.ReadFile(s.Path(label))
	if err != nil {
		return nil, err
	}
	return Rasterize(bytes.NewReader(data), s.size, s.size)
}

// Invalidate drops label from the cache.
func (s *LogoStore) Invalidate(label string) {
	s.mu.Lock()
	delete(s.cache, strings.ToLower(label))
	s.mu.Unlock()
}

// Purge empties the cache.
func (s *LogoStore) Purge() {
	s.mu.Lock()
	s.cache = make(map[string]*image.NRGBA)
	s.mu.Unlock()
}

// Cached reports the number of cached logos.
func (s *LogoStore) Cached() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

// Watch evicts cache entries whose SVG changes on disk. It blocks until ctx
// is canceled.
func (s *LogoStore) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close() //nolint:errcheck

	if err := w.Add(s.dir); err != nil {
		return fmt.Errorf("watching %s: %w", s.dir, err)
	}
	s.logger.Info("watching logo directory", "dir", s.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if !strings.EqualFold(filepath.Ext(name), ".svg") {
				continue
			}
			label := strings.TrimSuffix(name, filepath.Ext(name))
			s.Invalidate(label)
			s.logger.Debug("logo asset changed", "label", label, "op", ev.Op.String())
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("logo watcher error", "error", err)
		}
	}
}

// Rasterize renders SVG data into a w x h image with alpha.
func Rasterize(r io.Reader, w, h int) (img *image.NRGBA, err error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, errors.New("svg has no usable viewBox")
	}

	// The rasterizer panics on some malformed paths.
	defer func() {
		if rec := recover(); rec != nil {
			img, err = nil, fmt.Errorf("rasterizing svg: %v", rec)
		}
	}()

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	out := image.NewNRGBA(rgba.Bounds())
	draw.Draw(out, out.Bounds(), rgba, image.Point{}, draw.Src)
	return out, nil
}
