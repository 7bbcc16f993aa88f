// Package config loads the service configuration from YAML and environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cristianadrielbraun/brandqr/internal/brand"
	"github.com/cristianadrielbraun/brandqr/internal/logging"
	"github.com/cristianadrielbraun/brandqr/internal/palette"
	"github.com/cristianadrielbraun/brandqr/internal/render"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig    `yaml:"server"`
	Render     RenderConfig    `yaml:"render"`
	Logos      LogosConfig     `yaml:"logos"`
	Logging    logging.Config  `yaml:"logging"`
	Palettes   []PaletteConfig `yaml:"palettes"`
	NoColorize []string        `yaml:"no_colorize"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port      int     `yaml:"port"`
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// RenderConfig holds QR geometry.
type RenderConfig struct {
	ModuleSize   int     `yaml:"module_size"`
	Border       int     `yaml:"border"`
	SizeFactor   int     `yaml:"size_factor"`
	BorderFactor float64 `yaml:"border_factor"`
}

// LogosConfig points at the SVG asset library.
type LogosConfig struct {
	Dir        string `yaml:"dir"`
	RasterSize int    `yaml:"raster_size"`
	Watch      bool   `yaml:"watch"`
}

// PaletteConfig is one named gradient in hex form.
type PaletteConfig struct {
	Name  string   `yaml:"name"`
	Stops []string `yaml:"stops"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8080,
			RateLimit: 10,
			RateBurst: 20,
		},
		Render: RenderConfig{
			ModuleSize:   render.DefaultModuleSize,
			Border:       render.DefaultBorder,
			SizeFactor:   render.DefaultOverlay.SizeFactor,
			BorderFactor: render.DefaultOverlay.BorderFactor,
		},
		Logos: LogosConfig{
			Dir:        "logos",
			RasterSize: brand.DefaultRasterSize,
			Watch:      true,
		},
		Logging:    logging.DefaultConfig(),
		NoColorize: append([]string(nil), brand.DefaultNoColorize...),
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	// PORT is what most container platforms inject.
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("BRANDQR_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("BRANDQR_LOGOS_DIR"); v != "" {
		c.Logos.Dir = v
	}
	if v := os.Getenv("BRANDQR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("BRANDQR_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("BRANDQR_LOG_FILE"); v != "" {
		c.Logging.FilePath = v
	}
	if v := os.Getenv("BRANDQR_NO_COLORIZE"); v != "" {
		c.NoColorize = strings.Split(v, ",")
	}
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		return fmt.Errorf("rate_burst must be positive when rate_limit is set")
	}
	if c.Render.ModuleSize < 1 || c.Render.ModuleSize > 100 {
		return fmt.Errorf("invalid module_size: %d", c.Render.ModuleSize)
	}
	if c.Render.Border < 1 {
		return fmt.Errorf("border must be at least one module, got %d", c.Render.Border)
	}
	if c.Render.SizeFactor < 2 {
		return fmt.Errorf("size_factor must be at least 2, got %d", c.Render.SizeFactor)
	}
	if c.Render.BorderFactor < 1 {
		return fmt.Errorf("border_factor must be at least 1, got %g", c.Render.BorderFactor)
	}
	if c.Logos.Dir == "" {
		return fmt.Errorf("logos dir is required")
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

// Catalog builds the palette table. An empty palettes section keeps the
// builtin table.
func (c *Config) Catalog() (*palette.Catalog, error) {
	if len(c.Palettes) == 0 {
		return palette.DefaultCatalog(), nil
	}
	ps := make([]palette.Palette, 0, len(c.Palettes))
	for _, pc := range c.Palettes {
		p, err := palette.FromHex(pc.Name, pc.Stops...)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return palette.NewCatalog(ps)
}

// Policy builds the no-colorize set.
func (c *Config) Policy() *brand.Policy {
	return brand.NewPolicy(c.NoColorize...)
}

// Overlay returns the logo sizing options.
func (c *Config) Overlay() render.OverlayOptions {
	return render.OverlayOptions{SizeFactor: c.Render.SizeFactor, BorderFactor: c.Render.BorderFactor}
}
