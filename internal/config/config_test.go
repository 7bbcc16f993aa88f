package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brandqr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Render.ModuleSize)
	assert.Equal(t, 2, cfg.Render.Border)
	assert.Equal(t, 8, cfg.Render.SizeFactor)
	assert.InDelta(t, 1.3, cfg.Render.BorderFactor, 1e-9)
	assert.Equal(t, "logos", cfg.Logos.Dir)

	cat, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Contains(t, cat.Names(), "Blue")
	assert.True(t, cfg.Policy().NoColorize("github"))
}

func TestLoadMissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
render:
  module_size: 8
  size_factor: 6
logos:
  dir: /srv/logos
  watch: false
logging:
  level: debug
  format: text
palettes:
  - name: Sunset
    stops: ["#ff7e5f", "#feb47b"]
  - name: Black
    stops: ["#000000"]
no_colorize: [acme]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Render.ModuleSize)
	assert.Equal(t, 2, cfg.Render.Border, "unset keys keep defaults")
	assert.Equal(t, 6, cfg.Overlay().SizeFactor)
	assert.Equal(t, "/srv/logos", cfg.Logos.Dir)
	assert.False(t, cfg.Logos.Watch)
	assert.Equal(t, "debug", cfg.Logging.Level)

	cat, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunset", "Black"}, cat.Names())

	p := cfg.Policy()
	assert.True(t, p.NoColorize("acme"))
	assert.False(t, p.NoColorize("github"))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("BRANDQR_LOGOS_DIR", "/tmp/brand-logos")
	t.Setenv("BRANDQR_LOG_LEVEL", "warn")
	t.Setenv("BRANDQR_NO_COLORIZE", "acme,globex")

	cfg, err := Load(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "/tmp/brand-logos", cfg.Logos.Dir)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Policy().NoColorize("globex"))

	t.Setenv("BRANDQR_PORT", "7001")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port, "BRANDQR_PORT wins over PORT")
}

func TestValidate(t *testing.T) {
	tests := map[string]string{
		"port":          "server:\n  port: 70000\n",
		"module size":   "render:\n  module_size: 0\n",
		"border":        "render:\n  border: 0\n",
		"size factor":   "render:\n  size_factor: 1\n",
		"border factor": "render:\n  border_factor: 0.5\n",
		"burst":         "server:\n  rate_limit: 5\n  rate_burst: 0\n",
		"log level":     "logging:\n  level: loud\n",
		"log format":    "logging:\n  format: xml\n",
		"palette hex":   "palettes:\n  - name: Bad\n    stops: [\"#zzzzzz\"]\n",
		"palette empty": "palettes:\n  - name: Empty\n    stops: []\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [port"))
	assert.Error(t, err)
}
