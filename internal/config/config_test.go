package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4000000.0, cfg.Contours.MaxArea)
	assert.Equal(t, 11, cfg.Filters.AdaptiveBlock)
	assert.EqualValues(t, 2, cfg.Filters.AdaptiveC)
	assert.Equal(t, RGB{128, 255, 0}, cfg.Drawing.ContourColor)
	assert.False(t, cfg.Rings.Enabled())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	src := `
filters:
  blur_kernel: 21
  threshold: 40
  threshold_method: otsu
contours:
  max_area: 1000
rings:
  start: 10
  stop: 50
  step: 10
log_level: debug
`
	cfg, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 21, cfg.Filters.BlurKernel)
	assert.EqualValues(t, 40, cfg.Filters.Threshold)
	assert.Equal(t, "otsu", cfg.Filters.ThresholdMethod)
	assert.Equal(t, 5, cfg.Filters.CloseKernel, "untouched keys keep defaults")
	assert.Equal(t, 1000.0, cfg.Contours.MaxArea)
	assert.True(t, cfg.Rings.Enabled())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "filters:\n  blurr_kernel: 3\n"},
		{"even blur kernel", "filters:\n  blur_kernel: 4\n"},
		{"threshold out of range", "filters:\n  threshold: 300\n"},
		{"unknown threshold method", "filters:\n  threshold_method: kittler\n"},
		{"bad adaptive block", "filters:\n  adaptive_block: 2\n"},
		{"non-positive max area", "contours:\n  max_area: 0\n"},
		{"bad log level", "log_level: chatty\n"},
		{"malformed yaml", "filters: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cellscope.yaml")

	out, err := Default().Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, out, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRGB(t *testing.T) {
	c := RGB{1, 2, 3}.RGBA()
	assert.EqualValues(t, 1, c.R)
	assert.EqualValues(t, 2, c.G)
	assert.EqualValues(t, 3, c.B)
	assert.EqualValues(t, 255, c.A)
}

func TestConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogLevel = "info"

	log, err := cfg.NewLogger(&buf)
	require.NoError(t, err)

	log.Debug("test", "hidden message", nil)
	log.Info("test", "shown message", nil)

	assert.NotContains(t, buf.String(), "hidden message")
	assert.Contains(t, buf.String(), "shown message")

	cfg.LogLevel = "loud"
	_, err = cfg.NewLogger(&buf)
	assert.Error(t, err)
}
