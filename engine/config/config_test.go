package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, renderer.BackendLimits{MaxVertices: 20000, MaxIndices: 30000, MaxTextures: 8}, cfg.Renderer.Limits())
	assert.Equal(t, renderer.PresentModeVSync, cfg.Renderer.PresentModeValue())
	assert.Equal(t, renderer.MSAA4x, cfg.Renderer.MSAAValue())
}

func TestDecodeOverridesDefaults(t *testing.T) {
	src := `
[window]
title = "Adder"
width = 800
height = 600

[renderer]
max_textures = 4
present_mode = "uncapped"
msaa = 1

[application]
clear_color = [0.2, 0.3, 0.4, 1.0]
frame_limit = 120.0

[log]
level = "debug"
format = "json"
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Adder", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 320, cfg.Window.MinWidth)
	assert.Equal(t, 4, cfg.Renderer.MaxTextures)
	assert.Equal(t, renderer.DefaultMaxVertices, cfg.Renderer.MaxVertices)
	assert.Equal(t, renderer.PresentModeUncapped, cfg.Renderer.PresentModeValue())
	assert.Equal(t, renderer.MSAAOff, cfg.Renderer.MSAAValue())
	assert.Equal(t, common.RGBA(0.2, 0.3, 0.4, 1), cfg.Application.Clear())
	assert.Equal(t, 120.0, cfg.Application.FrameLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("[renderer]\nmax_quads = 10\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestDecodeSyntaxErrorHasPosition(t *testing.T) {
	_, err := Decode(strings.NewReader("[window]\nwidth = = 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window.width"},
		{"max below min", func(c *Config) { c.Window.MaxWidth = 100 }, "window.max_width"},
		{"too few vertices", func(c *Config) { c.Renderer.MaxVertices = 3 }, "renderer.max_vertices"},
		{"too few indices", func(c *Config) { c.Renderer.MaxIndices = 5 }, "renderer.max_indices"},
		{"no texture slots", func(c *Config) { c.Renderer.MaxTextures = 0 }, "renderer.max_textures"},
		{"too many texture slots", func(c *Config) { c.Renderer.MaxTextures = 9 }, "renderer.max_textures"},
		{"msaa 2", func(c *Config) { c.Renderer.MSAA = 2 }, "renderer.msaa"},
		{"present mode", func(c *Config) { c.Renderer.PresentMode = "mailbox" }, "renderer.present_mode"},
		{"clear color", func(c *Config) { c.Application.ClearColor[3] = 1.5 }, "application.clear_color"},
		{"frame limit", func(c *Config) { c.Application.FrameLimit = -1 }, "application.frame_limit"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gates.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"From file\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "From file", cfg.Window.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[renderer]\nmsaa = 8\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	l.Info("hidden")
	l.Warn("shown", "slot", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"slot":3`)
}
