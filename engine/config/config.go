// Package config loads the engine and host settings from TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/logger"
	"github.com/Carmen-Shannon/gates/engine/renderer"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned by Validate, wrapped with the offending field.
var ErrInvalidConfig = errors.New("config: invalid value")

// MaxTextureSlots is the number of texture bindings declared by the batch shader.
const MaxTextureSlots = 8

// Config is the full settings file.
type Config struct {
	Window      WindowConfig      `toml:"window"`
	Renderer    RendererConfig    `toml:"renderer"`
	Application ApplicationConfig `toml:"application"`
	Log         LogConfig         `toml:"log"`
}

// WindowConfig is the [window] section.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	MinWidth  int    `toml:"min_width"`
	MinHeight int    `toml:"min_height"`
	MaxWidth  int    `toml:"max_width"`
	MaxHeight int    `toml:"max_height"`
	// X and Y place the window; negative values leave placement to the platform.
	X int `toml:"x"`
	Y int `toml:"y"`
}

// RendererConfig is the [renderer] section.
type RendererConfig struct {
	MaxVertices   int    `toml:"max_vertices"`
	MaxIndices    int    `toml:"max_indices"`
	MaxTextures   int    `toml:"max_textures"`
	PresentMode   string `toml:"present_mode"`
	MSAA          int    `toml:"msaa"`
	ForceSoftware bool   `toml:"force_software"`
}

// ApplicationConfig is the [application] section.
type ApplicationConfig struct {
	// ClearColor is straight RGBA in [0, 1].
	ClearColor [4]float32 `toml:"clear_color"`
	// FrameLimit caps frames per second; 0 is uncapped.
	FrameLimit float64 `toml:"frame_limit"`
	Profiling  bool    `toml:"profiling"`
	Background bool    `toml:"background"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the settings used when no file is given.
//
// Returns:
//   - Config: the default settings
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "Gates",
			Width:     1280,
			Height:    720,
			MinWidth:  320,
			MinHeight: 240,
			MaxWidth:  3840,
			MaxHeight: 2160,
			X:         -1,
			Y:         -1,
		},
		Renderer: RendererConfig{
			MaxVertices: renderer.DefaultMaxVertices,
			MaxIndices:  renderer.DefaultMaxIndices,
			MaxTextures: renderer.DefaultMaxTextures,
			PresentMode: "vsync",
			MSAA:        4,
		},
		Application: ApplicationConfig{
			ClearColor: [4]float32{0.1, 0.1, 0.1, 1},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Decode reads TOML over the defaults and validates the result. Unknown keys are rejected.
//
// Parameters:
//   - r: the TOML source
//
// Returns:
//   - Config: the decoded settings
//   - error: a decode error, or ErrInvalidConfig wrapped with the field name
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and validates a TOML file.
//
// Parameters:
//   - path: the file path
//
// Returns:
//   - Config: the decoded settings
//   - error: an error if the file cannot be read or is invalid
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func invalid(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// Validate checks every field against its allowed range.
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the first offending field, or nil
func (c Config) Validate() error {
	w := c.Window
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return invalid("window.width/height", "must be positive, got %dx%d", w.Width, w.Height)
	case w.MinWidth < 0 || w.MinHeight < 0:
		return invalid("window.min_width/min_height", "must not be negative")
	case w.MaxWidth < w.MinWidth || w.MaxHeight < w.MinHeight:
		return invalid("window.max_width/max_height", "must not be below the minimum size")
	}

	r := c.Renderer
	switch {
	case r.MaxVertices < 4:
		return invalid("renderer.max_vertices", "must hold at least one quad (4), got %d", r.MaxVertices)
	case r.MaxIndices < 6:
		return invalid("renderer.max_indices", "must hold at least one quad (6), got %d", r.MaxIndices)
	case r.MaxTextures < 1 || r.MaxTextures > MaxTextureSlots:
		return invalid("renderer.max_textures", "must be in [1, %d], got %d", MaxTextureSlots, r.MaxTextures)
	case r.MSAA != 1 && r.MSAA != 4:
		return invalid("renderer.msaa", "must be 1 or 4, got %d", r.MSAA)
	}
	if _, ok := parsePresentMode(r.PresentMode); !ok {
		return invalid("renderer.present_mode", "must be \"vsync\" or \"uncapped\", got %q", r.PresentMode)
	}

	a := c.Application
	for i, v := range a.ClearColor {
		if v < 0 || v > 1 {
			return invalid("application.clear_color", "component %d must be in [0, 1], got %g", i, v)
		}
	}
	if a.FrameLimit < 0 {
		return invalid("application.frame_limit", "must not be negative, got %g", a.FrameLimit)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return invalid("log.level", "unknown level %q", c.Log.Level)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return invalid("log.format", "must be \"text\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}

func parsePresentMode(name string) (renderer.PresentMode, bool) {
	switch strings.ToLower(name) {
	case "vsync":
		return renderer.PresentModeVSync, true
	case "uncapped":
		return renderer.PresentModeUncapped, true
	default:
		return renderer.PresentModeVSync, false
	}
}

// PresentModeValue returns the parsed present mode, VSync when unrecognized.
func (r RendererConfig) PresentModeValue() renderer.PresentMode {
	mode, _ := parsePresentMode(r.PresentMode)
	return mode
}

// MSAAValue returns the sample count as a renderer setting.
func (r RendererConfig) MSAAValue() renderer.MSAASampleCount {
	if r.MSAA == 1 {
		return renderer.MSAAOff
	}
	return renderer.MSAA4x
}

// Limits returns the per-batch capacities.
func (r RendererConfig) Limits() renderer.BackendLimits {
	return renderer.BackendLimits{
		MaxVertices: r.MaxVertices,
		MaxIndices:  r.MaxIndices,
		MaxTextures: r.MaxTextures,
	}
}

// Clear returns the clear color.
func (a ApplicationConfig) Clear() common.Color {
	return common.RGBA(a.ClearColor[0], a.ClearColor[1], a.ClearColor[2], a.ClearColor[3])
}

// NewLogger builds a slog logger for the [log] section.
//
// Parameters:
//   - w: the destination of log records
//
// Returns:
//   - *slog.Logger: the configured logger
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logger.ParseLevel(l.Level)}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
