package engine

import (
	"time"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/config"
	"github.com/Carmen-Shannon/gates/engine/profiler"
	"github.com/Carmen-Shannon/gates/engine/renderer"
	"github.com/Carmen-Shannon/gates/engine/renderer/wgpu_backend"
	"github.com/Carmen-Shannon/gates/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithName sets the application name used as the window title prefix.
//
// Parameters:
//   - name: the application name
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithName(name string) EngineBuilderOption {
	return func(e *engine) {
		if name != "" {
			e.name = name
		}
	}
}

// WithHandler sets the callbacks driven by the frame loop.
//
// Parameters:
//   - h: the frame handler, optionally also a Launcher, Closer or Resizer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithHandler(h FrameHandler) EngineBuilderOption {
	return func(e *engine) {
		e.handler = h
	}
}

// WithWindowOptions appends options passed to the window on launch.
//
// Parameters:
//   - options: window builder options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindowOptions(options ...window.WindowBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.windowOptions = append(e.windowOptions, options...)
	}
}

// WithRendererOptions appends options passed to the batch renderer on launch.
//
// Parameters:
//   - options: renderer builder options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRendererOptions(options ...renderer.RendererBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.rendererOptions = append(e.rendererOptions, options...)
	}
}

// WithBackendOptions appends options passed to the WebGPU backend on launch.
//
// Parameters:
//   - options: backend builder options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBackendOptions(options ...wgpu_backend.BackendBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.backendOptions = append(e.backendOptions, options...)
	}
}

// WithClearColor sets the straight-alpha background color of every frame.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClearColor(c common.Color) EngineBuilderOption {
	return func(e *engine) {
		e.clearColor = c
	}
}

// WithFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.frameLimit = 0
			return
		}
		e.frameLimit = time.Duration(float64(time.Second) / fps)
	}
}

// WithProfiling enables or disables periodic profiler output to the log.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//   - options: profiler builder options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool, options ...profiler.ProfilerBuilderOption) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
		e.profilerOptions = append(e.profilerOptions, options...)
	}
}

// WithConfig applies a validated configuration file.
// Options given after it override the values it sets.
//
// Parameters:
//   - cfg: the configuration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.Config) EngineBuilderOption {
	return func(e *engine) {
		w := cfg.Window
		r := cfg.Renderer
		a := cfg.Application

		WithName(w.Title)(e)
		WithWindowOptions(
			window.WithSize(w.Width, w.Height),
			window.WithMinSize(w.MinWidth, w.MinHeight),
			window.WithMaxSize(w.MaxWidth, w.MaxHeight),
			window.WithPosition(w.X, w.Y),
		)(e)
		WithRendererOptions(
			renderer.WithMaxVertices(r.MaxVertices),
			renderer.WithMaxIndices(r.MaxIndices),
			renderer.WithMaxTextures(r.MaxTextures),
		)(e)
		WithBackendOptions(
			wgpu_backend.WithPresentMode(r.PresentModeValue()),
			wgpu_backend.WithMSAA(r.MSAAValue()),
			wgpu_backend.WithForceSoftwareRenderer(r.ForceSoftware),
		)(e)
		WithClearColor(a.Clear())(e)
		WithFrameLimit(a.FrameLimit)(e)
		WithProfiling(a.Profiling)(e)
	}
}
