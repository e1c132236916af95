package engine

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/logger"
	"github.com/Carmen-Shannon/gates/engine/profiler"
	"github.com/Carmen-Shannon/gates/engine/renderer"
	"github.com/Carmen-Shannon/gates/engine/renderer/wgpu_backend"
	"github.com/Carmen-Shannon/gates/engine/window"
)

var (
	// ErrNoHandler is returned by Launch when no FrameHandler was configured.
	ErrNoHandler = errors.New("engine: no frame handler")
	// ErrAlreadyRunning is returned by Launch while a previous launch is still running.
	ErrAlreadyRunning = errors.New("engine: already running")
	// ErrHandlerFailed is returned by Launch when a handler callback returns StatusError.
	ErrHandlerFailed = errors.New("engine: handler failed")
)

// Status is the result of a handler callback and steers the frame loop.
type Status int

const (
	// StatusOK continues the frame loop.
	StatusOK Status = iota
	// StatusQuit ends the frame loop normally.
	StatusQuit
	// StatusError ends the frame loop and makes Launch return ErrHandlerFailed.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusQuit:
		return "quit"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// FrameHandler receives the per-frame callbacks of the engine.
type FrameHandler interface {
	// OnUpdate advances the application state. Input has already been updated for this frame.
	//
	// Parameters:
	//   - e: the running engine
	//   - dt: seconds elapsed since the previous frame
	//
	// Returns:
	//   - Status: StatusOK to continue
	OnUpdate(e Engine, dt float32) Status

	// OnRender issues the frame's draw calls. The frame has already begun and is ended after the call.
	//
	// Parameters:
	//   - r: the renderer for this frame
	//
	// Returns:
	//   - Status: StatusOK to continue
	OnRender(r renderer.Renderer) Status
}

// Launcher is implemented by handlers that need the window and renderer before the first frame.
type Launcher interface {
	// OnLaunch runs once after the window and renderer exist.
	//
	// Parameters:
	//   - e: the running engine
	//
	// Returns:
	//   - Status: StatusOK to start the frame loop
	OnLaunch(e Engine) Status
}

// Closer is implemented by handlers that want to observe or veto the window closing.
type Closer interface {
	// OnClose runs when the window is asked to close, and once more when the loop ends for another reason.
	//
	// Parameters:
	//   - e: the running engine
	//
	// Returns:
	//   - Status: StatusOK to allow the close; any other value keeps a window close request from taking effect
	OnClose(e Engine) Status
}

// Resizer is implemented by handlers that track the framebuffer size.
type Resizer interface {
	// OnResize runs after the renderer surface was resized.
	//
	// Parameters:
	//   - e: the running engine
	//   - width: the new framebuffer width in pixels
	//   - height: the new framebuffer height in pixels
	OnResize(e Engine, width, height int)
}

// engine implements the Engine interface.
// The window, renderer and every handler callback live on the single locked OS thread running the loop.
type engine struct {
	mu sync.Mutex

	name            string
	windowOptions   []window.WindowBuilderOption
	rendererOptions []renderer.RendererBuilderOption
	backendOptions  []wgpu_backend.BackendBuilderOption
	profilerOptions []profiler.ProfilerBuilderOption

	clearColor       common.Color
	frameLimit       time.Duration
	profilingEnabled bool
	handler          FrameHandler

	window   window.Window
	renderer renderer.Renderer

	running atomic.Bool
	quit    atomic.Bool
	done    chan struct{}
	err     error
}

// Engine owns the window and renderer and drives the frame loop of a FrameHandler.
type Engine interface {
	// Launch creates the window and renderer and runs the frame loop.
	// On platforms where the windowing system must run on the main thread, launch in the foreground from main.
	//
	// Parameters:
	//   - background: if true, the loop runs on its own locked OS thread and Launch returns immediately
	//
	// Returns:
	//   - error: an error if setup fails or a handler returns StatusError; always nil in the background
	Launch(background bool) error

	// Close asks the frame loop to end after the current frame. Safe to call from any goroutine.
	Close()

	// EnsureClosed blocks until a launched frame loop has ended.
	//
	// Returns:
	//   - error: the error the loop ended with, or nil
	EnsureClosed() error

	// Window returns the engine's window.
	//
	// Returns:
	//   - window.Window: the window, or nil before launch
	Window() window.Window

	// Renderer returns the engine's renderer.
	//
	// Returns:
	//   - renderer.Renderer: the renderer, or nil before launch
	Renderer() renderer.Renderer
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the provided options.
// Nothing is created on the GPU or the windowing system until Launch.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		name:       "Gates",
		clearColor: common.RGBA(0.1, 0.1, 0.1, 1),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *engine) Launch(background bool) error {
	if e.handler == nil {
		return ErrNoHandler
	}
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	done := make(chan struct{})
	e.mu.Lock()
	e.done = done
	e.err = nil
	e.mu.Unlock()
	e.quit.Store(false)

	loop := func() error {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		err := e.run()
		e.mu.Lock()
		e.err = err
		e.mu.Unlock()
		e.running.Store(false)
		close(done)
		return err
	}

	if background {
		go loop()
		return nil
	}
	return loop()
}

func (e *engine) Close() {
	e.quit.Store(true)
}

func (e *engine) EnsureClosed() error {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()
	if done == nil {
		return nil
	}
	<-done

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

// run builds the window and renderer, runs the frame loop and tears both down again.
func (e *engine) run() (err error) {
	log := logger.Logger()

	options := append([]window.WindowBuilderOption{window.WithTitle(e.name)}, e.windowOptions...)
	e.window = window.NewWindow(options...)
	defer func() {
		if cerr := e.window.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close window: %w", cerr)
		}
	}()

	backend := wgpu_backend.NewBackend(e.window.SurfaceDescriptor(), e.window.Width(), e.window.Height(), e.backendOptions...)
	e.renderer = renderer.NewRenderer(backend, e.rendererOptions...)
	if err := e.renderer.Init(); err != nil {
		backend.Release()
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer e.renderer.Delete()

	e.window.SetResizeCallback(func(width, height int) {
		e.renderer.Resize(width, height)
		if rs, ok := e.handler.(Resizer); ok {
			rs.OnResize(e, width, height)
		}
	})

	log.Info("engine launched", "name", e.name, "width", e.window.Width(), "height", e.window.Height())
	defer log.Info("engine closed", "name", e.name)

	if l, ok := e.handler.(Launcher); ok {
		if st := l.OnLaunch(e); st != StatusOK {
			return statusError(st, "launch")
		}
	}

	return e.loop()
}

func (e *engine) loop() error {
	var prof *profiler.Profiler
	if e.profilingEnabled {
		prof = profiler.NewProfiler(e.profilerOptions...)
	}
	in := e.window.Input()
	background := e.clearColor.Premultiplied()
	counter := profiler.NewFrameCounter(time.Now())

	for {
		frameStart := time.Now()

		if !e.window.ProcessEvents() {
			e.notifyClose()
			return nil
		}
		if e.quit.Load() {
			e.notifyClose()
			return nil
		}
		if e.window.CloseRequested() {
			if e.notifyClose() {
				return nil
			}
			e.window.CancelClose()
		}

		dt, refreshed := counter.Tick(frameStart)
		if refreshed {
			e.window.SetTitle(fmt.Sprintf("%s - FPS: %d", e.name, counter.FPS()))
		}

		in.Update()
		if st := e.handler.OnUpdate(e, dt); st != StatusOK {
			e.notifyClose()
			return statusError(st, "update")
		}

		e.renderer.ResetStats()
		if err := e.renderer.BeginFrame(background); err != nil {
			logger.Logger().Warn("skipping frame", "error", err)
		} else {
			st := e.handler.OnRender(e.renderer)
			e.renderer.EndFrame()
			if st != StatusOK {
				e.notifyClose()
				return statusError(st, "render")
			}
		}

		if prof != nil {
			prof.Tick(e.renderer.Stats())
		}

		if e.frameLimit > 0 {
			if remaining := e.frameLimit - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

// notifyClose reports whether the handler allows the loop to end.
func (e *engine) notifyClose() bool {
	c, ok := e.handler.(Closer)
	if !ok {
		return true
	}
	return c.OnClose(e) == StatusOK
}

func statusError(st Status, phase string) error {
	if st == StatusError {
		return fmt.Errorf("%w: %s", ErrHandlerFailed, phase)
	}
	return nil
}
