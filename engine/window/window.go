package window

import (
	"fmt"

	"github.com/Carmen-Shannon/gates/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and feeds its input events into an input.State.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetTitle replaces the text in the title bar.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// Title returns the title the window was created with.
	//
	// Returns:
	//   - string: the base title
	Title() string

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Input returns the input state written by this window's event callbacks.
	//
	// Returns:
	//   - *input.State: the shared input state
	Input() *input.State

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// CloseRequested reports whether the user asked the window to close since the last CancelClose.
	//
	// Returns:
	//   - bool: true if a close was requested
	CloseRequested() bool

	// CancelClose clears a pending close request.
	CancelClose()

	// RequestClose asks the window to close, as if the user clicked the close button.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessEvents polls pending platform events without blocking.
	//
	// Returns:
	//   - bool: false once the window is no longer running
	ProcessEvents() bool

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Focused reports whether the cursor is inside the window.
	//
	// Returns:
	//   - bool: true while the cursor is inside
	Focused() bool
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state and the input state fed by callbacks.
type engineWindow struct {
	// title is the base window title.
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the current framebuffer size in pixels.
	width  int
	height int

	// posX and posY are the initial window position; negative leaves placement to the platform.
	posX int
	posY int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	input *input.State

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a new Window with the specified options.
// Applies default values first, then each option in order. Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the created window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "Gates",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  320,
		minHeight: 240,
		width:     1280,
		height:    720,
		posX:      -1,
		posY:      -1,
		input:     input.NewState(),
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetTitle(title string) {
	platformSetTitle(w, title)
}

func (w *engineWindow) Title() string {
	return w.title
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) Input() *input.State {
	return w.input
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) CloseRequested() bool {
	return platformCloseRequested(w)
}

func (w *engineWindow) CancelClose() {
	platformSetShouldClose(w, false)
}

func (w *engineWindow) RequestClose() {
	platformSetShouldClose(w, true)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessEvents() bool {
	return platformProcessMessages(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) Focused() bool {
	return w.input.Focused()
}
