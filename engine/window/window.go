// Package window provides the desktop window the simulator platform renders
// into, wrapping GLFW behind a small interface with the input events the
// simulator cares about: resize, scroll zoom, and drag rotation.
package window

import "github.com/cogentcore/webgpu/wgpu"

// Window is the simulator's window surface and input source.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer is
	// resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = zoom in)
	SetScrollCallback(callback func(delta float32))

	// SetDragCallback sets the callback for left-button mouse drags.
	//
	// Parameters:
	//   - callback: function receiving cursor movement deltas in pixels
	SetDragCallback(callback func(dx, dy float32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for
	// creating a WebGPU surface over this window, or nil before init.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Poll pumps pending window events without blocking and reports
	// whether the window is still open.
	//
	// Returns:
	//   - bool: true while the window is running
	Poll() bool

	// Close destroys the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int

	// Resize requests a new client-area size in screen coordinates.
	Resize(width, height int)
}

// simWindow is the implementation of the Window interface.
type simWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height are the current framebuffer dimensions in pixels.
	width  int
	height int

	// internalWindow holds the GLFW-specific window state.
	internalWindow *glfwWindow

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events.
	onScroll func(delta float32)

	// onDrag is called while the left mouse button is held and the cursor
	// moves, with per-event deltas.
	onDrag func(dx, dy float32)
}

// New creates and opens the simulator window.
//
// Parameters:
//   - options: functional options for title and size
//
// Returns:
//   - Window: the opened window
//   - error: error if GLFW initialization or window creation fails
func New(options ...Option) (Window, error) {
	w := &simWindow{
		title:  "PixelTheater",
		width:  960,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *simWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *simWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *simWindow) SetDragCallback(callback func(dx, dy float32)) {
	w.onDrag = callback
}

func (w *simWindow) Width() int { return w.width }

func (w *simWindow) Height() int { return w.height }
