package platform

import (
	"fmt"

	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/Carmen-Shannon/pixel-theater/engine/model"
	"github.com/Carmen-Shannon/pixel-theater/engine/renderer"
	"github.com/Carmen-Shannon/pixel-theater/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// SimPlatform renders the sculpture in a desktop window: each Show uploads
// the LED buffer to the point-cloud renderer and presents a frame. Beyond
// the core Platform surface it exposes the simulator controls host glue
// binds to — drag rotation, zoom presets, auto-rotation, float brightness,
// FPS readout, and a debug toggle.
type SimPlatform struct {
	basePlatform

	leds []color.CRGB

	win  window.Window
	rend renderer.Renderer

	zoomLevel int
	debug     bool
	closed    bool
}

// SimOption configures a SimPlatform.
type SimOption func(*simConfig)

type simConfig struct {
	title  string
	width  int
	height int
}

// WithWindowTitle sets the simulator window title.
func WithWindowTitle(title string) SimOption {
	return func(c *simConfig) {
		c.title = title
	}
}

// WithWindowSize sets the simulator window size in pixels.
func WithWindowSize(width, height int) SimOption {
	return func(c *simConfig) {
		if width > 0 && height > 0 {
			c.width = width
			c.height = height
		}
	}
}

// NewSimPlatform opens the simulator window and GPU renderer for a model
// definition. The definition supplies LED positions and the bounding-sphere
// radius that drives the camera presets.
//
// Parameters:
//   - def: the model definition being simulated
//   - options: functional options for the window
//
// Returns:
//   - *SimPlatform: the platform
//   - error: error if the window or GPU renderer cannot be created
func NewSimPlatform(def *model.Definition, options ...SimOption) (*SimPlatform, error) {
	if def == nil {
		return nil, fmt.Errorf("model definition is nil")
	}
	cfg := simConfig{
		width:  960,
		height: 720,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	cfg.title = common.Coalesce(cfg.title, "PixelTheater Simulator")

	win, err := window.New(
		window.WithTitle(cfg.title),
		window.WithWidth(cfg.width),
		window.WithHeight(cfg.height),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulator window: %v", err)
	}

	positions := make([]mgl32.Vec3, def.LedCount)
	for _, pd := range def.Points {
		if int(pd.ID) < len(positions) {
			positions[pd.ID] = mgl32.Vec3{pd.X, pd.Y, pd.Z}
		}
	}
	radius := def.SphereRadius
	if radius == 0 {
		for _, p := range positions {
			if l := p.Len(); l > radius {
				radius = l
			}
		}
	}

	rend, err := renderer.NewWGPURenderer(win.SurfaceDescriptor(), win.Width(), win.Height(), positions, radius)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create simulator renderer: %v", err)
	}

	p := &SimPlatform{
		basePlatform: newBasePlatform(),
		leds:         make([]color.CRGB, def.LedCount),
		win:          win,
		rend:         rend,
	}

	win.SetResizeCallback(rend.Resize)
	win.SetDragCallback(rend.Rotate)
	win.SetScrollCallback(func(delta float32) {
		// Scroll steps through the zoom presets; state lives in the camera.
		if delta > 0 {
			p.zoomLevel--
		} else if delta < 0 {
			p.zoomLevel++
		}
		p.zoomLevel = common.Clamp(p.zoomLevel, 0, 3)
		rend.SetZoomLevel(p.zoomLevel)
	})

	p.zoomLevel = 1

	return p, nil
}

// LEDs returns the platform-owned LED slice.
func (p *SimPlatform) LEDs() []color.CRGB { return p.leds }

// NumLEDs returns the LED count.
func (p *SimPlatform) NumLEDs() int { return len(p.leds) }

// Show pumps window events and renders one frame. Returns an error once the
// window has been closed.
func (p *SimPlatform) Show() error {
	if p.closed {
		return fmt.Errorf("simulator window closed")
	}
	if !p.win.Poll() {
		p.closed = true
		p.rend.Close()
		p.win.Close()
		return fmt.Errorf("simulator window closed")
	}
	return p.rend.Frame(p.leds, p.brightness)
}

// Clear sets the buffer to black.
func (p *SimPlatform) Clear() {
	color.FillSolid(p.leds, color.Black)
}

// Running reports whether the simulator window is still open.
func (p *SimPlatform) Running() bool { return !p.closed }

// --- Simulator control surface -----------------------------------------

// UpdateRotation applies a manual rotation delta in drag pixels.
func (p *SimPlatform) UpdateRotation(dx, dy float32) { p.rend.Rotate(dx, dy) }

// ResetRotation restores the default orientation.
func (p *SimPlatform) ResetRotation() { p.rend.ResetRotation() }

// SetAutoRotation toggles idle auto-rotation with the given speed.
func (p *SimPlatform) SetAutoRotation(enabled bool, speed float32) {
	p.rend.SetAutoRotation(enabled, speed)
}

// SetZoomLevel selects a zoom preset (0 = closest).
func (p *SimPlatform) SetZoomLevel(level int) {
	p.zoomLevel = common.Clamp(level, 0, 3)
	p.rend.SetZoomLevel(p.zoomLevel)
}

// ResizeCanvas requests a new window size in pixels.
func (p *SimPlatform) ResizeCanvas(width, height int) {
	p.win.Resize(width, height)
}

// SetBrightnessFloat sets brightness from the host UI's 0..1 range.
func (p *SimPlatform) SetBrightnessFloat(b float32) {
	p.SetBrightness(uint8(common.Clamp(b, 0, 1) * 255))
}

// BrightnessFloat returns brightness in the host UI's 0..1 range.
func (p *SimPlatform) BrightnessFloat() float32 {
	return float32(p.Brightness()) / 255.0
}

// FPS returns the renderer's smoothed frame rate.
func (p *SimPlatform) FPS() float32 { return p.rend.FPS() }

// ToggleDebugMode flips verbose frame logging.
func (p *SimPlatform) ToggleDebugMode() {
	p.debug = !p.debug
	p.rend.SetDebugMode(p.debug)
}
