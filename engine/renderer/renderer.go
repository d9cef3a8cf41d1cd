// Package renderer draws the simulator's view of the sculpture: one
// billboard quad per LED, colored from the engine's LED buffer, orbited by
// drag rotation and scroll zoom. It is the rendering consumer the simulator
// platform hands each frame to; the engine core only depends on its
// interface.
package renderer

import (
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer consumes LED frames and presents them.
type Renderer interface {
	// Frame uploads the LED colors (scaled by brightness) and presents one
	// rendered frame.
	//
	// Parameters:
	//   - leds: the engine's LED buffer, one entry per model point
	//   - brightness: global output brightness (0-255)
	//
	// Returns:
	//   - error: error if the frame could not be rendered
	Frame(leds []color.CRGB, brightness uint8) error

	// Resize reconfigures the surface for a new framebuffer size.
	Resize(width, height int)

	// Rotate applies a manual rotation delta from a mouse drag, in pixels.
	Rotate(dx, dy float32)

	// ResetRotation restores the default orientation.
	ResetRotation()

	// SetAutoRotation toggles idle auto-rotation and its speed in radians
	// per frame at the default frame rate.
	SetAutoRotation(enabled bool, speed float32)

	// SetZoomLevel selects a zoom preset (0 = closest).
	SetZoomLevel(level int)

	// FPS returns a smoothed frames-per-second estimate.
	FPS() float32

	// SetDebugMode toggles verbose frame logging.
	SetDebugMode(enabled bool)

	// Close releases GPU resources.
	Close()
}

// orbitCamera tracks the simulator's view state: yaw/pitch from drags,
// a zoom radius, and optional auto-rotation.
type orbitCamera struct {
	yaw   float32
	pitch float32

	radius float32

	autoRotate bool
	autoSpeed  float32
}

// dragSensitivity converts drag pixels to radians.
const dragSensitivity = 0.008

// zoomRadii are the zoom presets, as multiples of the model sphere radius.
var zoomRadii = []float32{1.8, 2.5, 3.5, 5.0}

func (c *orbitCamera) rotate(dx, dy float32) {
	c.yaw += dx * dragSensitivity
	c.pitch += dy * dragSensitivity
	c.pitch = mgl32.Clamp(c.pitch, -1.5, 1.5)
}

func (c *orbitCamera) reset() {
	c.yaw = 0
	c.pitch = 0
}

func (c *orbitCamera) setZoomLevel(level int, sphereRadius float32) {
	if level < 0 {
		level = 0
	}
	if level >= len(zoomRadii) {
		level = len(zoomRadii) - 1
	}
	c.radius = zoomRadii[level] * sphereRadius
}

func (c *orbitCamera) tick() {
	if c.autoRotate {
		c.yaw += c.autoSpeed
	}
}

// eye returns the camera position in world space.
func (c *orbitCamera) eye() mgl32.Vec3 {
	cp := mgl32.Vec3{0, 0, c.radius}
	rot := mgl32.HomogRotate3DY(c.yaw).Mul4(mgl32.HomogRotate3DX(c.pitch))
	return mgl32.TransformCoordinate(cp, rot)
}
