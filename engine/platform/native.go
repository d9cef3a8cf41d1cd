package platform

import "github.com/Carmen-Shannon/pixel-theater/engine/color"

// NativePlatform is the headless platform for offline development and
// tests: it owns a buffer and Show is a no-op.
type NativePlatform struct {
	basePlatform
	leds []color.CRGB
}

// NativeOption configures a NativePlatform.
type NativeOption func(*NativePlatform)

// NewNativePlatform creates a headless platform with numLeds LEDs.
//
// Parameters:
//   - numLeds: size of the LED buffer
//   - options: functional options
//
// Returns:
//   - *NativePlatform: the platform
func NewNativePlatform(numLeds int, options ...NativeOption) *NativePlatform {
	p := &NativePlatform{
		basePlatform: newBasePlatform(),
		leds:         make([]color.CRGB, numLeds),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// LEDs returns the platform-owned LED slice.
func (p *NativePlatform) LEDs() []color.CRGB { return p.leds }

// NumLEDs returns the LED count.
func (p *NativePlatform) NumLEDs() int { return len(p.leds) }

// Show is a no-op on the native platform.
func (p *NativePlatform) Show() error { return nil }

// Clear sets the buffer to black.
func (p *NativePlatform) Clear() {
	color.FillSolid(p.leds, color.Black)
}
