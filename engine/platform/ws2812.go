package platform

import (
	"fmt"

	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
)

// WS2812Platform drives a physical WS281x LED strip through the kernel DMA
// driver. It is a pure sink: Show packs the engine buffer into the driver's
// channel buffer and blocks for the strip refresh.
type WS2812Platform struct {
	basePlatform

	leds []color.CRGB
	dev  *ws2811.WS2811

	gpioPin int
}

// WS2812Option configures a WS2812Platform before the driver initializes.
type WS2812Option func(*WS2812Platform)

// WithGpioPin selects the data GPIO pin (default 18).
func WithGpioPin(pin int) WS2812Option {
	return func(p *WS2812Platform) {
		p.gpioPin = pin
	}
}

// NewWS2812Platform initializes the strip driver for numLeds LEDs.
//
// Parameters:
//   - numLeds: LED count on channel 0
//   - options: functional options
//
// Returns:
//   - *WS2812Platform: the platform
//   - error: error if the driver cannot be initialized
func NewWS2812Platform(numLeds int, options ...WS2812Option) (*WS2812Platform, error) {
	p := &WS2812Platform{
		basePlatform: newBasePlatform(),
		leds:         make([]color.CRGB, numLeds),
		gpioPin:      18,
	}
	for _, opt := range options {
		opt(p)
	}

	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = p.gpioPin
	opt.Channels[0].Brightness = int(p.brightness)
	opt.Channels[0].LedCount = numLeds

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create ws2811 device: %v", err)
	}
	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize ws2811 device: %v", err)
	}
	p.dev = dev
	return p, nil
}

// LEDs returns the platform-owned LED slice scenes write into.
func (p *WS2812Platform) LEDs() []color.CRGB { return p.leds }

// NumLEDs returns the LED count.
func (p *WS2812Platform) NumLEDs() int { return len(p.leds) }

// Show packs the buffer into the driver's channel memory and renders.
// Blocks for the duration of the strip refresh.
func (p *WS2812Platform) Show() error {
	hw := p.dev.Leds(0)
	scale := p.brightness
	for i, c := range p.leds {
		if i >= len(hw) {
			break
		}
		if scale != 255 {
			c.Nscale8(scale)
		}
		hw[i] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	}
	if err := p.dev.Render(); err != nil {
		return fmt.Errorf("failed to render leds: %v", err)
	}
	if err := p.dev.Wait(); err != nil {
		return fmt.Errorf("failed to wait for led transfer: %v", err)
	}
	return nil
}

// Clear sets the buffer to black.
func (p *WS2812Platform) Clear() {
	color.FillSolid(p.leds, color.Black)
}

// Close releases the strip driver.
func (p *WS2812Platform) Close() {
	if p.dev != nil {
		p.dev.Fini()
		p.dev = nil
	}
}
