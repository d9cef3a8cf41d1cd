// Package platform abstracts LED output, timing, random numbers, and
// logging behind one surface so scenes run unchanged against the hardware
// strip driver, the native stub, or the desktop simulator.
package platform

import (
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
)

// Platform is the uniform surface the engine and scenes program against.
// Implementations own their LED buffer storage; everything else borrows it.
type Platform interface {
	// LEDs returns the platform-owned LED color slice.
	LEDs() []color.CRGB

	// NumLEDs returns the LED count.
	NumLEDs() int

	// Show commits the current LED buffer to the output: the hardware
	// driver pushes to the strips, the simulator renders a frame, the
	// native stub does nothing.
	Show() error

	// SetBrightness sets the global output brightness (0-255).
	SetBrightness(brightness uint8)

	// Brightness returns the global output brightness.
	Brightness() uint8

	// Clear sets the whole buffer to black.
	Clear()

	// SetMaxRefreshRate caps the output refresh rate in frames per second.
	SetMaxRefreshRate(fps uint8)

	// SetDither sets the output dither mode.
	SetDither(mode uint8)

	// DeltaTime returns seconds since the previous DeltaTime call, capped
	// at 0.1 so the first call and post-stall frames don't produce huge
	// animation jumps.
	DeltaTime() float32

	// Millis returns milliseconds since process start; monotonic, may wrap.
	Millis() uint32

	// Random8 returns a random byte from the effects generator.
	Random8() uint8

	// Random16 returns a random 16-bit value from the effects generator.
	Random16() uint16

	// Random returns a random value in [0, max) from the general generator.
	Random(max int32) int32

	// RandomBetween returns a random value in [min, max).
	RandomBetween(min, max int32) int32

	// RandomFloat returns a random float in [0, 1].
	RandomFloat() float32

	// RandomFloatMax returns a random float in [0, max].
	RandomFloatMax(max float32) float32

	// RandomFloatBetween returns a random float in [min, max].
	RandomFloatBetween(min, max float32) float32

	// LogInfo writes a formatted info line to the platform sink.
	LogInfo(format string, args ...any)

	// LogWarning writes a formatted warning line to the platform sink.
	LogWarning(format string, args ...any)

	// LogError writes a formatted error line to the platform sink.
	LogError(format string, args ...any)
}

// basePlatform carries the timing, random, and logging behavior every
// platform shares. Concrete platforms embed it and supply buffer + output.
type basePlatform struct {
	start      time.Time
	lastDelta  time.Time
	brightness uint8

	maxRefreshRate uint8
	dither         uint8
}

func newBasePlatform() basePlatform {
	now := time.Now()
	return basePlatform{
		start:      now,
		lastDelta:  now,
		brightness: 255,
	}
}

func (b *basePlatform) SetBrightness(brightness uint8) { b.brightness = brightness }

func (b *basePlatform) Brightness() uint8 { return b.brightness }

func (b *basePlatform) SetMaxRefreshRate(fps uint8) { b.maxRefreshRate = fps }

func (b *basePlatform) SetDither(mode uint8) { b.dither = mode }

func (b *basePlatform) DeltaTime() float32 {
	now := time.Now()
	dt := float32(now.Sub(b.lastDelta).Seconds())
	b.lastDelta = now
	if dt > 0.1 {
		dt = 0.1
	}
	return dt
}

func (b *basePlatform) Millis() uint32 {
	return uint32(time.Since(b.start).Milliseconds())
}

func (b *basePlatform) Random8() uint8 { return common.Random8() }

func (b *basePlatform) Random16() uint16 { return common.Random16() }

func (b *basePlatform) Random(max int32) int32 { return common.Random(max) }

func (b *basePlatform) RandomBetween(min, max int32) int32 {
	return common.RandomBetween(min, max)
}

func (b *basePlatform) RandomFloat() float32 {
	return float32(common.Random(1001)) / 1000.0
}

func (b *basePlatform) RandomFloatMax(max float32) float32 {
	return b.RandomFloat() * max
}

func (b *basePlatform) RandomFloatBetween(min, max float32) float32 {
	if min >= max {
		return min
	}
	return min + b.RandomFloat()*(max-min)
}

func (b *basePlatform) LogInfo(format string, args ...any) {
	log.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

func (b *basePlatform) LogWarning(format string, args ...any) {
	log.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

func (b *basePlatform) LogError(format string, args ...any) {
	log.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}
