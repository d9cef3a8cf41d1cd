// Package leds provides the addressable view over the platform's contiguous
// LED color array. The view is non-owning: the platform keeps the backing
// storage alive, and scenes reach the same memory the output driver reads.
package leds

import (
	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
)

// Buffer is the scene-facing LED buffer interface. Out-of-range indices are
// clamped (past the end to the last LED, negative to the first) rather than
// causing a panic: animation code does
// arithmetic on indices every frame and must not crash on an edge case.
type Buffer interface {
	// Led returns a mutable reference to the LED at index. Indices past the
	// end are clamped to the last LED; an empty buffer yields a shared dummy.
	Led(index int) *color.CRGB

	// LedCount returns the number of LEDs in the buffer.
	LedCount() int

	// Leds returns the underlying color slice for bulk operations and
	// iteration. The slice aliases the platform's storage.
	Leds() []color.CRGB
}

// bufferView implements Buffer over a borrowed color slice.
type bufferView struct {
	leds []color.CRGB

	// warned marks that an out-of-range access has already been logged, so
	// a buggy scene does not flood the log at frame rate.
	warned bool
}

// dummyLed is handed out for accesses into an empty buffer.
var dummyLed color.CRGB

// NewBuffer wraps an existing LED slice in a bounds-clamped view.
// The caller keeps ownership of the backing storage.
//
// Parameters:
//   - leds: the LED color slice to wrap
//
// Returns:
//   - Buffer: the clamped view
func NewBuffer(leds []color.CRGB) Buffer {
	return &bufferView{leds: leds}
}

func (b *bufferView) Led(index int) *color.CRGB {
	if index < 0 || index >= len(b.leds) {
		if !b.warned {
			common.Warnf("led index %d out of range [0, %d)", index, len(b.leds))
			b.warned = true
		}
		if len(b.leds) == 0 {
			return &dummyLed
		}
		if index < 0 {
			index = 0
		} else {
			index = len(b.leds) - 1
		}
	}
	return &b.leds[index]
}

func (b *bufferView) LedCount() int {
	return len(b.leds)
}

func (b *bufferView) Leds() []color.CRGB {
	return b.leds
}
