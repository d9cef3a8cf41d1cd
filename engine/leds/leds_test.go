package leds

import (
	"testing"

	"github.com/Carmen-Shannon/pixel-theater/engine/color"
)

func TestClampedIndexing(t *testing.T) {
	backing := make([]color.CRGB, 4)
	buf := NewBuffer(backing)

	if buf.LedCount() != 4 {
		t.Fatalf("LedCount = %d, want 4", buf.LedCount())
	}

	*buf.Led(0) = color.Red
	if backing[0] != color.Red {
		t.Error("write through the view should reach the backing slice")
	}

	// Out-of-range indices clamp to the last LED.
	*buf.Led(99) = color.Blue
	if backing[3] != color.Blue {
		t.Error("out-of-range write should clamp to the last LED")
	}
	if buf.Led(-1) != buf.Led(0) {
		t.Error("negative index should clamp to the first LED")
	}
}

func TestEmptyBufferDummy(t *testing.T) {
	buf := NewBuffer(nil)
	if buf.LedCount() != 0 {
		t.Fatalf("LedCount = %d, want 0", buf.LedCount())
	}
	led := buf.Led(5)
	if led == nil {
		t.Fatal("empty buffer access must still return a dummy LED")
	}
	*led = color.White // must not panic
}

func TestSliceAliasesBacking(t *testing.T) {
	backing := make([]color.CRGB, 2)
	buf := NewBuffer(backing)
	buf.Leds()[1] = color.Lime
	if backing[1] != color.Lime {
		t.Error("Leds() must alias the backing slice")
	}
}
