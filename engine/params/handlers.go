package params

import (
	"math"

	"github.com/Carmen-Shannon/pixel-theater/common"
)

// WrapFloat wraps value into [min, max] by normalizing to the range and
// taking a proper float modulo. Reversed bounds are reordered; a degenerate
// range collapses to its single value.
func WrapFloat(value, min, max float32) float32 {
	if min == max {
		return min
	}
	lo, hi := min, max
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo
	normalized := (value - lo) / span
	normalized -= float32(math.Floor(float64(normalized)))
	return lo + normalized*span
}

// WrapInt wraps value into the inclusive range [min, max], handling
// negatives and large magnitudes without overflow. Reversed bounds are
// reordered.
func WrapInt(value, min, max int) int {
	if min == max {
		return min
	}
	lo, hi := min, max
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo + 1

	reduced := value
	if value > hi {
		reduced = lo + (value-lo)%span
	} else if value < lo {
		reduced = hi - (lo-value-1)%span
	}
	if reduced > hi {
		return lo + (reduced - hi - 1)
	}
	if reduced < lo {
		return hi - (lo - reduced - 1)
	}
	return reduced
}

// applyFloatFlags runs the out-of-range policy for a float value: clamp,
// wrap, or sentinel-on-reject.
func applyFloatFlags(value, min, max float32, flags Flags, name string) float32 {
	if flags.Has(FlagClamp) {
		return common.Clamp(value, min, max)
	}
	if flags.Has(FlagWrap) {
		return WrapFloat(value, min, max)
	}
	if value < min || value > max {
		common.Warnf("parameter %q: value %.2f out of range [%.2f, %.2f]", name, value, min, max)
		return common.Sentinel[float32]()
	}
	return value
}

// applyIntFlags runs the out-of-range policy for an integer value.
func applyIntFlags(value, min, max int, flags Flags, name string) int {
	if flags.Has(FlagClamp) {
		return common.Clamp(value, min, max)
	}
	if flags.Has(FlagWrap) {
		return WrapInt(value, min, max)
	}
	if value < min || value > max {
		common.Warnf("parameter %q: value %d out of range [%d, %d]", name, value, min, max)
		return common.Sentinel[int]()
	}
	return value
}
