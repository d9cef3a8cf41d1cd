// Package color provides the 8-bit RGB/HSV color types and the saturating,
// FastLED-compatible arithmetic the animation engine is built on. All
// operations are byte-exact with the established LED-library semantics so
// scenes render identically across the hardware, native, and simulator
// platforms.
package color

// CRGB is one LED's color as three 8-bit channels.
type CRGB struct {
	R uint8
	G uint8
	B uint8
}

// CHSV is a color in hue/saturation/value space, 8 bits per channel.
// Hue covers one full cycle in 0-255.
type CHSV struct {
	Hue uint8
	Sat uint8
	Val uint8
}

// NewCRGB builds a CRGB from individual channel values.
func NewCRGB(r, g, b uint8) CRGB {
	return CRGB{R: r, G: g, B: b}
}

// NewCHSV builds a CHSV from hue, saturation, and value.
func NewCHSV(h, s, v uint8) CHSV {
	return CHSV{Hue: h, Sat: s, Val: v}
}

// Scale8 scales a byte by (scale+1)/256, the fixed-point variant the
// established LED libraries use so that scaling by 255 is the identity.
// fadeToBlackBy(16) therefore multiplies each channel by 240/256.
func Scale8(v, scale uint8) uint8 {
	return uint8(uint16(v) * (uint16(scale) + 1) >> 8)
}

// Scale8Video scales a byte by scale/256 but never drops a non-zero input
// all the way to zero; the result floor is 1 when both inputs are non-zero.
func Scale8Video(v, scale uint8) uint8 {
	result := uint8(uint16(v) * uint16(scale) >> 8)
	if v != 0 && scale != 0 {
		result++
	}
	return result
}

// Nscale8 scales each channel of c in place by (scale+1)/256.
func (c *CRGB) Nscale8(scale uint8) {
	c.R = Scale8(c.R, scale)
	c.G = Scale8(c.G, scale)
	c.B = Scale8(c.B, scale)
}

// FadeToBlackBy darkens each channel by amount/256 of its current value,
// saturating at black.
func (c *CRGB) FadeToBlackBy(amount uint8) {
	c.Nscale8(255 - amount)
}

// AddTo adds other to c channel-wise, saturating at 255.
func (c *CRGB) AddTo(other CRGB) {
	c.R = qadd8(c.R, other.R)
	c.G = qadd8(c.G, other.G)
	c.B = qadd8(c.B, other.B)
}

// SubtractFrom subtracts other from c channel-wise, saturating at 0.
func (c *CRGB) SubtractFrom(other CRGB) {
	c.R = qsub8(c.R, other.R)
	c.G = qsub8(c.G, other.G)
	c.B = qsub8(c.B, other.B)
}

// IsBlack reports whether all channels are zero.
func (c CRGB) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Blend mixes two colors channel-wise: a + (b-a)*t/256.
//
// Parameters:
//   - a: color at t=0
//   - b: color at t=255 (approached, not reached)
//   - t: blend fraction in 0-255
//
// Returns:
//   - CRGB: the blended color
func Blend(a, b CRGB, t uint8) CRGB {
	return CRGB{
		R: blend8(a.R, b.R, t),
		G: blend8(a.G, b.G, t),
		B: blend8(a.B, b.B, t),
	}
}

// Nblend blends src into dst in place by t/256.
func Nblend(dst *CRGB, src CRGB, t uint8) {
	*dst = Blend(*dst, src, t)
}

// Blend8 mixes two bytes: a + (b-a)*t/256.
func Blend8(a, b, t uint8) uint8 {
	return blend8(a, b, t)
}

// Lerp8by8 linearly interpolates between a and b by fract/256.
func Lerp8by8(a, b, fract uint8) uint8 {
	return blend8(a, b, fract)
}

func blend8(a, b, t uint8) uint8 {
	return uint8(int16(a) + int16(int32(int16(b)-int16(a))*int32(t)>>8))
}

func qadd8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func qsub8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return 0
}
