package color

// Palette16 is an ordered sequence of 16 colors sampled smoothly by an
// 8-bit index.
type Palette16 [16]CRGB

// Stock palettes scenes commonly reach for.
var (
	RainbowColors = Palette16{
		{0xFF, 0x00, 0x00}, {0xD5, 0x2A, 0x00}, {0xAB, 0x55, 0x00}, {0xAB, 0x7F, 0x00},
		{0xAB, 0xAB, 0x00}, {0x56, 0xD5, 0x00}, {0x00, 0xFF, 0x00}, {0x00, 0xD5, 0x2A},
		{0x00, 0xAB, 0x55}, {0x00, 0x56, 0xAA}, {0x00, 0x00, 0xFF}, {0x2A, 0x00, 0xD5},
		{0x55, 0x00, 0xAB}, {0x7F, 0x00, 0x81}, {0xAB, 0x00, 0x55}, {0xD5, 0x00, 0x2B},
	}
	HeatColors = Palette16{
		{0x00, 0x00, 0x00}, {0x33, 0x00, 0x00}, {0x66, 0x00, 0x00}, {0x99, 0x00, 0x00},
		{0xCC, 0x00, 0x00}, {0xFF, 0x00, 0x00}, {0xFF, 0x33, 0x00}, {0xFF, 0x66, 0x00},
		{0xFF, 0x99, 0x00}, {0xFF, 0xCC, 0x00}, {0xFF, 0xFF, 0x00}, {0xFF, 0xFF, 0x33},
		{0xFF, 0xFF, 0x66}, {0xFF, 0xFF, 0x99}, {0xFF, 0xFF, 0xCC}, {0xFF, 0xFF, 0xFF},
	}
	OceanColors = Palette16{
		{0x19, 0x19, 0x70}, {0x00, 0x00, 0x8B}, {0x19, 0x19, 0x70}, {0x00, 0x00, 0x80},
		{0x00, 0x00, 0x8B}, {0x00, 0x00, 0xCD}, {0x2E, 0x8B, 0x57}, {0x00, 0x80, 0x80},
		{0x5F, 0x9E, 0xA0}, {0x00, 0x00, 0xFF}, {0x00, 0x8B, 0x8B}, {0x64, 0x95, 0xED},
		{0x7F, 0xFF, 0xD4}, {0x2E, 0x8B, 0x57}, {0x00, 0xFF, 0xFF}, {0x87, 0xCE, 0xFA},
	}
)

// ColorFromPalette samples the palette at an 8-bit index, blending linearly
// between the two nearest entries. The top four index bits select the entry
// and the bottom four the blend fraction, so a full 0-255 sweep crosses the
// palette smoothly and wraps from entry 15 back to entry 0.
//
// Parameters:
//   - p: the palette to sample
//   - index: 8-bit sample position
//   - brightness: overall scale applied to the result (255 = full)
//
// Returns:
//   - CRGB: the interpolated, scaled color
func ColorFromPalette(p Palette16, index uint8, brightness uint8) CRGB {
	hi4 := index >> 4
	lo4 := index & 0x0F

	entry := p[hi4]
	if lo4 != 0 {
		next := p[(hi4+1)&0x0F]
		frac := lo4 << 4
		entry = Blend(entry, next, frac)
	}

	if brightness != 255 {
		entry.Nscale8(brightness)
	}
	return entry
}
