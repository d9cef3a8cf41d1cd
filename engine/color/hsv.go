package color

// HSVToRGBRainbow converts HSV to RGB using the 8-segment rainbow mapping
// rather than the pure trigonometric HSV cone. The rainbow mapping widens the
// yellow band so hue sweeps look visually even on LEDs. Byte outputs match
// the established LED-library behavior exactly.
//
// Parameters:
//   - hsv: the source color
//
// Returns:
//   - CRGB: the converted color
func HSVToRGBRainbow(hsv CHSV) CRGB {
	if hsv.Sat == 0 {
		return CRGB{R: hsv.Val, G: hsv.Val, B: hsv.Val}
	}

	hue := hsv.Hue
	sat := hsv.Sat
	val := hsv.Val

	offset := hue & 0x1F
	offset8 := offset << 3

	third := Scale8(offset8, 256/3)
	twothirds := Scale8(offset8, (256*2)/3)

	var r, g, b uint8

	switch {
	case hue&0x80 == 0 && hue&0x40 == 0 && hue&0x20 == 0: // 000 red -> orange
		r = 255 - third
		g = third
		b = 0
	case hue&0x80 == 0 && hue&0x40 == 0: // 001 orange -> yellow
		r = 171
		g = 85 + third
		b = 0
	case hue&0x80 == 0 && hue&0x20 == 0: // 010 yellow -> green
		r = 171 - twothirds
		g = 170 + third
		b = 0
	case hue&0x80 == 0: // 011 green -> aqua
		r = 0
		g = 255 - third
		b = third
	case hue&0x40 == 0 && hue&0x20 == 0: // 100 aqua -> blue
		r = 0
		g = 171 - twothirds
		b = 85 + twothirds
	case hue&0x40 == 0: // 101 blue -> purple
		r = third
		g = 0
		b = 255 - third
	case hue&0x20 == 0: // 110 purple -> pink
		r = 85 + third
		g = 0
		b = 171 - third
	default: // 111 pink -> red
		r = 170 + third
		g = 0
		b = 85 - third
	}

	// Desaturate toward white using the video-scale floor so non-zero
	// channels never collapse to zero.
	if sat != 255 {
		if sat == 0 {
			r, g, b = 255, 255, 255
		} else {
			desat := 255 - sat
			desat = uint8(uint16(desat)*uint16(desat)>>8) + boolByte(desat != 0)
			satscale := 255 - desat

			if r != 0 {
				r = uint8(uint16(r)*uint16(satscale)>>8) + boolByte(r != 0 && satscale != 0)
			}
			if g != 0 {
				g = uint8(uint16(g)*uint16(satscale)>>8) + boolByte(g != 0 && satscale != 0)
			}
			if b != 0 {
				b = uint8(uint16(b)*uint16(satscale)>>8) + boolByte(b != 0 && satscale != 0)
			}

			r += desat
			g += desat
			b += desat
		}
	}

	// Scale by value last, with the same +1 floor on non-zero channels.
	if val != 255 {
		if val == 0 {
			r, g, b = 0, 0, 0
		} else {
			if r != 0 {
				r = uint8(uint16(r)*uint16(val)>>8) + 1
			}
			if g != 0 {
				g = uint8(uint16(g)*uint16(val)>>8) + 1
			}
			if b != 0 {
				b = uint8(uint16(b)*uint16(val)>>8) + 1
			}
		}
	}

	return CRGB{R: r, G: g, B: b}
}

// RGB converts the CHSV to CRGB via the rainbow mapping.
func (c CHSV) RGB() CRGB {
	return HSVToRGBRainbow(c)
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
