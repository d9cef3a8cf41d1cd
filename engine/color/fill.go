package color

// FillSolid sets every LED in the slice to the same color.
func FillSolid(leds []CRGB, c CRGB) {
	for i := range leds {
		leds[i] = c
	}
}

// FillRainbow paints the slice with a hue sweep starting at initialHue and
// advancing deltaHue per LED, at full saturation and value.
func FillRainbow(leds []CRGB, initialHue, deltaHue uint8) {
	hsv := CHSV{Hue: initialHue, Sat: 255, Val: 255}
	for i := range leds {
		hsv.Hue = initialHue + uint8(i)*deltaHue
		leds[i] = HSVToRGBRainbow(hsv)
	}
}

// FillGradientRGB paints a linear RGB gradient from startColor at startPos to
// endColor at endPos (inclusive). Each channel is interpolated with integer
// arithmetic so both endpoints land exactly.
func FillGradientRGB(leds []CRGB, startPos int, startColor CRGB, endPos int, endColor CRGB) {
	if startPos < 0 || endPos >= len(leds) || startPos > endPos {
		return
	}
	if startPos == endPos {
		leds[startPos] = startColor
		return
	}

	span := int32(endPos - startPos)
	rdelta := int32(endColor.R) - int32(startColor.R)
	gdelta := int32(endColor.G) - int32(startColor.G)
	bdelta := int32(endColor.B) - int32(startColor.B)

	for i := startPos; i <= endPos; i++ {
		offset := int32(i - startPos)
		leds[i].R = uint8(int32(startColor.R) + rdelta*offset/span)
		leds[i].G = uint8(int32(startColor.G) + gdelta*offset/span)
		leds[i].B = uint8(int32(startColor.B) + bdelta*offset/span)
	}
}

// NscaleAll scales every LED in the slice by (scale+1)/256.
func NscaleAll(leds []CRGB, scale uint8) {
	for i := range leds {
		leds[i].Nscale8(scale)
	}
}
