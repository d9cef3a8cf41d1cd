package common

// sin8Table is the FastLED-compatible lookup table for 8-bit trig functions.
// sin8Table[0] = 128 (zero crossing), sin8Table[64] = 255 (peak),
// sin8Table[128] = 128, sin8Table[192] = 1 (trough).
var sin8Table = [256]uint8{
	128, 131, 134, 137, 140, 143, 146, 149, 152, 155, 158, 161, 164, 167, 170, 173,
	177, 179, 182, 184, 187, 189, 192, 194, 197, 200, 202, 205, 207, 210, 212, 215,
	218, 219, 221, 223, 224, 226, 228, 229, 231, 233, 234, 236, 238, 239, 241, 243,
	245, 245, 246, 246, 247, 248, 248, 249, 250, 250, 251, 251, 252, 253, 253, 254,
	255, 254, 253, 253, 252, 251, 251, 250, 250, 249, 248, 248, 247, 246, 246, 245,
	245, 243, 241, 239, 238, 236, 234, 233, 231, 229, 228, 226, 224, 223, 221, 219,
	218, 215, 212, 210, 207, 205, 202, 200, 197, 194, 192, 189, 187, 184, 182, 179,
	177, 173, 170, 167, 164, 161, 158, 155, 152, 149, 146, 143, 140, 137, 134, 131,
	128, 125, 122, 119, 116, 113, 110, 107, 104, 101, 98, 95, 92, 89, 86, 83,
	79, 77, 74, 72, 69, 67, 64, 62, 59, 56, 54, 51, 49, 46, 44, 41,
	38, 37, 35, 33, 32, 30, 28, 27, 25, 23, 22, 20, 18, 17, 15, 13,
	11, 11, 10, 10, 9, 8, 8, 7, 6, 6, 5, 5, 4, 3, 3, 2,
	1, 2, 3, 3, 4, 5, 5, 6, 6, 7, 8, 8, 9, 10, 10, 11,
	11, 13, 15, 17, 18, 20, 22, 23, 25, 27, 28, 30, 32, 33, 35, 37,
	38, 41, 44, 46, 49, 51, 54, 56, 59, 62, 64, 67, 69, 72, 74, 77,
	79, 83, 86, 89, 92, 95, 98, 101, 104, 107, 110, 113, 116, 119, 122, 125,
}

// Number constrains the scalar types accepted by the generic math helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~float32 | ~float64
}

// Map re-maps an integer from one range to another using widened intermediate
// arithmetic, matching the Arduino map() function. Reversed ranges and
// extrapolation beyond the input range are supported.
//
// Parameters:
//   - x: input value
//   - inMin, inMax: input range
//   - outMin, outMax: output range
//
// Returns:
//   - int32: the re-mapped value; outMin when inMin == inMax
func Map(x, inMin, inMax, outMin, outMax int32) int32 {
	if inMin == inMax {
		return outMin
	}
	return int32(int64(x-inMin)*int64(outMax-outMin)/int64(inMax-inMin)) + outMin
}

// MapFloat re-maps a float from one range to another.
// Returns outMin when inMin == inMax to avoid division by zero.
func MapFloat(x, inMin, inMax, outMin, outMax float32) float32 {
	if inMin == inMax {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Clamp constrains a value to the inclusive range [min, max].
func Clamp[T Number](x, min, max T) T {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// Sin8 returns a fast 8-bit approximation of sin(theta) where one full cycle
// spans 0-255 and the output is offset so 128 represents zero.
func Sin8(theta uint8) uint8 {
	return sin8Table[theta]
}

// Cos8 returns a fast 8-bit approximation of cos(theta), a quarter turn ahead
// of Sin8.
func Cos8(theta uint8) uint8 {
	return sin8Table[uint8(theta+64)]
}

// Qadd8 adds two bytes, saturating at 0xFF.
func Qadd8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Qsub8 subtracts b from a, saturating at 0x00.
func Qsub8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return 0
}
