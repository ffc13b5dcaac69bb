package font

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// F26Dot6 is a signed fixed-point number with 6 fractional bits.
// All glyph geometry delivered by faces uses this format.
type F26Dot6 = fixed.Int26_6

// One is 1.0 in 26.6.
const One F26Dot6 = 64

// ToF26Dot6 converts a float to 26.6, rounding to the nearest 1/64.
func ToF26Dot6(v float64) F26Dot6 {
	return F26Dot6(math.Round(v * 64))
}

// FromF26Dot6 converts a 26.6 value to a float.
func FromF26Dot6(v F26Dot6) float64 {
	return float64(v) / 64
}

// FromF26Dot6Scaled converts a 26.6 value to a float and multiplies it by scale.
func FromF26Dot6Scaled(v F26Dot6, scale float64) float64 {
	return float64(v) / 64 * scale
}

// F26Dot6FromInt converts an integer pixel value to 26.6.
func F26Dot6FromInt(v int) F26Dot6 {
	return F26Dot6(v << 6)
}

// F26Dot6FromInt16 widens a 16 bit value holding 26.6 data.
func F26Dot6FromInt16(v int16) F26Dot6 {
	return F26Dot6(v)
}

// ToInt16 narrows a 26.6 value to 16 bits, saturating at the bounds.
func ToInt16(v F26Dot6) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
