package colour

import (
	"math"
)

// GoldenAngle is the angular increment, in degrees, of the low-discrepancy
// sequence used to spread achromatic colours around the wheel.
const GoldenAngle = 137.508

// NormalizeDegrees wraps any angle (including negatives) into [0,360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(math.Mod(deg, 360)+360, 360)
	if d >= 360 {
		// math.Mod can round a tiny negative up to exactly 360.
		d = 0
	}
	return d
}

// GoldenAngleHue returns the synthetic angle for the index-th achromatic colour.
func GoldenAngleHue(index int) float64 {
	return NormalizeDegrees(float64(index) * GoldenAngle)
}

// HueDistance calculates the angular distance between two hues on the color wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormalizeDegrees(h1) - NormalizeDegrees(h2))
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// AdjustSaturation scales the saturation of an HSL colour by factor, clamped to 100.
func AdjustSaturation(c HSL, factor float64) HSL {
	c.S = clamp(c.S*factor, 0, 100)
	return c
}

// ClampLightness keeps the lightness of c within [lo, hi].
func ClampLightness(c HSL, lo, hi float64) HSL {
	c.L = clamp(c.L, lo, hi)
	return c
}
