package colour

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-100) and lightness (0-100).
// Achromatic input yields exactly H = S = 0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h *= 60
	if h >= 360 {
		h -= 360
	}

	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB using the k(n) = (n + h/30) mod 12 kernel.
// h is hue in degrees, s and l are percentages. Channels are rounded.
func HSLToRGB(h, s, l float64) RGB {
	h = NormalizeDegrees(h)
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100

	a := s * math.Min(l, 1-l)
	f := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
		return uint8(math.Round(clamp(v, 0, 1) * 255))
	}

	return RGB{R: f(0), G: f(8), B: f(4)}
}

// ToRGB is a shorthand for HSLToRGB(c.H, c.S, c.L).
func (c HSL) ToRGB() RGB {
	return HSLToRGB(c.H, c.S, c.L)
}

// RGBToLab converts sRGB to CIE L*a*b* under the D65 white point.
// The sRGB transfer curve breaks at 0.04045 and the Lab cube root at 0.008856;
// go-colorful reports L on [0,1], so all components are rescaled by 100.
func RGBToLab(rgb RGB) Lab {
	l, a, b := toColorful(rgb).Lab()
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// ToRGB converts a color.Color to RGB, dropping alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Color converts an RGB value to an opaque color.RGBA.
func (rgb RGB) Color() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Blend mixes two colours in Lab space; t=0 returns a, t=1 returns b.
func Blend(a, b RGB, t float64) RGB {
	c := toColorful(a).BlendLab(toColorful(b), clamp(t, 0, 1)).Clamped()
	r, g, bl := c.RGB255()
	return RGB{R: r, G: g, B: bl}
}

func toColorful(rgb RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
