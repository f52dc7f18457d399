// Package colour provides the colour conversions and perceptual metrics shared
// by every Colorsful visualisation.
package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// AchromaticSaturation is the HSL saturation (percent) below which a colour
// has no usable hue. Such colours are placed by GoldenAngleHue instead.
const AchromaticSaturation = 1.0

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL is a colour in HSL space. H is in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour in CSS notation.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.L)
}

// Achromatic reports whether the colour is too grey to carry a meaningful hue.
func (c HSL) Achromatic() bool {
	return c.S < AchromaticSaturation
}

// Lab is a colour in CIE L*a*b* space (D65). L is in [0,100]; A and B are unbounded.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// String returns the Lab colour as "lab(L, A, B)".
func (c Lab) String() string {
	return fmt.Sprintf("lab(%.2f, %.2f, %.2f)", c.L, c.A, c.B)
}

// ParseHex parses a six digit hex colour with an optional leading '#'.
// Shorthand (#abc), alpha (#rrggbbaa) and anything else return false.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for colour literals in tables and tests.
func MustParseHex(s string) RGB {
	rgb, ok := ParseHex(s)
	if !ok {
		panic("MustParseHex: invalid hex colour " + strconv.Quote(s))
	}
	return rgb
}

// NormalizeHex returns the canonical lowercase "#rrggbb" form of s.
func NormalizeHex(s string) (string, bool) {
	rgb, ok := ParseHex(s)
	if !ok {
		return "", false
	}
	return rgb.Hex(), true
}
