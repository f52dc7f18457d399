package colour

import "math"

// Weights used by WeightedHSLDistance. Hue dominates since it is the
// primary navigation axis of every layout.
const (
	HueWeight        = 2.0
	SaturationWeight = 0.5
	LightnessWeight  = 0.5
)

// Vibrancy scores how colourful a sample looks: s·(1 − |l − 50|/50).
// Saturated mid-tones approach 100; anything near black or white approaches 0.
func Vibrancy(c HSL) float64 {
	v := c.S * (1 - math.Abs(c.L-50)/50)
	return clamp(v, 0, 100)
}

// WeightedHSLDistance is a weighted Euclidean norm over the normalised
// differences [dh/180, ds/100, dl/100], with dh taken around the wheel.
func WeightedHSLDistance(a, b HSL) float64 {
	dh := HueDistance(a.H, b.H) / 180
	ds := (a.S - b.S) / 100
	dl := (a.L - b.L) / 100

	return math.Sqrt(HueWeight*dh*dh + SaturationWeight*ds*ds + LightnessWeight*dl*dl)
}

// LabDistance is the CIE76 distance between two Lab colours.
func LabDistance(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
