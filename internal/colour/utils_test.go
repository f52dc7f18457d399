package colour

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-370, 350},
		{-720, 0},
	}

	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{0, 0, 0},
		{10, 350, 20},
		{0, 180, 180},
		{90, 270, 180},
		{-30, 30, 60},
	}

	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func TestGoldenAngleHueDistinct(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		h := GoldenAngleHue(i)
		if h < 0 || h >= 360 {
			t.Fatalf("GoldenAngleHue(%d) = %v, out of range", i, h)
		}
		key := int(math.Round(h * 100))
		if seen[key] {
			t.Fatalf("GoldenAngleHue(%d) = %v collides with an earlier index", i, h)
		}
		seen[key] = true
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(RGB{}); got != 0 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}
	if got := Luminance(RGB{R: 255, G: 255, B: 255}); math.Abs(got-1) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 1", got)
	}
}
