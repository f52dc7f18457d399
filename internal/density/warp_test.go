package density

import (
	"math"
	"testing"
)

func skewedHistogram() Histogram {
	hues := make([]float64, 0, 300)
	for i := 0; i < 200; i++ {
		hues = append(hues, 20+float64(i%20))
	}
	for i := 0; i < 100; i++ {
		hues = append(hues, float64(i)*3.6)
	}
	return NewHistogram(hues, DefaultBins)
}

func TestWarpTableStops(t *testing.T) {
	w := NewWarpTable(skewedHistogram())
	if w.Stops[0] != 0 {
		t.Errorf("Stops[0] = %v, want 0", w.Stops[0])
	}
	if last := w.Stops[len(w.Stops)-1]; last != 360 {
		t.Errorf("Stops[N] = %v, want 360", last)
	}
	for i := 1; i < len(w.Stops); i++ {
		if w.Stops[i] < w.Stops[i-1] {
			t.Fatalf("Stops not monotonic at %d: %v < %v", i, w.Stops[i], w.Stops[i-1])
		}
	}
}

func TestWarpMonotonic(t *testing.T) {
	w := NewWarpTable(skewedHistogram())
	prev := w.Warp(0)
	for h := 0.1; h < 360; h += 0.1 {
		got := w.Warp(h)
		if got < prev-1e-9 {
			t.Fatalf("Warp(%.1f) = %v < Warp(previous) = %v", h, got, prev)
		}
		if got < 0 || got >= 360 {
			t.Fatalf("Warp(%.1f) = %v out of range", h, got)
		}
		prev = got
	}
}

func TestWarpContinuousAtBinEdges(t *testing.T) {
	w := NewWarpTable(skewedHistogram())
	const eps = 1e-7
	for bin := 1; bin < w.Bins(); bin++ {
		edge := float64(bin) * 5
		left, right := w.Warp(edge-eps), w.Warp(edge)
		if math.Abs(right-left) > 1e-3 {
			t.Errorf("discontinuity at %v: %v vs %v", edge, left, right)
		}
	}
}

func TestWarpExpandsDenseRegion(t *testing.T) {
	w := NewWarpTable(skewedHistogram())
	span := w.Warp(40) - w.Warp(20)
	if span <= 20 {
		t.Errorf("dense hues 20..40 span %v degrees, want more than 20", span)
	}
}

func TestWarpEmptyIsIdentity(t *testing.T) {
	w := NewWarpTable(NewHistogram(nil, DefaultBins))
	for _, h := range []float64{0, 12.5, 180, 359} {
		if got := w.Warp(h); math.Abs(got-h) > 1e-9 {
			t.Errorf("Warp(%v) = %v, want identity", h, got)
		}
	}
}
