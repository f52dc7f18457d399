package density

import (
	"github.com/colorsful/colorsful/internal/colour"
)

// WarpTable remaps hue angles so each bin's angular span is proportional to
// its share of the catalog. Dense hue regions get more room on the wheel.
type WarpTable struct {
	// Stops has N+1 entries: Stops[0] is 0, Stops[N] is 360 and the
	// sequence never decreases.
	Stops []float64
	width float64
}

// NewWarpTable builds the cumulative warp for h.
func NewWarpTable(h Histogram) WarpTable {
	shares := h.Shares()
	n := len(shares)
	stops := make([]float64, n+1)
	for i, s := range shares {
		stops[i+1] = stops[i] + s*360
	}
	if n > 0 {
		stops[n] = 360
	}
	return WarpTable{Stops: stops, width: h.BinWidth()}
}

// Bins returns the number of bins the table spans.
func (w WarpTable) Bins() int {
	if len(w.Stops) == 0 {
		return 0
	}
	return len(w.Stops) - 1
}

// Warp maps hue onto the equalised wheel, interpolating linearly inside the
// hue's bin. The mapping is continuous and non-decreasing on [0,360).
func (w WarpTable) Warp(hue float64) float64 {
	n := w.Bins()
	hue = colour.NormalizeDegrees(hue)
	if n == 0 {
		return hue
	}
	bin := int(hue / w.width)
	if bin >= n {
		bin = n - 1
	}
	frac := (hue - float64(bin)*w.width) / w.width
	start, end := w.Stops[bin], w.Stops[bin+1]
	return colour.NormalizeDegrees(start + frac*(end-start))
}
