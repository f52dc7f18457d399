// Package density profiles how a catalog's hues are distributed around the
// colour wheel and turns that profile into angular warps and radius limits.
package density

import (
	"math"

	"github.com/colorsful/colorsful/internal/colour"
)

const (
	// DefaultBins splits the wheel into 5 degree bins.
	DefaultBins = 72

	// BaselineFraction of the catalog size is spread evenly over all bins so
	// that empty regions of the wheel keep a sliver of angular space.
	BaselineFraction = 0.05
)

// Histogram holds raw hue counts over equal-width bins.
type Histogram struct {
	Counts []float64
	Total  int
}

// NewHistogram counts hues into bins. Hues are normalised into [0,360) first.
// A bin count below one falls back to DefaultBins.
func NewHistogram(hues []float64, bins int) Histogram {
	if bins < 1 {
		bins = DefaultBins
	}
	h := Histogram{Counts: make([]float64, bins)}
	for _, hue := range hues {
		if math.IsNaN(hue) || math.IsInf(hue, 0) {
			continue
		}
		h.Counts[h.BinOf(hue)]++
		h.Total++
	}
	return h
}

// Bins returns the number of bins.
func (h Histogram) Bins() int {
	return len(h.Counts)
}

// BinWidth returns the width of one bin in degrees.
func (h Histogram) BinWidth() float64 {
	if len(h.Counts) == 0 {
		return 360
	}
	return 360 / float64(len(h.Counts))
}

// BinOf returns the bin index a hue falls into.
func (h Histogram) BinOf(hue float64) int {
	n := len(h.Counts)
	if n == 0 {
		return 0
	}
	bin := int(math.Floor(colour.NormalizeDegrees(hue) / h.BinWidth()))
	if bin >= n {
		bin = n - 1
	}
	return bin
}

// Baselined returns the counts with total*BaselineFraction/N added to each bin.
func (h Histogram) Baselined() []float64 {
	n := len(h.Counts)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	baseline := float64(h.Total) * BaselineFraction / float64(n)
	for i, c := range h.Counts {
		out[i] = c + baseline
	}
	return out
}

// Shares returns the baselined counts normalised to sum to one. An empty
// histogram yields a uniform distribution.
func (h Histogram) Shares() []float64 {
	values := h.Baselined()
	n := len(values)
	if n == 0 {
		return values
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	if sum <= 0 {
		for i := range values {
			values[i] = 1 / float64(n)
		}
		return values
	}
	for i := range values {
		values[i] /= sum
	}
	return values
}

// Smooth applies a symmetric moving average over +/-k neighbours, wrapping
// around the ends. The window never counts a bin twice.
func Smooth(values []float64, k int) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if k < 0 {
		k = 0
	}
	if 2*k+1 > n {
		k = (n - 1) / 2
	}
	window := float64(2*k + 1)
	for i := range values {
		var sum float64
		for d := -k; d <= k; d++ {
			sum += values[((i+d)%n+n)%n]
		}
		out[i] = sum / window
	}
	return out
}
