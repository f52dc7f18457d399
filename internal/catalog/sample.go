package catalog

import (
	"github.com/colorsful/colorsful/internal/colour"
)

// Sample is a record with its selected colour resolved into every colour space
// the engine needs. Index is the record's position in the input catalog and is
// stable across runs, so it keys all deterministic jitter.
type Sample struct {
	Index  int
	Record Record
	Hex    string
	RGB    colour.RGB
	HSL    colour.HSL
	Lab    colour.Lab
}

// NewSample resolves rgb for the record at index.
func NewSample(index int, record Record, rgb colour.RGB) Sample {
	return Sample{
		Index:  index,
		Record: record,
		Hex:    rgb.Hex(),
		RGB:    rgb,
		HSL:    colour.RGBToHSL(rgb),
		Lab:    colour.RGBToLab(rgb),
	}
}

// BaseAngle is the sample's position on the wheel before any warping or jitter:
// its hue, or the golden-angle slot for its index when it is achromatic.
func (s Sample) BaseAngle() float64 {
	if s.HSL.Achromatic() {
		return colour.GoldenAngleHue(s.Index)
	}
	return s.HSL.H
}

// ColorFor resolves the colour for ctx. Empty fields fall through to the
// next candidate; the first non-empty one is the record's colour, and the
// record has none if it does not parse.
func (r Record) ColorFor(ctx Context) (colour.RGB, bool) {
	for _, candidate := range r.Candidates(ctx) {
		if candidate == "" {
			continue
		}
		return colour.ParseHex(candidate)
	}
	return colour.RGB{}, false
}

// Prepare resolves every record for ctx. Records without a parseable colour
// are dropped; the result preserves input order and is never nil.
func Prepare(records []Record, ctx Context) []Sample {
	samples := make([]Sample, 0, len(records))
	for i, r := range records {
		rgb, ok := r.ColorFor(ctx)
		if !ok {
			continue
		}
		samples = append(samples, NewSample(i, r, rgb))
	}
	return samples
}

// Records returns the records behind samples, in order.
func Records(samples []Sample) []Record {
	out := make([]Record, len(samples))
	for i, s := range samples {
		out[i] = s.Record
	}
	return out
}

// Hues returns the base angle of each sample, in order.
func Hues(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.BaseAngle()
	}
	return out
}
