package gridsort

import (
	"fmt"

	"github.com/colorsful/colorsful/internal/colour"
)

// HueRange is the half-open hue interval [From, To).
type HueRange struct {
	From float64
	To   float64
}

// Contains reports whether hue falls in the range.
func (r HueRange) Contains(hue float64) bool {
	return hue >= r.From && hue < r.To
}

// Bucket is a named group of hue ranges.
type Bucket struct {
	Name   string
	Ranges []HueRange
}

// Contains reports whether hue falls in any of the bucket's ranges.
func (b Bucket) Contains(hue float64) bool {
	hue = colour.NormalizeDegrees(hue)
	for _, r := range b.Ranges {
		if r.Contains(hue) {
			return true
		}
	}
	return false
}

// DefaultBuckets returns the hue buckets in grid order. Pink leads and its
// wrap-around half closes the sequence, so red, orange, light-blue, purple
// and pink-wrap sit at odd indexes and are reversed.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Name: "pink", Ranges: []HueRange{{290, 330}}},
		{Name: "red", Ranges: []HueRange{{10, 20}}},
		{Name: "brown", Ranges: []HueRange{{20, 35}}},
		{Name: "orange", Ranges: []HueRange{{35, 50}}},
		{Name: "yellow", Ranges: []HueRange{{50, 70}}},
		{Name: "green", Ranges: []HueRange{{70, 160}}},
		{Name: "light-blue", Ranges: []HueRange{{160, 200}}},
		{Name: "dark-blue", Ranges: []HueRange{{200, 250}}},
		{Name: "purple", Ranges: []HueRange{{250, 290}}},
		{Name: "pink-wrap", Ranges: []HueRange{{330, 360}, {0, 10}}},
	}
}

// BucketOf returns the index of the first bucket containing hue, or
// len(buckets) when none does.
func BucketOf(buckets []Bucket, hue float64) int {
	for i, b := range buckets {
		if b.Contains(hue) {
			return i
		}
	}
	return len(buckets)
}

func validateBuckets(buckets []Bucket) error {
	for i, b := range buckets {
		if b.Name == "" {
			return fmt.Errorf("bucket %d has no name", i)
		}
		if len(b.Ranges) == 0 {
			return fmt.Errorf("bucket %q has no hue ranges", b.Name)
		}
		for _, r := range b.Ranges {
			if r.From < 0 || r.To > 360 || r.From >= r.To {
				return fmt.Errorf("bucket %q has invalid range [%v, %v)", b.Name, r.From, r.To)
			}
		}
	}
	return nil
}

// Band is a saturation band.
type Band int

const (
	Vibrant Band = iota
	Saturated
	Muted
	Grey
)

var bandNames = [...]string{"vibrant", "saturated", "muted", "grey"}

// Bands lists the bands in output order.
func Bands() []Band {
	return []Band{Vibrant, Saturated, Muted, Grey}
}

func (b Band) String() string {
	if b < 0 || int(b) >= len(bandNames) {
		return fmt.Sprintf("band(%d)", int(b))
	}
	return bandNames[b]
}

// BandOf classifies an HSL saturation given in percent.
func BandOf(saturation float64) Band {
	s := saturation / 100
	switch {
	case s >= 0.5:
		return Vibrant
	case s >= 0.25:
		return Saturated
	case s >= 0.1:
		return Muted
	default:
		return Grey
	}
}
