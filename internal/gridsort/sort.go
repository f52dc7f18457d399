// Package gridsort orders a catalog for the grid view: hue buckets in wheel
// order, saturation bands within each bucket, and a greedy nearest-neighbour
// chain through LAB space within each band.
package gridsort

import (
	"fmt"
	"slices"
	"strings"

	"github.com/colorsful/colorsful/internal/catalog"
)

// DefaultIndexThreshold is the band size above which chaining uses a k-d tree.
const DefaultIndexThreshold = 512

// Options configure Sort.
type Options struct {
	// Buckets in wheel order. Nil uses DefaultBuckets. Samples outside every
	// bucket are chained last.
	Buckets []Bucket

	// Anchor rotates the result so the first sample whose title contains it,
	// ignoring case, comes first.
	Anchor string

	// IndexThreshold is the band size above which a k-d tree replaces the
	// linear nearest-neighbour scan. Zero or less disables the tree.
	IndexThreshold int
}

// DefaultOptions returns the standard sort settings.
func DefaultOptions() Options {
	return Options{
		Buckets:        DefaultBuckets(),
		IndexThreshold: DefaultIndexThreshold,
	}
}

// Validate checks the bucket table.
func (o Options) Validate() error {
	if err := validateBuckets(o.Buckets); err != nil {
		return fmt.Errorf("invalid sort buckets: %w", err)
	}
	return nil
}

// Sort returns a permutation of samples in grid order. Odd-indexed buckets
// are reversed so adjacent buckets meet at similar colours.
func Sort(samples []catalog.Sample, opts Options) []catalog.Sample {
	out := make([]catalog.Sample, 0, len(samples))
	if len(samples) == 0 {
		return out
	}

	buckets := opts.Buckets
	if buckets == nil {
		buckets = DefaultBuckets()
	}

	groups := make([][]catalog.Sample, len(buckets)+1)
	for _, s := range samples {
		b := BucketOf(buckets, s.HSL.H)
		groups[b] = append(groups[b], s)
	}

	for i, group := range groups {
		if len(group) == 0 {
			continue
		}
		bands := make([][]catalog.Sample, len(Bands()))
		for _, s := range group {
			band := BandOf(s.HSL.S)
			bands[band] = append(bands[band], s)
		}

		seq := make([]catalog.Sample, 0, len(group))
		for _, members := range bands {
			indexed := opts.IndexThreshold > 0 && len(members) > opts.IndexThreshold
			seq = append(seq, chain(members, indexed)...)
		}
		if i%2 == 1 {
			slices.Reverse(seq)
		}
		out = append(out, seq...)
	}

	return rotate(out, opts.Anchor)
}

// SortRecords orders records by their grid colour. Records without a
// parseable colour are dropped.
func SortRecords(records []catalog.Record, opts Options) []catalog.Record {
	return catalog.Records(Sort(catalog.Prepare(records, catalog.ContextGrid), opts))
}

// chain walks members greedily: it starts at the most saturated and always
// steps to the nearest unvisited member in LAB space. Ties go to the earlier
// member.
func chain(members []catalog.Sample, indexed bool) []catalog.Sample {
	n := len(members)
	if n == 0 {
		return nil
	}

	points := make([][3]float64, n)
	start := 0
	for i, s := range members {
		points[i] = labPoint(s.Lab)
		if s.HSL.S > members[start].HSL.S {
			start = i
		}
	}

	var tree *kdTree
	if indexed {
		tree = newKDTree(points)
	}
	visited := make([]bool, n)
	out := make([]catalog.Sample, 0, n)

	for current := start; current >= 0; {
		out = append(out, members[current])
		visited[current] = true
		if tree != nil {
			tree.Remove(current)
			current = tree.Nearest(points[current])
			continue
		}

		next, best := -1, 0.0
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if d := dist2(points[current], points[j]); next < 0 || d < best {
				next, best = j, d
			}
		}
		current = next
	}
	return out
}

func rotate(samples []catalog.Sample, anchor string) []catalog.Sample {
	anchor = strings.ToLower(strings.TrimSpace(anchor))
	if anchor == "" {
		return samples
	}
	for i, s := range samples {
		if strings.Contains(strings.ToLower(s.Record.Title), anchor) {
			return append(samples[i:len(samples):len(samples)], samples[:i]...)
		}
	}
	return samples
}
