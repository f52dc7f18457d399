package nebula

import (
	"math/rand"

	"github.com/hashicorp/go-hclog"

	"github.com/colorsful/colorsful/internal/boundary"
	"github.com/colorsful/colorsful/internal/catalog"
	"github.com/colorsful/colorsful/internal/layout"
	"github.com/colorsful/colorsful/internal/seed"
)

// Nebula is a placed catalog together with its synthesised colour field.
type Nebula struct {
	Points []layout.Point `json:"points"`
	Cells  []Cell         `json:"cells"`
	Fine   []Cell         `json:"fine"`
}

// BuildOptions configure Build.
type BuildOptions struct {
	Field Options
	Rank  layout.RankOptions

	// Rand drives dither. Nil uses a generator seeded with seed.DefaultSeed.
	Rand *rand.Rand

	Logger hclog.Logger
}

// DefaultBuildOptions returns the standard build settings.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Field: DefaultOptions(),
		Rank:  layout.DefaultRankOptions(),
	}
}

// Build places records inside table with the logo layout, using each
// record's home colour, and synthesises the coarse and fine fields. A nil
// table uses boundary.Default. Zero or invalid Field and Rank options fall
// back to their defaults. Every call computes a fresh result.
func Build(records []catalog.Record, table *boundary.Table, opts BuildOptions) Nebula {
	if table == nil {
		table = boundary.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	rng := opts.Rand
	if rng == nil {
		rng = seed.NewRand(seed.DefaultSeed)
	}
	field := opts.Field
	if field == (Options{}) {
		field = DefaultOptions()
	} else if err := field.Validate(); err != nil {
		logger.Warn("invalid nebula options, using defaults", "error", err)
		field = DefaultOptions()
	}
	if field.Area <= 0 {
		field.Area = table.Area()
	}
	rank := opts.Rank
	if rank == (layout.RankOptions{}) {
		rank = layout.DefaultRankOptions()
	} else if err := rank.Validate(); err != nil {
		logger.Warn("invalid rank options, using defaults", "error", err)
		rank = layout.DefaultRankOptions()
	}

	points := layout.Build(records, catalog.ContextHome, layout.NewLogo(table, rank))
	logger.Debug("placed catalog", "records", len(records), "points", len(points))

	cells := Synthesize(points, table, field, rng)
	fine := Refine(cells, table, field)
	logger.Debug("synthesised nebula", "cells", len(cells), "fine", len(fine), "area", field.Area)

	return Nebula{Points: points, Cells: cells, Fine: fine}
}
