package cli

import (
	"github.com/spf13/pflag"

	"github.com/colorsful/colorsful/internal/density"
	"github.com/colorsful/colorsful/internal/layout"
	"github.com/colorsful/colorsful/internal/nebula"
	"github.com/colorsful/colorsful/internal/render"
)

// The bind helpers register option structs on a flag set with the struct's
// current values as defaults, so every command shares one spelling.

func bindRankFlags(fs *pflag.FlagSet, o *layout.RankOptions) {
	fs.Float64Var(&o.Window, "window", o.Window, "lightness neighbourhood half width in degrees")
	fs.Float64Var(&o.Exponent, "exponent", o.Exponent, "exponent applied to the lightness rank")
}

func bindProfileFlags(fs *pflag.FlagSet, o *density.ProfileOptions) {
	fs.IntVar(&o.Smooth, "smooth", o.Smooth, "moving-average half window in bins")
	fs.Float64Var(&o.BaseMin, "base-min", o.BaseMin, "radius available at every angle")
	fs.Float64Var(&o.ScaleFactor, "scale-factor", o.ScaleFactor, "extra radius per unit of relative density")
	fs.Float64Var(&o.RangeCap, "range-cap", o.RangeCap, "upper bound on the extra radius")
}

func bindNebulaFlags(fs *pflag.FlagSet, o *nebula.Options) {
	fs.IntVar(&o.Sectors, "sectors", o.Sectors, "angular sectors in the coarse grid")
	fs.IntVar(&o.Rings, "rings", o.Rings, "rings in the coarse grid")
	fs.Float64Var(&o.FillSpan, "fill-span", o.FillSpan, "degrees searched to fill empty cells")
	fs.Float64Var(&o.SaturationBoost, "saturation-boost", o.SaturationBoost, "saturation multiplier for cells")
	fs.Float64Var(&o.LightnessFloor, "lightness-floor", o.LightnessFloor, "minimum cell lightness")
	fs.Float64Var(&o.LightnessCeiling, "lightness-ceiling", o.LightnessCeiling, "maximum cell lightness")
	fs.Float64Var(&o.EdgeFade, "edge-fade", o.EdgeFade, "fraction of the radius after which cells shrink")
	fs.Float64Var(&o.Jitter, "jitter", o.Jitter, "positional dither of cells")
	fs.IntVar(&o.FineResolution, "fine-resolution", o.FineResolution, "fine raster resolution (0 disables)")
	fs.IntVar(&o.IDWNeighbours, "idw-neighbours", o.IDWNeighbours, "seeds blended per fine raster point")
}

func bindRenderFlags(fs *pflag.FlagSet, o *render.Options) {
	fs.IntVar(&o.Size, "size", o.Size, "PNG edge length in pixels")
	fs.BoolVar(&o.Fine, "paint-fine", o.Fine, "paint the fine raster")
	fs.BoolVar(&o.Points, "paint-points", o.Points, "paint the sample points")
	fs.Float64Var(&o.CellAlpha, "cell-alpha", o.CellAlpha, "opacity of coarse cells")
}
