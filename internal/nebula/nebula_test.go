package nebula

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/colorsful/colorsful/internal/boundary"
	"github.com/colorsful/colorsful/internal/catalog"
	"github.com/colorsful/colorsful/internal/colour"
	"github.com/colorsful/colorsful/internal/density"
	"github.com/colorsful/colorsful/internal/layout"
	"github.com/colorsful/colorsful/internal/seed"
)

func testRecords(n int) []catalog.Record {
	records := make([]catalog.Record, n)
	for i := range records {
		records[i] = catalog.Record{
			URL:         fmt.Sprintf("https://example.com/v/%d", i),
			Color:       colour.HSLToRGB(float64(i*17%360), 70, float64(20+i*11%60)).Hex(),
			HexPickHome: colour.HSLToRGB(float64(i*23%360), 60, float64(25+i*7%50)).Hex(),
		}
	}
	return records
}

func TestBuildDeterministic(t *testing.T) {
	records := testRecords(150)
	a := Build(records, nil, DefaultBuildOptions())
	b := Build(records, nil, DefaultBuildOptions())
	if !reflect.DeepEqual(a, b) {
		t.Error("Build() with the default seed should be deterministic")
	}

	opts := DefaultBuildOptions()
	opts.Rand = seed.NewRand(99)
	c := Build(records, nil, opts)
	if reflect.DeepEqual(a.Cells, c.Cells) {
		t.Error("a different seed should move the dithered cells")
	}
}

func TestBuildUsesHomeColour(t *testing.T) {
	records := []catalog.Record{{Color: "#ff0000", HexPickHome: "#0000ff"}}
	n := Build(records, nil, DefaultBuildOptions())
	if len(n.Points) != 1 || n.Points[0].Sample.Hex != "#0000ff" {
		t.Fatalf("Points = %+v, want the home colour", n.Points)
	}
}

func TestBuildZeroOptions(t *testing.T) {
	records := testRecords(40)
	table := boundary.Default()
	zero := Build(records, table, BuildOptions{})
	def := Build(records, table, DefaultBuildOptions())

	if !reflect.DeepEqual(zero, def) {
		t.Errorf("Build() with zero options = %d points %d cells %d fine, want %d %d %d",
			len(zero.Points), len(zero.Cells), len(zero.Fine),
			len(def.Points), len(def.Cells), len(def.Fine))
	}
	if len(zero.Cells) == 0 {
		t.Fatal("Build() with zero options produced no cells")
	}
	atLimit := 0
	for _, p := range zero.Points {
		if p.Radius >= table.MaxRadius(p.AngleDeg)-1e-9 {
			atLimit++
		}
	}
	if atLimit == len(zero.Points) {
		t.Error("every point sits on the boundary; rank 0 should be at the centre")
	}
}

func TestBuildInvalidOptionsFallBack(t *testing.T) {
	records := testRecords(40)
	opts := DefaultBuildOptions()
	opts.Field.Sectors = -3
	opts.Rank.Window = 500
	got := Build(records, nil, opts)
	want := Build(records, nil, DefaultBuildOptions())
	if !reflect.DeepEqual(got, want) {
		t.Error("invalid options should fall back to the defaults")
	}
}

func TestBuildEmpty(t *testing.T) {
	n := Build(nil, nil, DefaultBuildOptions())
	if n.Points == nil || n.Cells == nil || n.Fine == nil {
		t.Fatal("Build(nil) should return empty non-nil slices")
	}
	if len(n.Points)+len(n.Cells)+len(n.Fine) != 0 {
		t.Errorf("Build(nil) = %+v, want empty", n)
	}
}

func TestSynthesizeCells(t *testing.T) {
	table := boundary.Default()
	opts := DefaultOptions()
	points := layout.Build(testRecords(300), catalog.ContextDefault, layout.NewLogo(table, layout.DefaultRankOptions()))

	cells := Synthesize(points, table, opts, seed.NewRand(seed.DefaultSeed))
	if len(cells) == 0 || len(cells) > opts.Sectors*opts.Rings {
		t.Fatalf("got %d cells", len(cells))
	}
	for _, c := range cells {
		if c.Size < 0 || math.IsNaN(c.Size) || c.Size > opts.MaxSize {
			t.Fatalf("cell size %v out of range", c.Size)
		}
		hsl := colour.RGBToHSL(c.Color)
		// Rounding to 8-bit channels can nudge lightness slightly.
		if hsl.L < opts.LightnessFloor-1 || hsl.L > opts.LightnessCeiling+1 {
			t.Fatalf("cell lightness %v outside [%v, %v]", hsl.L, opts.LightnessFloor, opts.LightnessCeiling)
		}
	}
}

func TestSynthesizeFillsGaps(t *testing.T) {
	opts := DefaultOptions()
	opts.Jitter = 0
	// Two points on the same ring, 20 degrees apart.
	red := catalog.NewSample(0, catalog.Record{}, colour.MustParseHex("#cc2222"))
	blue := catalog.NewSample(1, catalog.Record{}, colour.MustParseHex("#2222cc"))
	points := []layout.Point{
		layout.NewPoint(red, 2.5, 20),
		layout.NewPoint(blue, 22.5, 20),
	}

	cells := Synthesize(points, density.Constant(40), opts, nil)
	// Each point fills its own cell plus every cell within 45 degrees on
	// both sides of the ring: sectors -9..13.
	if want := 13 - (-9) + 1; len(cells) != want {
		t.Errorf("got %d cells, want %d", len(cells), want)
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	if got := Synthesize(nil, density.Constant(40), DefaultOptions(), nil); got == nil || len(got) != 0 {
		t.Errorf("Synthesize(nil) = %v, want empty", got)
	}
}

func TestRefine(t *testing.T) {
	opts := DefaultOptions()
	opts.FineResolution = 20
	seeds := []Cell{
		{X: 40, Y: 50, Color: colour.RGB{R: 255}},
		{X: 60, Y: 50, Color: colour.RGB{B: 255}},
	}

	fine := Refine(seeds, density.Constant(30), opts)
	if len(fine) == 0 {
		t.Fatal("Refine() returned no cells")
	}
	for _, c := range fine {
		if _, r := boundary.Polar(c.X, c.Y); r > 30 {
			t.Fatalf("cell (%v, %v) outside the limit", c.X, c.Y)
		}
		if c.Size != 5 {
			t.Fatalf("cell size = %v, want 5", c.Size)
		}
	}

	// The lattice point nearest the red seed is mostly red.
	for _, c := range fine {
		if c.X == 37.5 && c.Y == 47.5 && c.Color.R <= c.Color.B {
			t.Errorf("cell near red seed = %v", c.Color)
		}
	}

	if got := Refine(nil, density.Constant(30), opts); got == nil || len(got) != 0 {
		t.Errorf("Refine(nil) = %v, want empty", got)
	}
}

func TestNearestSeeds(t *testing.T) {
	seeds := []Cell{{X: 5}, {X: 1}, {X: 3}, {X: 1}, {X: 10}}
	got := nearestSeeds(seeds, 0, 0, 3, nil)
	want := []int{1, 3, 2}
	for i, n := range got {
		if n.index != want[i] {
			t.Errorf("nearest[%d] = %d, want %d", i, n.index, want[i])
		}
	}
}

func TestEdgeScale(t *testing.T) {
	tests := []struct {
		frac, fade, want float64
	}{
		{0.5, 0.85, 1},
		{0.85, 0.85, 1},
		{1, 0.85, 0},
		{0.925, 0.85, 0.5},
	}
	for _, tt := range tests {
		if got := edgeScale(tt.frac, tt.fade); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("edgeScale(%v, %v) = %v, want %v", tt.frac, tt.fade, got, tt.want)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	mutate := func(f func(*Options)) Options {
		o := DefaultOptions()
		f(&o)
		return o
	}
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{name: "defaults", opts: DefaultOptions()},
		{name: "no sectors", opts: mutate(func(o *Options) { o.Sectors = 0 }), wantErr: "sector"},
		{name: "inverted lightness", opts: mutate(func(o *Options) { o.LightnessFloor = 90 }), wantErr: "lightness"},
		{name: "edge fade", opts: mutate(func(o *Options) { o.EdgeFade = 0 }), wantErr: "edge fade"},
		{name: "idw epsilon", opts: mutate(func(o *Options) { o.IDWEpsilon = 0 }), wantErr: "epsilon"},
		{name: "fine disabled", opts: mutate(func(o *Options) { o.FineResolution = 0; o.IDWEpsilon = 0 })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLimitArea(t *testing.T) {
	got := limitArea(density.Constant(10))
	if math.Abs(got-math.Pi*100) > 1e-9 {
		t.Errorf("limitArea() = %v, want %v", got, math.Pi*100)
	}
}
