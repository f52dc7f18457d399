package layout

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/colorsful/colorsful/internal/boundary"
	"github.com/colorsful/colorsful/internal/catalog"
	"github.com/colorsful/colorsful/internal/colour"
	"github.com/colorsful/colorsful/internal/density"
)

// testCatalog spreads n records around the wheel at varying saturation and
// lightness.
func testCatalog(n int) []catalog.Record {
	records := make([]catalog.Record, n)
	for i := range records {
		h := float64(i*29%360) + 0.5
		s := float64(20 + i*7%80)
		l := float64(15 + i*13%70)
		records[i] = catalog.Record{
			URL:   fmt.Sprintf("https://example.com/v/%d", i),
			Title: fmt.Sprintf("Video %d", i),
			Color: colour.HSLToRGB(h, s, l).Hex(),
		}
	}
	return records
}

func policies(samples []catalog.Sample) []Policy {
	return []Policy{
		NewWheel(WheelOptions{}),
		NewEqualizedWheel(samples, 0),
		NewLightnessRank(boundary.Default(), DefaultRankOptions()),
		NewLogo(nil, DefaultRankOptions()),
		NewGradient(samples, nil, DefaultGradientOptions()),
	}
}

func TestPlaceEmpty(t *testing.T) {
	for _, p := range policies(nil) {
		t.Run(p.Name(), func(t *testing.T) {
			got := p.Place(nil)
			if got == nil || len(got) != 0 {
				t.Errorf("Place(nil) = %v, want empty non-nil slice", got)
			}
		})
	}
}

func TestBuildFiltersInvalidColours(t *testing.T) {
	records := testCatalog(12)
	records = append(records,
		catalog.Record{URL: "bad1", Color: "#abc"},
		catalog.Record{URL: "bad2", Color: "zzzzzz"},
		catalog.Record{URL: "bad3"},
	)
	samples := catalog.Prepare(records, catalog.ContextDefault)

	for _, p := range policies(samples) {
		t.Run(p.Name(), func(t *testing.T) {
			if got := Build(records, catalog.ContextDefault, p); len(got) != 12 {
				t.Errorf("Build() returned %d points, want 12", len(got))
			}
		})
	}
}

func TestPointsInCanvas(t *testing.T) {
	samples := catalog.Prepare(testCatalog(200), catalog.ContextDefault)
	for _, p := range policies(samples) {
		t.Run(p.Name(), func(t *testing.T) {
			for _, pt := range p.Place(samples) {
				if pt.AngleDeg < 0 || pt.AngleDeg >= 360 {
					t.Fatalf("angle %v out of range", pt.AngleDeg)
				}
				if pt.Radius < 0 || pt.Radius > 50 {
					t.Fatalf("radius %v out of range", pt.Radius)
				}
				if pt.X < 0 || pt.X > 100 || pt.Y < 0 || pt.Y > 100 {
					t.Fatalf("point (%v, %v) outside the canvas", pt.X, pt.Y)
				}
			}
		})
	}
}

func TestLogoContainment(t *testing.T) {
	table := boundary.Default()
	samples := catalog.Prepare(testCatalog(500), catalog.ContextDefault)

	for _, pt := range NewLogo(table, DefaultRankOptions()).Place(samples) {
		limit := table.Radii[int(math.Floor(pt.AngleDeg))%360]
		if pt.Radius > limit+1e-9 {
			t.Fatalf("radius %v at %v exceeds boundary %v", pt.Radius, pt.AngleDeg, limit)
		}
	}
}

func TestGradientClampedByBoundary(t *testing.T) {
	table := boundary.Default()
	samples := catalog.Prepare(testCatalog(300), catalog.ContextDefault)
	for _, pt := range NewGradient(samples, table, DefaultGradientOptions()).Place(samples) {
		if pt.Radius > table.MaxRadius(pt.AngleDeg)+1e-9 {
			t.Fatalf("radius %v at %v exceeds boundary", pt.Radius, pt.AngleDeg)
		}
	}
}

func TestWheelRadiusIsHalfVibrancy(t *testing.T) {
	tests := []struct {
		hex        string
		wantRadius float64
		wantAngle  float64
	}{
		{hex: "#ff0000", wantRadius: 50, wantAngle: 0},
		{hex: "#00ff00", wantRadius: 50, wantAngle: 120},
		{hex: "#808080", wantRadius: 0, wantAngle: 0},
	}
	for i, tt := range tests {
		s := catalog.NewSample(0, catalog.Record{}, colour.MustParseHex(tt.hex))
		pt := NewWheel(WheelOptions{}).Place([]catalog.Sample{s})[0]
		if math.Abs(pt.Radius-tt.wantRadius) > 1e-9 {
			t.Errorf("case %d: radius = %v, want %v", i, pt.Radius, tt.wantRadius)
		}
		if math.Abs(pt.AngleDeg-tt.wantAngle) > 1e-9 {
			t.Errorf("case %d: angle = %v, want %v", i, pt.AngleDeg, tt.wantAngle)
		}
	}
}

func TestGreysDeclustered(t *testing.T) {
	records := make([]catalog.Record, 10)
	for i := range records {
		records[i] = catalog.Record{Color: "#808080"}
	}

	for _, p := range policies(nil) {
		t.Run(p.Name(), func(t *testing.T) {
			seen := make(map[float64]bool)
			for _, pt := range Build(records, catalog.ContextDefault, p) {
				key := math.Round(pt.AngleDeg*1e6) / 1e6
				if seen[key] {
					t.Fatalf("duplicate angle %v", pt.AngleDeg)
				}
				seen[key] = true
			}
		})
	}
}

func TestLightnessRankOrder(t *testing.T) {
	// Three reds of decreasing lightness share a neighbourhood.
	records := []catalog.Record{
		{Color: colour.HSLToRGB(0, 80, 30).Hex()},
		{Color: colour.HSLToRGB(1, 80, 70).Hex()},
		{Color: colour.HSLToRGB(2, 80, 50).Hex()},
	}
	points := Build(records, catalog.ContextDefault, NewLightnessRank(density.Constant(40), DefaultRankOptions()))

	if points[1].Radius != 0 {
		t.Errorf("lightest radius = %v, want 0", points[1].Radius)
	}
	if points[0].Radius != 40 {
		t.Errorf("darkest radius = %v, want 40", points[0].Radius)
	}
	want := math.Pow(0.5, 0.6) * 40
	if math.Abs(points[2].Radius-want) > 1e-9 {
		t.Errorf("middle radius = %v, want %v", points[2].Radius, want)
	}
}

func TestLonelySampleAtCentre(t *testing.T) {
	records := []catalog.Record{
		{Color: colour.HSLToRGB(0, 80, 30).Hex()},
		{Color: colour.HSLToRGB(180, 80, 30).Hex()},
	}
	for _, pt := range Build(records, catalog.ContextDefault, NewLightnessRank(density.Constant(40), DefaultRankOptions())) {
		if pt.Radius != 0 {
			t.Errorf("lonely sample radius = %v, want 0", pt.Radius)
		}
	}
}

func TestRankZeroAtCentreForAnyExponent(t *testing.T) {
	records := []catalog.Record{
		{Color: colour.HSLToRGB(0, 80, 70).Hex()},
		{Color: colour.HSLToRGB(1, 80, 30).Hex()},
		{Color: colour.HSLToRGB(180, 80, 30).Hex()},
	}
	for _, exp := range []float64{0, -1, 0.6} {
		opts := RankOptions{Window: 6, Exponent: exp}
		points := Build(records, catalog.ContextDefault, NewLightnessRank(density.Constant(40), opts))
		if points[0].Radius != 0 || points[2].Radius != 0 {
			t.Errorf("exponent %v: rank-0 radii = %v, %v, want 0", exp, points[0].Radius, points[2].Radius)
		}
	}
}

func TestZeroRankOptionsUseDefaults(t *testing.T) {
	records := []catalog.Record{
		{Color: colour.HSLToRGB(0, 80, 30).Hex()},
		{Color: colour.HSLToRGB(1, 80, 70).Hex()},
		{Color: colour.HSLToRGB(2, 80, 50).Hex()},
	}
	zero := Build(records, catalog.ContextDefault, NewLightnessRank(density.Constant(40), RankOptions{}))
	def := Build(records, catalog.ContextDefault, NewLightnessRank(density.Constant(40), DefaultRankOptions()))
	for i := range def {
		if zero[i].Radius != def[i].Radius {
			t.Errorf("point %d radius = %v, want %v", i, zero[i].Radius, def[i].Radius)
		}
	}
}

func TestJitterKeyedOnIndex(t *testing.T) {
	s := catalog.NewSample(13, catalog.Record{}, colour.HSLToRGB(100, 60, 50))
	pt := NewLightnessRank(density.Constant(40), DefaultRankOptions()).Place([]catalog.Sample{s})[0]
	want := s.HSL.H + (3-4.5)*0.4
	if math.Abs(pt.AngleDeg-want) > 1e-9 {
		t.Errorf("angle = %v, want %v", pt.AngleDeg, want)
	}
}

func TestRankOptionsValidate(t *testing.T) {
	tests := []struct {
		opts    RankOptions
		wantErr bool
	}{
		{opts: DefaultRankOptions()},
		{opts: RankOptions{Window: 0, Exponent: 1}, wantErr: true},
		{opts: RankOptions{Window: 181, Exponent: 1}, wantErr: true},
		{opts: RankOptions{Window: 6, Exponent: 0}, wantErr: true},
	}
	for _, tt := range tests {
		if err := tt.opts.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.opts, err, tt.wantErr)
		}
	}
}

func TestPointJSON(t *testing.T) {
	s := catalog.NewSample(0, catalog.Record{URL: "u", Title: "t"}, colour.MustParseHex("#ff0000"))
	data, err := json.Marshal(NewPoint(s, 90, 10))
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"url", "title", "hex", "angleDeg", "radius", "wheelX", "wheelY"} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if got["hex"] != "#ff0000" || math.Abs(got["wheelX"].(float64)-60) > 1e-9 {
		t.Errorf("unexpected JSON %s", data)
	}
}
