package boundary

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/colorsful/colorsful/internal/density"
)

var _ density.Limit = (*Table)(nil)

func constantRadii(r float64) []float64 {
	radii := make([]float64, Size)
	for i := range radii {
		radii[i] = r
	}
	return radii
}

func TestDefault(t *testing.T) {
	tbl := Default()
	if tbl.Version == "" {
		t.Error("default table should carry a version")
	}
	for i, r := range tbl.Radii {
		if r <= 0 || r > MaxValue {
			t.Fatalf("Radii[%d] = %v outside (0, 50]", i, r)
		}
	}

	// Callers get independent copies.
	tbl.Radii[0] = 1
	if Default().Radii[0] == 1 {
		t.Error("Default() should return a fresh table")
	}
}

func TestLoad(t *testing.T) {
	bare, _ := json.Marshal(constantRadii(30))
	versioned, _ := json.Marshal(map[string]any{"version": "v2", "radii": constantRadii(40)})
	tooShort, _ := json.Marshal(constantRadii(30)[:359])
	badValue := constantRadii(30)
	badValue[10] = 51
	tooLarge, _ := json.Marshal(badValue)
	badValue[10] = 0
	zero, _ := json.Marshal(badValue)

	tests := []struct {
		name        string
		input       string
		wantVersion string
		wantRadius  float64
		wantErr     string
	}{
		{name: "bare array", input: string(bare), wantRadius: 30},
		{name: "versioned object", input: string(versioned), wantVersion: "v2", wantRadius: 40},
		{name: "empty", input: "  ", wantErr: "empty"},
		{name: "wrong length", input: string(tooShort), wantErr: "360 entries"},
		{name: "above half canvas", input: string(tooLarge), wantErr: "10 degrees"},
		{name: "zero radius", input: string(zero), wantErr: "10 degrees"},
		{name: "malformed", input: "{", wantErr: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Load(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if tbl.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", tbl.Version, tt.wantVersion)
			}
			if tbl.MaxRadius(123) != tt.wantRadius {
				t.Errorf("MaxRadius(123) = %v, want %v", tbl.MaxRadius(123), tt.wantRadius)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boundary.json")
	data, _ := json.Marshal(constantRadii(25))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Errorf("LoadFile() error = %v", err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFile() on a missing file should fail")
	}
}

func TestMaxRadiusWraps(t *testing.T) {
	radii := constantRadii(30)
	radii[0] = 10
	radii[359] = 20
	tbl, err := New("", radii)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		angle float64
		want  float64
	}{
		{0, 10},
		{0.99, 10},
		{360, 10},
		{-0.5, 20},
		{359.999, 20},
		{720.2, 10},
		{1, 30},
	}
	for _, tt := range tests {
		if got := tbl.MaxRadius(tt.angle); got != tt.want {
			t.Errorf("MaxRadius(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 45, 90, 180, 271.5} {
		x, y := Point(angle, 20)
		gotAngle, gotR := Polar(x, y)
		if math.Abs(gotR-20) > 1e-9 || math.Abs(gotAngle-angle) > 1e-9 {
			t.Errorf("Polar(Point(%v, 20)) = (%v, %v)", angle, gotAngle, gotR)
		}
	}

	// Angle zero points straight up.
	if x, y := Point(0, 10); math.Abs(x-50) > 1e-9 || math.Abs(y-40) > 1e-9 {
		t.Errorf("Point(0, 10) = (%v, %v), want (50, 40)", x, y)
	}
}

func TestContains(t *testing.T) {
	tbl, _ := New("", constantRadii(30))
	if !tbl.Contains(50, 50) {
		t.Error("centre should be inside")
	}
	if !tbl.Contains(50, 25) {
		t.Error("(50, 25) should be inside a radius-30 disc")
	}
	if tbl.Contains(95, 50) {
		t.Error("(95, 50) should be outside a radius-30 disc")
	}
}

func TestTriangulateAndArea(t *testing.T) {
	tbl, _ := New("", constantRadii(30))

	indices, err := tbl.Triangulate()
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}
	if len(indices) != 3*(Size-2) {
		t.Errorf("got %d indices, want %d", len(indices), 3*(Size-2))
	}

	circle := math.Pi * 30 * 30
	if got := tbl.Area(); math.Abs(got-circle)/circle > 0.001 {
		t.Errorf("Area() = %v, want about %v", got, circle)
	}
	if got := tbl.sectorArea(); math.Abs(got-tbl.Area()) > 1e-6 {
		t.Errorf("sectorArea() = %v, Area() = %v", got, tbl.Area())
	}

	if Default().Area() <= 0 {
		t.Error("default silhouette should have a positive area")
	}
}
