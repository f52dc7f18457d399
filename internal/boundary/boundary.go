// Package boundary holds the calibrated logo silhouette: one maximum radius
// per integer degree, in the same percent units as layout coordinates.
package boundary

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/rclancey/earcut"

	"github.com/colorsful/colorsful/internal/colour"
)

const (
	// Size is the number of entries in a table.
	Size = 360

	// MaxValue is the largest radius a table may hold, half the canvas.
	MaxValue = 50.0

	// Centre of the canvas in percent units.
	Centre = 50.0
)

//go:embed default.json
var defaultJSON []byte

// Table is a validated boundary table.
type Table struct {
	Version string
	Radii   [Size]float64
}

type tableFile struct {
	Version string    `json:"version"`
	Radii   []float64 `json:"radii"`
}

// New validates radii and returns a table.
func New(version string, radii []float64) (*Table, error) {
	if len(radii) != Size {
		return nil, fmt.Errorf("boundary table must have %d entries, got %d", Size, len(radii))
	}
	t := &Table{Version: version}
	for i, r := range radii {
		if math.IsNaN(r) || r <= 0 || r > MaxValue {
			return nil, fmt.Errorf("boundary radius at %d degrees must be in (0, %g], got %v", i, MaxValue, r)
		}
		t.Radii[i] = r
	}
	return t, nil
}

// Load reads a table from r. Both a bare JSON array of radii and an object of
// the form {"version": "...", "radii": [...]} are accepted.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary table: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("boundary table is empty")
	}

	var file tableFile
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &file.Radii); err != nil {
			return nil, fmt.Errorf("failed to parse boundary table: %w", err)
		}
	} else if err := json.Unmarshal(trimmed, &file); err != nil {
		return nil, fmt.Errorf("failed to parse boundary table: %w", err)
	}

	return New(file.Version, file.Radii)
}

// LoadFile reads a table from path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- user-specified boundary file
	if err != nil {
		return nil, fmt.Errorf("failed to open boundary table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns a fresh copy of the embedded calibrated table.
func Default() *Table {
	t, err := Load(bytes.NewReader(defaultJSON))
	if err != nil {
		panic(fmt.Sprintf("embedded boundary table is invalid: %v", err))
	}
	return t
}

// MaxRadius returns the radius at the floor of angleDeg, wrapping modulo 360.
func (t *Table) MaxRadius(angleDeg float64) float64 {
	i := int(math.Floor(colour.NormalizeDegrees(angleDeg))) % Size
	return t.Radii[i]
}

// Point converts a polar position to canvas coordinates. Angle 0 points up.
func Point(angleDeg, radius float64) (x, y float64) {
	theta := (angleDeg - 90) * math.Pi / 180
	return Centre + radius*math.Cos(theta), Centre + radius*math.Sin(theta)
}

// Polar converts canvas coordinates back to an angle and radius.
func Polar(x, y float64) (angleDeg, radius float64) {
	dx, dy := x-Centre, y-Centre
	angleDeg = colour.NormalizeDegrees(math.Atan2(dy, dx)*180/math.Pi + 90)
	return angleDeg, math.Hypot(dx, dy)
}

// Contains reports whether the canvas point lies inside the silhouette.
func (t *Table) Contains(x, y float64) bool {
	angle, r := Polar(x, y)
	return r <= t.MaxRadius(angle)
}

// Polygon returns the silhouette outline as flat x,y pairs, one vertex per
// degree.
func (t *Table) Polygon() []float64 {
	coords := make([]float64, 0, 2*Size)
	for d := 0; d < Size; d++ {
		x, y := Point(float64(d), t.Radii[d])
		coords = append(coords, x, y)
	}
	return coords
}

// Triangulate splits the silhouette into triangles. The result holds vertex
// indices into Polygon, three per triangle.
func (t *Table) Triangulate() ([]int, error) {
	indices, err := earcut.Earcut(t.Polygon(), nil, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to triangulate boundary: %w", err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("failed to triangulate boundary: %d indices is not a multiple of 3", len(indices))
	}
	return indices, nil
}

// Triangles returns the triangulated silhouette as canvas coordinates.
func (t *Table) Triangles() ([][3][2]float64, error) {
	indices, err := t.Triangulate()
	if err != nil {
		return nil, err
	}

	coords := t.Polygon()
	triangles := make([][3][2]float64, len(indices)/3)
	for i := range triangles {
		for v := 0; v < 3; v++ {
			idx := indices[i*3+v]
			triangles[i][v] = [2]float64{coords[idx*2], coords[idx*2+1]}
		}
	}
	return triangles, nil
}

// Area returns the silhouette area in square percent units. It sums the
// triangulation and falls back to the polar sector sum if that fails.
func (t *Table) Area() float64 {
	triangles, err := t.Triangles()
	if err != nil || len(triangles) == 0 {
		return t.sectorArea()
	}

	var area float64
	for _, tri := range triangles {
		a, b, c := tri[0], tri[1], tri[2]
		area += math.Abs((b[0]-a[0])*(c[1]-a[1])-(c[0]-a[0])*(b[1]-a[1])) / 2
	}
	return area
}

func (t *Table) sectorArea() float64 {
	var area float64
	step := math.Pi / 180
	for d := 0; d < Size; d++ {
		next := t.Radii[(d+1)%Size]
		area += 0.5 * t.Radii[d] * next * math.Sin(step)
	}
	return area
}
