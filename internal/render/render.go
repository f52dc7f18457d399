// Package render rasterises a nebula into a PNG preview.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"github.com/colorsful/colorsful/internal/boundary"
	"github.com/colorsful/colorsful/internal/colour"
	"github.com/colorsful/colorsful/internal/nebula"
)

// Options configure the preview.
type Options struct {
	Size        int        // square canvas edge in pixels
	Background  colour.RGB // outside the silhouette
	Tint        float64    // how far the silhouette base leans towards the catalog's mean colour
	CellAlpha   float64    // opacity of coarse cells
	Fine        bool       // paint the fine raster under the coarse cells
	Points      bool       // paint the sample points on top
	PointRadius float64    // in pixels
	Segments    int        // polygon segments per circle
}

// DefaultOptions returns the standard preview settings.
func DefaultOptions() Options {
	return Options{
		Size:        800,
		Background:  colour.RGB{R: 11, G: 11, B: 18},
		Tint:        0.2,
		CellAlpha:   0.55,
		Fine:        true,
		Points:      true,
		PointRadius: 2,
		Segments:    20,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.Size < 16 || o.Size > 8192 {
		return fmt.Errorf("size must be between 16 and 8192 pixels, got %d", o.Size)
	}
	if o.Tint < 0 || o.Tint > 1 || o.CellAlpha < 0 || o.CellAlpha > 1 {
		return fmt.Errorf("tint and cell alpha must be in [0, 1]")
	}
	if o.Segments < 3 {
		return fmt.Errorf("circles need at least 3 segments, got %d", o.Segments)
	}
	return nil
}

// Nebula paints n clipped to the silhouette of table. A nil table uses
// boundary.Default.
func Nebula(n nebula.Nebula, table *boundary.Table, opts Options) (*image.RGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		table = boundary.Default()
	}

	size := opts.Size
	bounds := image.Rect(0, 0, size, size)
	scale := float64(size) / 100

	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(opts.Background.Color()), image.Point{}, draw.Src)

	mask, err := silhouetteMask(table, size)
	if err != nil {
		return nil, err
	}

	base := colour.Blend(opts.Background, meanColour(n.Cells), opts.Tint)
	layer := image.NewRGBA(bounds)
	draw.Draw(layer, bounds, image.NewUniform(base.Color()), image.Point{}, draw.Src)

	if opts.Fine {
		for _, c := range n.Fine {
			half := c.Size * scale / 2
			r := image.Rect(
				int(math.Floor(c.X*scale-half)), int(math.Floor(c.Y*scale-half)),
				int(math.Ceil(c.X*scale+half)), int(math.Ceil(c.Y*scale+half)),
			)
			draw.Draw(layer, r.Intersect(bounds), image.NewUniform(c.Color.Color()), image.Point{}, draw.Src)
		}
	}

	z := vector.NewRasterizer(1, 1)
	for _, c := range n.Cells {
		if c.Size <= 0 {
			continue
		}
		fillCircle(z, layer, c.X*scale, c.Y*scale, c.Size*scale/2, opts.Segments, withAlpha(c.Color, opts.CellAlpha))
	}
	if opts.Points {
		for _, p := range n.Points {
			fillCircle(z, layer, p.X*scale, p.Y*scale, opts.PointRadius, opts.Segments, withAlpha(p.Sample.RGB, 1))
		}
	}

	draw.DrawMask(dst, bounds, layer, image.Point{}, mask, image.Point{}, draw.Over)
	return dst, nil
}

// silhouetteMask rasterises the triangulated silhouette into an alpha mask.
func silhouetteMask(table *boundary.Table, size int) (*image.Alpha, error) {
	triangles, err := table.Triangles()
	if err != nil {
		return nil, fmt.Errorf("failed to build silhouette mask: %w", err)
	}

	scale := float32(size) / 100
	z := vector.NewRasterizer(size, size)
	for _, tri := range triangles {
		z.MoveTo(float32(tri[0][0])*scale, float32(tri[0][1])*scale)
		z.LineTo(float32(tri[1][0])*scale, float32(tri[1][1])*scale)
		z.LineTo(float32(tri[2][0])*scale, float32(tri[2][1])*scale)
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, nil
}

// fillCircle paints a polygonal disc, rasterising only its clipped bounding
// box.
func fillCircle(z *vector.Rasterizer, dst *image.RGBA, cx, cy, radius float64, segments int, c color.NRGBA) {
	box := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius)), int(math.Ceil(cy+radius)),
	).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	z.Reset(box.Dx(), box.Dy())
	z.DrawOp = draw.Over
	ox, oy := cx-float64(box.Min.X), cy-float64(box.Min.Y)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x, y := float32(ox+radius*math.Cos(theta)), float32(oy+radius*math.Sin(theta))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(dst, box, image.NewUniform(c), image.Point{})
}

func withAlpha(c colour.RGB, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}

func meanColour(cells []nebula.Cell) colour.RGB {
	if len(cells) == 0 {
		return colour.RGB{}
	}
	var r, g, b float64
	for _, c := range cells {
		r += float64(c.Color.R)
		g += float64(c.Color.G)
		b += float64(c.Color.B)
	}
	n := float64(len(cells))
	return colour.RGB{R: uint8(math.Round(r / n)), G: uint8(math.Round(g / n)), B: uint8(math.Round(b / n))}
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WriteFile encodes img to path, creating parent directories as needed.
func WriteFile(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path) // #nosec G304 -- user-specified output path
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WritePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
