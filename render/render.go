// Package render rasterizes a grid for display. Walls are black, open
// cells white and openings (or the overlaid path) red.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/lvmaze/grid"
)

// ErrGridNil is returned if a nil grid is passed.
var ErrGridNil = errors.New("render: grid is nil")

var (
	wallColor    = color.RGBA{0, 0, 0, 255}
	openColor    = color.RGBA{255, 255, 255, 255}
	openingColor = color.RGBA{220, 40, 40, 255}
)

// Color returns the display color of a cell state.
func Color(c grid.Cell) color.Color {
	switch c {
	case grid.Open:
		return openColor
	case grid.Opening:
		return openingColor
	}
	return wallColor
}

// gridImage exposes a grid as an image.Image; every pixel is looked up
// in the cell it falls into.
type gridImage struct {
	g          *grid.Grid
	cellPixels int
}

func (m *gridImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.Cols()*m.cellPixels, m.g.Rows()*m.cellPixels)
}

func (m *gridImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.Bounds()) {
		return color.Transparent
	}
	v, _ := m.g.Lookup(grid.At(y/m.cellPixels, x/m.cellPixels))
	return Color(v)
}

// Image returns a lazily evaluated view of g. The view reads g on every
// At call, so later changes to g show through.
// WithMargin is ignored here; it applies to PNG only.
func Image(g *grid.Grid, opts ...Option) (image.Image, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	cfg := newConfig(opts...)
	return &gridImage{g: g, cellPixels: cfg.cellPixels}, nil
}

// Rasterize snapshots g into an RGBA image, framed by the configured
// margin.
func Rasterize(g *grid.Grid, opts ...Option) (*image.RGBA, error) {
	pic, err := Image(g, opts...)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if cfg.margin > 0 {
		pic = image_utils.AddImageBorder(pic, openColor, cfg.margin)
	}

	b := pic.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), pic, b.Min, draw.Src)
	return out, nil
}

// PNG encodes g as a PNG image to w.
func PNG(w io.Writer, g *grid.Grid, opts ...Option) error {
	pic, err := Rasterize(g, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, pic); err != nil {
		return fmt.Errorf("PNG: %w", err)
	}
	return nil
}
