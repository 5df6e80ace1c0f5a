// Package render draws smoothed polygons onto a pixel canvas.
//
// The canvas maps the fixed normalized [0,1]×[0,1] model space onto its pixel
// grid with a 1:1 aspect ratio: the unit square is scaled uniformly by the
// smaller canvas dimension and centered. Rasterization is anti-aliased, via
// golang.org/x/image/vector.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	chaikin "github.com/Farbfetzen/corner-cutting"
)

// Canvas is a fixed-size RGBA image with a normalized model-space viewport.
type Canvas struct {
	img *image.RGBA
	// tf maps model space to pixel space.
	tf chaikin.Affine
	// scale is the uniform model-to-pixel factor, used to convert stroke
	// widths.
	scale float64
}

// New returns a canvas of the given pixel size, filled with the background
// color. Width and height must be positive.
func New(width, height int, background color.NRGBA) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	s := float64(min(width, height))
	off := chaikin.Vec(
		0.5*(float64(width)-s),
		0.5*(float64(height)-s),
	)
	return &Canvas{
		img:   img,
		tf:    chaikin.Scale(s, s).ThenTranslate(off),
		scale: s,
	}
}

// Image returns the canvas's pixels. The canvas keeps drawing into the
// returned image.
func (c *Canvas) Image() image.Image {
	return c.img
}

// Fill fills the polygon described by pts (implicitly closed) with the given
// color.
func (c *Canvas) Fill(pts []chaikin.Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	z := c.rasterizer()
	c.moveTo(z, pts[0])
	for _, pt := range pts[1:] {
		c.lineTo(z, pt)
	}
	z.ClosePath()
	c.paint(z, col)
}

// Stroke draws the polyline described by pts, closing it back to the first
// point if closed is set. The width is in model units.
func (c *Canvas) Stroke(pts []chaikin.Point, closed bool, width float64, col color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	w := width * c.scale
	if w <= 0 {
		return
	}
	z := c.rasterizer()
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		c.strokeSegment(z, pts[i], pts[(i+1)%n], w)
	}
	// Cover the joints; a square per corner is plenty at typical widths.
	for i, pt := range pts {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		c.jointSquare(z, pt, w)
	}
	c.paint(z, col)
}

// Draw renders a polygon using its own presentation attributes. Filled closed
// polygons are both filled and outlined.
func (c *Canvas) Draw(p chaikin.Polygon) {
	if p.Closed && p.Filled {
		c.Fill(p.Corners, p.Color)
	}
	c.Stroke(p.Corners, p.Closed, p.Width, p.Color)
}

// Label draws a single line of text with its baseline at the given pixel
// position.
func (c *Canvas) Label(x, y int, text string, col color.NRGBA) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// EncodePNG writes the canvas as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, c.img); err != nil {
		return err
	}
	return f.Close()
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z
}

func (c *Canvas) paint(z *vector.Rasterizer, col color.NRGBA) {
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) moveTo(z *vector.Rasterizer, pt chaikin.Point) {
	p := pt.Transform(c.tf)
	z.MoveTo(float32(p.X), float32(p.Y))
}

func (c *Canvas) lineTo(z *vector.Rasterizer, pt chaikin.Point) {
	p := pt.Transform(c.tf)
	z.LineTo(float32(p.X), float32(p.Y))
}

// strokeSegment adds the quad outlining the segment from a to b at pixel
// width w. Degenerate segments add nothing.
func (c *Canvas) strokeSegment(z *vector.Rasterizer, a, b chaikin.Point, w float64) {
	pa := a.Transform(c.tf)
	pb := b.Transform(c.tf)
	d := pb.Sub(pa)
	if d.Hypot2() == 0 {
		return
	}
	n := chaikin.Vec(-d.Y, d.X).Normalize().Mul(0.5 * w)
	z.MoveTo(float32(pa.X+n.X), float32(pa.Y+n.Y))
	z.LineTo(float32(pb.X+n.X), float32(pb.Y+n.Y))
	z.LineTo(float32(pb.X-n.X), float32(pb.Y-n.Y))
	z.LineTo(float32(pa.X-n.X), float32(pa.Y-n.Y))
	z.ClosePath()
}

// jointSquare must wind the same way as strokeSegment's quads: the rasterizer
// accumulates signed winding, and opposite windings would cancel where the
// square overlaps a segment.
func (c *Canvas) jointSquare(z *vector.Rasterizer, pt chaikin.Point, w float64) {
	p := pt.Transform(c.tf)
	h := 0.5 * w
	z.MoveTo(float32(p.X-h), float32(p.Y-h))
	z.LineTo(float32(p.X-h), float32(p.Y+h))
	z.LineTo(float32(p.X+h), float32(p.Y+h))
	z.LineTo(float32(p.X+h), float32(p.Y-h))
	z.ClosePath()
}
