package chaikin

import (
	"fmt"
	"image/color"
	"slices"
)

// Polygon is a point sequence together with presentation attributes. The
// corner-cutting transform only ever looks at Corners and Closed; everything
// else is passed through untouched for a renderer to interpret.
//
// The zero value is an empty open polyline; construct polygons with struct
// literals.
type Polygon struct {
	Corners []Point
	// Closed marks a polygon with an implicit edge from the last corner back
	// to the first. Open shapes are polylines with two free endpoints.
	Closed bool

	Color  color.NRGBA
	Filled bool
	// Width is the stroke width in model units.
	Width float64

	// Invert swaps the two cut points of every edge, producing spiky rather
	// than smooth results.
	Invert bool

	// Remember enables the undo history: every call to [Polygon.Cut]
	// snapshots the corners it replaces.
	Remember bool

	memory [][]Point
}

// Cut smooths the polygon in place by running the given number of
// corner-cutting iterations over its corners. With Remember set, the corner
// sequence from before the call can be restored with [Polygon.Undo].
func (p *Polygon) Cut(ratio float64, iterations int) error {
	if iterations < 0 {
		return fmt.Errorf("%w: %d", ErrIterations, iterations)
	}
	if err := checkCutArgs(len(p.Corners), ratio, p.Closed); err != nil {
		return err
	}
	if p.Remember {
		p.memory = append(p.memory, p.Corners)
	}
	for i := 0; i < iterations; i++ {
		p.Corners = cut(p.Corners, ratio, p.Closed, p.Invert)
	}
	return nil
}

// Undo restores the corners from before the most recent [Polygon.Cut]. It
// reports whether there was anything to undo.
func (p *Polygon) Undo() bool {
	if len(p.memory) == 0 {
		return false
	}
	p.Corners = p.memory[len(p.memory)-1]
	p.memory = p.memory[:len(p.memory)-1]
	return true
}

// Smoothed returns a copy of the polygon with its corners smoothed by the
// given number of corner-cutting iterations. The receiver is not modified and
// the copy starts with an empty undo history.
func (p Polygon) Smoothed(ratio float64, iterations int) (Polygon, error) {
	if iterations < 0 {
		return Polygon{}, fmt.Errorf("%w: %d", ErrIterations, iterations)
	}
	if err := checkCutArgs(len(p.Corners), ratio, p.Closed); err != nil {
		return Polygon{}, err
	}
	corners := slices.Clone(p.Corners)
	for i := 0; i < iterations; i++ {
		corners = cut(corners, ratio, p.Closed, p.Invert)
	}
	p.Corners = corners
	p.memory = nil
	return p, nil
}

// BoundingBox returns the smallest rectangle enclosing all corners. The
// bounding box of an empty polygon is the zero rectangle.
func (p Polygon) BoundingBox() Rect {
	if len(p.Corners) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(p.Corners[0], p.Corners[0])
	for _, pt := range p.Corners[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Perimeter returns the total edge length, including the implicit closing
// edge for closed polygons. Corner cutting with a fixed ratio in (0, 0.5]
// never increases the perimeter.
func (p Polygon) Perimeter() float64 {
	if len(p.Corners) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(p.Corners); i++ {
		sum += p.Corners[i].Distance(p.Corners[i-1])
	}
	if p.Closed {
		sum += p.Corners[0].Distance(p.Corners[len(p.Corners)-1])
	}
	return sum
}
