package chaikin

import (
	"slices"
	"testing"
)

func TestPolygonCutUndo(t *testing.T) {
	p := Polygon{
		Corners:  slices.Clone(triangle),
		Closed:   true,
		Remember: true,
	}
	if err := p.Cut(0.25, 1); err != nil {
		t.Fatal(err)
	}
	diff(t, triangleCut, p.Corners)

	if err := p.Cut(0.25, 2); err != nil {
		t.Fatal(err)
	}
	if len(p.Corners) != 4*len(triangleCut) {
		t.Fatalf("got %d corners, want %d", len(p.Corners), 4*len(triangleCut))
	}

	// Each Undo steps back one Cut call, not one iteration.
	if !p.Undo() {
		t.Fatal("expected something to undo")
	}
	diff(t, triangleCut, p.Corners)
	if !p.Undo() {
		t.Fatal("expected something to undo")
	}
	diff(t, triangle, p.Corners)
	if p.Undo() {
		t.Error("undo succeeded on empty history")
	}
}

func TestPolygonCutForgetful(t *testing.T) {
	p := Polygon{Corners: slices.Clone(triangle), Closed: true}
	if err := p.Cut(0.25, 1); err != nil {
		t.Fatal(err)
	}
	if p.Undo() {
		t.Error("undo succeeded without Remember")
	}
}

func TestPolygonSmoothed(t *testing.T) {
	p := Polygon{Corners: triangle, Closed: true}
	got, err := p.Smoothed(0.25, 1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, triangleCut, got.Corners)
	// The receiver stays untouched.
	diff(t, triangle, p.Corners)
}

func TestPolygonInvert(t *testing.T) {
	// Inverting trades the two cut points of every edge, turning the smooth
	// sequence into its spiky counterpart.
	p := Polygon{Corners: triangle, Closed: true, Invert: true}
	got, err := p.Smoothed(0.25, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{
		Pt(0.75, 0.75), Pt(0, 0.75),
		Pt(0, 0.25), Pt(0.75, 1),
		Pt(0.25, 1), Pt(0.25, 0.25),
	}
	diff(t, want, got.Corners)
}

func TestPolygonInvertOpenEndpoints(t *testing.T) {
	pts := []Point{Pt(0.1, 0.4), Pt(0.2, 0.6), Pt(0.3, 0.5), Pt(0.4, 0.7)}
	p := Polygon{Corners: pts, Invert: true}
	got, err := p.Smoothed(0.25, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got.Corners[0] != pts[0] || got.Corners[len(got.Corners)-1] != pts[len(pts)-1] {
		t.Errorf("endpoints %s, %s drifted from %s, %s",
			got.Corners[0], got.Corners[len(got.Corners)-1], pts[0], pts[len(pts)-1])
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	p := Polygon{Corners: []Point{Pt(3, 1), Pt(-2, 5), Pt(0, -4)}}
	diff(t, Rect{-2, -4, 3, 5}, p.BoundingBox())
	diff(t, Rect{}, Polygon{}.BoundingBox())
}

func TestPolygonPerimeter(t *testing.T) {
	p := Polygon{Corners: []Point{Pt(0, 0), Pt(4, 0), Pt(4, 3)}}
	if got := p.Perimeter(); got != 7 {
		t.Errorf("open perimeter: got %g, want 7", got)
	}
	p.Closed = true
	if got := p.Perimeter(); got != 12 {
		t.Errorf("closed perimeter: got %g, want 12", got)
	}
	if got := (Polygon{Corners: []Point{Pt(1, 1)}}).Perimeter(); got != 0 {
		t.Errorf("single point perimeter: got %g, want 0", got)
	}
}
