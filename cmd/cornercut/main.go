// Command cornercut renders a collection of demo shapes, smooths them with
// corner cutting, and writes the result as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strings"

	chaikin "github.com/Farbfetzen/corner-cutting"
	"github.com/Farbfetzen/corner-cutting/render"
)

// maxCorners guards against unreasonably deep iteration counts; every
// iteration doubles (roughly) the number of corners.
const maxCorners = 1_000_000

var (
	ratio      = flag.Float64("ratio", 0.25, "cut ratio in [0, 1]; how far along each edge the cuts are made")
	iterations = flag.Int("iterations", 3, "number of corner-cutting iterations")
	size       = flag.Int("size", 800, "canvas size in pixels")
	invert     = flag.Bool("invert", false, "swap the cut points of every edge for spiky results")
	steps      = flag.Bool("steps", false, "additionally write one PNG per iteration")
	out        = flag.String("o", "cornercut.png", "output file name")
)

var background = color.NRGBA{A: 255}

func main() {
	log.SetFlags(0)
	flag.Parse()

	shapes := demoShapes()
	for i := range shapes {
		shapes[i].Invert = *invert
	}

	for step := 1; step <= *iterations; step++ {
		if cornerCount(shapes) > maxCorners {
			fmt.Printf("stopping after %d iterations: corner limit reached\n", step-1)
			break
		}
		next := make([]chaikin.Polygon, len(shapes))
		for i, p := range shapes {
			smoothed, err := p.Smoothed(*ratio, 1)
			if err != nil {
				log.Fatalf("smoothing shape %d: %v", i, err)
			}
			next[i] = smoothed
		}
		shapes = next
		if *steps {
			if err := save(shapes, step, stepName(*out, step)); err != nil {
				log.Fatal(err)
			}
		}
	}

	if err := save(shapes, *iterations, *out); err != nil {
		log.Fatal(err)
	}
}

func save(shapes []chaikin.Polygon, iteration int, name string) error {
	c := render.New(*size, *size, background)
	for _, p := range shapes {
		c.Draw(p)
	}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	c.Label(5, 18, fmt.Sprintf("iterations: %d", iteration), white)
	c.Label(5, 38, fmt.Sprintf("corners: %d", cornerCount(shapes)), white)
	return c.SavePNG(name)
}

func stepName(out string, step int) string {
	base := strings.TrimSuffix(out, ".png")
	return fmt.Sprintf("%s-%02d.png", base, step)
}

func cornerCount(shapes []chaikin.Polygon) int {
	var n int
	for _, p := range shapes {
		n += len(p.Corners)
	}
	return n
}

// demoShapes returns the demo scene: two triangles, an open zigzag, four
// pebbles sharing a corner, and a self-crossing braid. Coordinates are laid
// out on a 1200×1200 grid and normalized into the unit square.
func demoShapes() []chaikin.Polygon {
	norm := func(coords ...float64) []chaikin.Point {
		pts := make([]chaikin.Point, 0, len(coords)/2)
		for i := 0; i+1 < len(coords); i += 2 {
			// The scene was designed on a 1200×800 canvas; shift it down to
			// center it vertically in the square.
			pts = append(pts, chaikin.Pt(coords[i]/1200, coords[i+1]/1200+1.0/6))
		}
		return pts
	}
	gray := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	const width = 0.003

	return []chaikin.Polygon{
		{
			Corners: norm(50, 50, 400, 75, 45, 300),
			Closed:  true,
			Color:   color.NRGBA{R: 255, G: 128, A: 255},
			Width:   width,
		},
		{
			Corners: norm(1000, 750, 1150, 600, 600, 650),
			Color:   color.NRGBA{G: 128, B: 255, A: 255},
			Width:   width,
		},
		{
			Corners: norm(100, 400, 200, 600, 300, 500, 400, 700),
			Color:   color.NRGBA{G: 255, A: 255},
			Width:   width,
		},
		{
			Corners: norm(650, 350, 550, 350, 500, 450, 575, 500, 650, 450),
			Closed:  true,
			Color:   gray,
			Width:   width,
		},
		{
			Corners: norm(650, 350, 950, 350, 900, 450, 650, 550),
			Closed:  true,
			Filled:  true,
			Color:   gray,
			Width:   width,
		},
		{
			Corners: norm(650, 350, 950, 350, 900, 50, 650, 75),
			Closed:  true,
			Color:   gray,
			Width:   width,
		},
		{
			Corners: norm(650, 350, 450, 350, 350, 150, 450, 75, 650, 100),
			Closed:  true,
			Filled:  true,
			Color:   gray,
			Width:   width,
		},
		{
			Corners: norm(1075, 25, 1000, 138, 1150, 250, 1000, 363, 1075, 475,
				1150, 363, 1000, 250, 1150, 138),
			Closed: true,
			Color:  color.NRGBA{R: 255, B: 255, A: 255},
			Width:  width,
		},
	}
}
