package chaikin_test

import (
	"fmt"

	chaikin "github.com/Farbfetzen/corner-cutting"
)

func ExampleCut() {
	triangle := []chaikin.Point{
		chaikin.Pt(0, 0),
		chaikin.Pt(0, 1),
		chaikin.Pt(1, 1),
	}
	smoother, _ := chaikin.Cut(triangle, 0.25, true)
	for _, pt := range smoother {
		fmt.Println(pt)
	}

	// Output:
	// (0.25, 0.25)
	// (0, 0.25)
	// (0, 0.75)
	// (0.25, 1)
	// (0.75, 1)
	// (0.75, 0.75)
}

func ExampleSmooth() {
	zigzag := []chaikin.Point{
		chaikin.Pt(0, 0),
		chaikin.Pt(1, 2),
		chaikin.Pt(2, 1),
		chaikin.Pt(3, 3),
	}
	out, _ := chaikin.Smooth(zigzag, 0.25, false, 4)
	fmt.Println(len(out), "points")
	fmt.Println("first:", out[0])
	fmt.Println("last:", out[len(out)-1])

	// Output:
	// 34 points
	// first: (0, 0)
	// last: (3, 3)
}
