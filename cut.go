package chaikin

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned for precondition violations. All of them indicate caller
// programming errors, not runtime faults; the offending call aborts before
// producing any output.
var (
	// ErrRatioRange is returned when the cut ratio lies outside [0, 1].
	ErrRatioRange = errors.New("cut ratio outside [0, 1]")
	// ErrTooFewPoints is returned when a shape has fewer points than corner
	// cutting is defined for: 3 for closed shapes, 2 for open ones.
	ErrTooFewPoints = errors.New("too few points")
	// ErrLengthMismatch is returned by [CutXY] when the x and y coordinate
	// slices differ in length.
	ErrLengthMismatch = errors.New("coordinate slice lengths differ")
	// ErrIterations is returned for negative iteration counts.
	ErrIterations = errors.New("negative iteration count")
)

func checkCutArgs(n int, ratio float64, closed bool) error {
	// The negated form also rejects NaN.
	if !(ratio >= 0 && ratio <= 1) {
		return fmt.Errorf("%w: %g", ErrRatioRange, ratio)
	}
	if closed && n < 3 {
		return fmt.Errorf("%w: closed shape needs 3, got %d", ErrTooFewPoints, n)
	}
	if !closed && n < 2 {
		return fmt.Errorf("%w: open shape needs 2, got %d", ErrTooFewPoints, n)
	}
	return nil
}

// Cut performs one round of corner cutting and returns the resulting point
// sequence. Every original point is replaced by two new points, one
// interpolated toward each neighbor:
//
//	left(i)  = p(i) + (p(i-1) - p(i)) * ratio
//	right(i) = p(i) + (p(i+1) - p(i)) * ratio
//
// with neighbor indices wrapping around the sequence. The output lists
// left(i) followed by right(i) for every i in input order.
//
// The ratio must lie in [0, 1]. Ratios above 0.5 are folded to their
// complement, so cutting 0.9 of the way along an edge equals cutting 0.1 from
// the other end; the two cut points of a corner therefore never cross.
//
// For closed shapes the output has exactly twice as many points as the input.
// Open polylines have no wrap-around edge: the two cut points that would
// straddle it are discarded and the output's endpoints are pinned to the
// original endpoints, for a length of 2n−2. An open two-point segment is
// consequently returned unchanged.
//
// Cut never mutates points and always allocates fresh output.
func Cut(points []Point, ratio float64, closed bool) ([]Point, error) {
	if err := checkCutArgs(len(points), ratio, closed); err != nil {
		return nil, err
	}
	return cut(points, ratio, closed, false), nil
}

// cut assumes validated arguments. With invert set, the two cut points of
// every edge trade places, turning the smoothing step into a spiking one.
func cut(points []Point, ratio float64, closed, invert bool) []Point {
	if ratio > 0.5 {
		ratio = 1 - ratio
	}
	n := len(points)
	out := make([]Point, 0, 2*n)
	for i, p := range points {
		prev := points[(i-1+n)%n]
		next := points[(i+1)%n]
		out = append(out, p.Lerp(prev, ratio), p.Lerp(next, ratio))
	}
	if closed {
		if invert {
			// The cut points of edge i sit at indices 2i+1 and 2i+2,
			// the last edge's wrap around to index 0.
			for i := 0; i < n; i++ {
				j, k := 2*i+1, (2*i+2)%(2*n)
				out[j], out[k] = out[k], out[j]
			}
		}
		return out
	}
	// No wrap-around edge: drop the two points interpolated across it, then
	// pin the endpoints so the curve stays attached across iterations.
	out = out[1 : 2*n-1]
	if invert {
		for i := 0; i+1 < len(out); i += 2 {
			out[i], out[i+1] = out[i+1], out[i]
		}
	}
	out[0] = points[0]
	out[len(out)-1] = points[n-1]
	return out
}

// CutXY is [Cut] over parallel coordinate slices. The transform treats x and y
// independently, using the same ratio and the same neighbor indices for both.
// The slices must have equal length.
func CutXY(xs, ys []float64, ratio float64, closed bool) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%w: len(x) %d, len(y) %d", ErrLengthMismatch, len(xs), len(ys))
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Pt(xs[i], ys[i])
	}
	res, err := Cut(pts, ratio, closed)
	if err != nil {
		return nil, nil, err
	}
	outX := make([]float64, len(res))
	outY := make([]float64, len(res))
	for i, p := range res {
		outX[i], outY[i] = p.Splat()
	}
	return outX, outY, nil
}

// Smooth applies [Cut] the given number of times, feeding each result back in
// as the next input. Zero iterations return a copy of the input. Each shape's
// smoothing depends only on its own previous output, so distinct shapes can
// be smoothed concurrently.
func Smooth(points []Point, ratio float64, closed bool, iterations int) ([]Point, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIterations, iterations)
	}
	if err := checkCutArgs(len(points), ratio, closed); err != nil {
		return nil, err
	}
	if iterations == 0 {
		return slices.Clone(points), nil
	}
	for i := 0; i < iterations; i++ {
		points = cut(points, ratio, closed, false)
	}
	return points, nil
}
