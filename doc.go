// Package chaikin implements Chaikin-style corner cutting for polygons and
// polylines.
//
// Corner cutting smooths a shape by replacing every vertex with two new
// points, each interpolated a fixed fraction of the way toward one of the
// vertex's neighbors. Repeated application converges toward a rounded
// approximation of the original shape.
//
// # Core transform
//
// [Cut] is the whole algorithm: it maps one point sequence to the next, either
// treating the sequence as a closed polygon (with an implicit edge from the
// last point back to the first) or as an open polyline whose endpoints stay
// pinned in place. [CutXY] is the same transform over parallel coordinate
// slices. [Smooth] threads Cut through a fixed number of iterations.
//
// All of these are pure functions: they allocate fresh output, never mutate
// their input, and are fully deterministic. Any number of shapes can be
// smoothed concurrently without coordination.
//
// # Shapes
//
// [Polygon] bundles a corner sequence with presentation attributes (color,
// stroke width, filled flag) that the transform passes through untouched. It
// adds an undo history over [Polygon.Cut], mirroring interactive use where
// each smoothing step can be stepped back.
//
// # Geometry primitives
//
// [Point], [Vec2], [Rect], and [Affine] are the usual 2D value types. The
// renderer in the render subpackage uses [Affine] to map the normalized
// [0,1]×[0,1] model space onto a pixel canvas.
//
// The cut ratio is described in [Chaikin curves]; ratios above 0.5 are folded
// to their complement so the two cut points of a vertex can never cross.
//
// [Chaikin curves]: https://sighack.com/post/chaikin-curves
package chaikin
