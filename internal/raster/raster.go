// Package raster turns shapes into pixel coordinates and scan-line
// spans. It knows nothing about pixel formats or blending; callers
// receive coordinates through emit callbacks and apply their own
// combine rule.
package raster

import (
	"math"
	"slices"
)

// Line walks the segment (x0,y0)-(x1,y1) with integer Bresenham
// stepping and calls emit for every pixel, endpoints included.
//
// When skipFirst is set the first pixel is not emitted. Chained
// segments (polylines, flattened curves) use this so shared endpoints
// are not drawn twice.
func Line(x0, y0, x1, y1 int, skipFirst bool, emit func(x, y int)) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	dy = -dy
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if skipFirst {
			skipFirst = false
		} else {
			emit(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// PolygonSpans rasterizes a polygon with the odd/even rule, emitting
// one or more half-open spans [x0,x1) per scan line. The polygon is
// implicitly closed. An edge intersects scan line y when one endpoint
// satisfies y0 <= y and the other y1 > y (or vice versa); horizontal
// edges never intersect. Intersections on each scan line are sorted
// ascending and paired off.
//
// Spans are not clipped; the caller clips against its buffer.
func PolygonSpans(pts []Point, emit func(y, x0, x1 int)) {
	if len(pts) < 3 {
		return
	}
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}

	var xs []int
	for y := yMin; y < yMax; y++ {
		xs = xs[:0]
		j := len(pts) - 1
		for i := range pts {
			y0, y1 := pts[j].Y, pts[i].Y
			if (y0 <= y && y < y1) || (y1 <= y && y < y0) {
				x0, x1 := pts[j].X, pts[i].X
				xs = append(xs, x0+(y-y0)*(x1-x0)/(y1-y0))
			}
			j = i
		}
		// Sorted ascending before pairing; unsorted spans are a bug,
		// not a variant.
		slices.Sort(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			if xs[k] < xs[k+1] {
				emit(y, xs[k], xs[k+1])
			}
		}
	}
}

// cubicAt evaluates one coordinate of a cubic Bezier at t.
func cubicAt(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}

// BezierSteps derives a flattening step count from the length of the
// control polygon: a quarter of the summed control segment lengths,
// but never fewer than 20 steps.
func BezierSteps(x0, y0, x1, y1, x2, y2, x3, y3 float64) int {
	length := math.Hypot(x1-x0, y1-y0) +
		math.Hypot(x2-x1, y2-y1) +
		math.Hypot(x3-x2, y3-y2)
	n := int(length * 0.25)
	if n < 20 {
		n = 20
	}
	return n
}

// FlattenBezier evaluates the cubic Bezier (x0,y0)..(x3,y3) at steps+1
// evenly spaced parameter values and emits the connecting segments as
// integer endpoint pairs. first is true only for the first segment;
// callers set the skip-first-pixel flag on every later segment.
//
// steps <= 0 selects the distance-derived count from BezierSteps.
func FlattenBezier(x0, y0, x1, y1, x2, y2, x3, y3 float64, steps int,
	emit func(ax, ay, bx, by int, first bool)) {

	if steps <= 0 {
		steps = BezierSteps(x0, y0, x1, y1, x2, y2, x3, y3)
	}
	px := int(math.Round(x0))
	py := int(math.Round(y0))
	first := true
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := int(math.Round(cubicAt(x0, x1, x2, x3, t)))
		cy := int(math.Round(cubicAt(y0, y1, y2, y3, t)))
		if cx == px && cy == py && i < steps {
			continue // degenerate step, fold into the next one
		}
		emit(px, py, cx, cy, first)
		first = false
		px, py = cx, cy
	}
}
