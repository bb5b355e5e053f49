// Package geometry holds the planar primitives the planner builds on:
// point-in-polygon membership, point-to-polygon distance, and segment
// collision testing against a set of simple polygons.
package geometry

import "math"

// collisionStep is the discretization step (workspace units) used by
// SegmentCollisionFree, kept as a single named constant for a tuning knob.
const collisionStep = 0.5

// Point is a 2D point in workspace coordinates.
type Point struct {
	X, Y float64
}

// Polygon is an ordered, simple (non self-intersecting) sequence of
// vertices. It is never mutated once built.
type Polygon []Point

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	dx, dy := q.X-p.X, q.Y-p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointInPolygon reports whether p lies strictly inside poly using the
// even-odd ray-casting rule. A vertex lying exactly on the casting ray
// counts once; boundary points are treated as outside because the
// intersection test below uses a strict less-than on the x-intercept.
func PointInPolygon(p Point, poly Polygon) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > p.Y) != (yj > p.Y) {
			xIntercept := xi + (p.Y-yi)/(yj-yi)*(xj-xi)
			if p.X < xIntercept {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PointToSegmentDistance returns the Euclidean distance from p to the
// closed segment ab, via the projection parameter clamped to [0, 1].
func PointToSegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return Distance(p, proj)
}

// PointToPolygonDistance returns the minimum distance from p to any edge
// of poly, the closing edge (last vertex back to the first) included. The
// sign is not carried; callers combine this with PointInPolygon when they
// need an inside/outside distinction.
func PointToPolygonDistance(p Point, poly Polygon) float64 {
	n := len(poly)
	if n == 0 {
		return math.Inf(1)
	}
	if n == 1 {
		return Distance(p, poly[0])
	}
	min := math.Inf(1)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if d := PointToSegmentDistance(p, a, b); d < min {
			min = d
		}
	}
	return min
}

// SegmentCollisionFree reports whether the closed segment ab avoids every
// obstacle in obstacles. The segment is discretized at a step of 0.5
// workspace units (ceiling of the segment length divided by the step,
// minimum one step so a and b are always both sampled); it is free iff
// none of the resulting sample points lies inside any obstacle.
//
// Uniform sampling is used instead of exact polygon-edge intersection on
// purpose: it is cheaper, and it is what the cost function that compares
// against this check was built around.
func SegmentCollisionFree(a, b Point, obstacles []Polygon) bool {
	steps := int(math.Ceil(Distance(a, b) / collisionStep))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		sample := Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
		for _, obs := range obstacles {
			if PointInPolygon(sample, obs) {
				return false
			}
		}
	}
	return true
}
