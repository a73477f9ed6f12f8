// Package path provides internal path processing utilities.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance from the curve for flattening.
const Tolerance = 0.1

// closeEpsilon bounds how far a subpath's endpoint may sit from its start
// while still counting as closed. Flattened closing curves land within
// floating-point noise of the start rather than exactly on it.
const closeEpsilon = 1e-9

// Element represents an element in a path.
type Element interface {
	isElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isElement() {}

// Close closes the path.
type Close struct{}

func (Close) isElement() {}

// Simplify converts a path with curves into an equivalent path containing
// only MoveTo and LineTo elements. Curves are approximated by recursive
// subdivision until they deviate from a straight line by less than
// Tolerance. Close elements are resolved geometrically: a closing LineTo is
// emitted only if the subpath does not already end at its starting point
// (within closeEpsilon).
func Simplify(elements []Element) []Element {
	out := make([]Element, 0, len(elements)*4)
	var current, start Point

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			start = e.Point
			out = append(out, MoveTo{Point: current})

		case LineTo:
			current = e.Point
			out = append(out, LineTo{Point: current})

		case QuadTo:
			var pts []Point
			flattenQuadraticRec(current, e.Control, e.Point, Tolerance, &pts)
			for _, pt := range pts {
				out = append(out, LineTo{Point: pt})
			}
			current = e.Point

		case CubicTo:
			var pts []Point
			flattenCubicRec(current, e.Control1, e.Control2, e.Point, Tolerance, &pts)
			for _, pt := range pts {
				out = append(out, LineTo{Point: pt})
			}
			current = e.Point

		case Close:
			if current.Distance(start) > closeEpsilon {
				out = append(out, LineTo{Point: start})
			}
			current = start
		}
	}

	return out
}

// Helper methods for Point
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// flattenQuadraticRec recursively subdivides a quadratic Bezier curve.
func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, points *[]Point) {
	dist := distanceToLine(p1, p0, p2)

	if dist < tolerance {
		// Curve is flat enough, add the endpoint
		*points = append(*points, p2)
		return
	}

	// Subdivide the curve
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, points)
	flattenQuadraticRec(q2, q1, p2, tolerance, points)
}

// flattenCubicRec recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, points *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := math.Max(d1, d2)

	if dist < tolerance {
		// Curve is flat enough, add the endpoint
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, points)
}

// distanceToLine calculates the perpendicular distance from point p to line
// segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		// Line segment is a point
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
