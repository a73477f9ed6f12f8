package sg

import "math"

// fuzzyTolerance is the relative tolerance used when comparing shape radii.
// Two radii count as equal when their difference is negligible relative to
// the smaller magnitude of the two.
const fuzzyTolerance = 1e-12

// fuzzyEq reports whether a and b are approximately equal.
func fuzzyEq(a, b float64) bool {
	return math.Abs(a-b) <= fuzzyTolerance*math.Min(math.Abs(a), math.Abs(b))
}

// fuzzyIsZero reports whether v is negligibly close to zero.
func fuzzyIsZero(v float64) bool {
	return math.Abs(v) <= fuzzyTolerance
}

// Shape describes the outline rendered by an ImageNode: an axis-aligned
// rectangle with an optional uniform corner radius. A zero radius renders a
// plain rectangle.
//
// Shape is a value type. It is never mutated after construction; nodes
// compare incoming shapes against their stored one to skip no-op updates.
type Shape struct {
	Rect   Rect
	Radius float64
}

// Equals reports whether two shapes describe the same outline. The
// rectangles are compared exactly; the radii with a small relative
// tolerance, so that radii drifting apart by floating-point noise do not
// trigger geometry rebuilds.
//
// Note that the boundary cache keys on the radius bit-for-bit: two shapes
// that are Equals but not identical can still occupy two cache entries.
func (s Shape) Equals(o Shape) bool {
	return s.Rect == o.Rect && (s.Radius == o.Radius || fuzzyEq(s.Radius, o.Radius))
}

// IsValid reports whether the shape can produce geometry: the rectangle
// must have a positive area and the radius must not be negative.
func (s Shape) IsValid() bool {
	return !s.Rect.IsEmpty() && s.Radius >= 0
}

// isRounded reports whether the shape needs the rounded-corner
// triangulation path rather than the 4-vertex quad.
func (s Shape) isRounded() bool {
	return !fuzzyIsZero(s.Radius)
}
