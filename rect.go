package sg

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// UnitRect is the normalized [0,1]x[0,1] rectangle. It is the texture
// sub-rectangle of any texture that is not packed into an atlas.
var UnitRect = Rect{X: 0, Y: 0, Width: 1, Height: 1}

// IsEmpty returns true if the rectangle has no interior.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// MapUnit maps a point given in normalized [0,1]x[0,1] coordinates into
// this rectangle: r.origin + r.size * p.
func (r Rect) MapUnit(p Point) Point {
	return Point{
		X: r.X + r.Width*p.X,
		Y: r.Y + r.Height*p.Y,
	}
}
