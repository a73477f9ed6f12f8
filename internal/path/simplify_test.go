package path

import (
	"math"
	"testing"
)

func TestSimplifyPassesThroughLines(t *testing.T) {
	in := []Element{
		MoveTo{Point: Point{0, 0}},
		LineTo{Point: Point{10, 0}},
		LineTo{Point: Point{10, 10}},
	}

	out := Simplify(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(out))
	}
	for i, e := range out {
		switch e.(type) {
		case MoveTo, LineTo:
		default:
			t.Errorf("element %d has unexpected type %#v", i, e)
		}
	}
}

func TestSimplifyFlattensCubic(t *testing.T) {
	// Quarter circle of radius 10 as a cubic arc.
	const k = 0.5522847498 // cubic arc constant for 90 degrees
	in := []Element{
		MoveTo{Point: Point{10, 0}},
		CubicTo{
			Control1: Point{10, 10 * k},
			Control2: Point{10 * k, 10},
			Point:    Point{0, 10},
		},
	}

	out := Simplify(in)
	if len(out) < 3 {
		t.Fatalf("expected the curve to flatten into multiple segments, got %d elements", len(out))
	}

	current := Point{10, 0}
	for _, e := range out {
		switch el := e.(type) {
		case MoveTo:
			current = el.Point
		case LineTo:
			// All flattened points stay within Tolerance of the circle.
			r := el.Point.Length()
			if math.Abs(r-10) > Tolerance {
				t.Errorf("point %v is %f from the circle", el.Point, math.Abs(r-10))
			}
			current = el.Point
		default:
			t.Fatalf("unexpected element %#v", e)
		}
	}

	if current.Distance(Point{0, 10}) > 1e-9 {
		t.Errorf("flattening ended at %v, want (0, 10)", current)
	}
}

func TestSimplifyFlattensQuadratic(t *testing.T) {
	in := []Element{
		MoveTo{Point: Point{0, 0}},
		QuadTo{Control: Point{5, 10}, Point: Point{10, 0}},
	}

	out := Simplify(in)
	if len(out) < 3 {
		t.Fatalf("expected multiple segments, got %d elements", len(out))
	}

	last := out[len(out)-1].(LineTo)
	if last.Point != (Point{10, 0}) {
		t.Errorf("flattening ended at %v, want (10, 0)", last.Point)
	}
}

func TestSimplifyCloseEmitsReturnLine(t *testing.T) {
	in := []Element{
		MoveTo{Point: Point{0, 0}},
		LineTo{Point: Point{10, 0}},
		LineTo{Point: Point{10, 10}},
		Close{},
	}

	out := Simplify(in)
	last, ok := out[len(out)-1].(LineTo)
	if !ok {
		t.Fatalf("expected closing LineTo, got %#v", out[len(out)-1])
	}
	if last.Point != (Point{0, 0}) {
		t.Errorf("closing line ends at %v, want start", last.Point)
	}
}

func TestSimplifyCloseSkipsWhenAlreadyClosed(t *testing.T) {
	// The endpoint sits within floating-point noise of the start; Close
	// must not add a degenerate segment.
	in := []Element{
		MoveTo{Point: Point{0, 0}},
		LineTo{Point: Point{10, 0}},
		LineTo{Point: Point{1e-12, 1e-12}},
		Close{},
	}

	out := Simplify(in)
	if len(out) != 3 {
		t.Fatalf("expected no closing segment, got %d elements", len(out))
	}
}

func TestDistanceToLine(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"perpendicular", Point{5, 5}, Point{0, 0}, Point{10, 0}, 5},
		{"on the line", Point{5, 0}, Point{0, 0}, Point{10, 0}, 0},
		{"beyond endpoint", Point{15, 0}, Point{0, 0}, Point{10, 0}, 5},
		{"before start", Point{-3, 4}, Point{0, 0}, Point{10, 0}, 5},
		{"degenerate segment", Point{3, 4}, Point{0, 0}, Point{0, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distanceToLine(tt.p, tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("distanceToLine = %f, want %f", got, tt.want)
			}
		})
	}
}
