package sg

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %+v, want (4, 2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %+v, want (2, 6)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %+v, want (6, 8)", got)
	}
	if got := p.Cross(q); got != -10 {
		t.Errorf("Cross = %g, want -10", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %g, want 5", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance = %g, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 10)
	q := Pt(10, -10)

	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 10)},
		{1, Pt(10, -10)},
		{0.5, Pt(5, 0)},
		{0.25, Pt(2.5, 5)},
	}
	for _, tt := range tests {
		got := p.Lerp(q, tt.t)
		if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
			t.Errorf("Lerp(t=%g) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
}
