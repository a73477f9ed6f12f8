package sg

import (
	"math"
	"testing"
)

func TestBuildGeometryQuad(t *testing.T) {
	shape := Shape{Rect: Rect{X: 10, Y: 20, Width: 100, Height: 50}, Radius: 0}

	res, err := NewBoundaryCache(4).BuildGeometry(shape, nil, UnitRect)
	if err != nil {
		t.Fatalf("BuildGeometry failed: %v", err)
	}
	if res.Reused {
		t.Error("expected a fresh allocation")
	}

	g := res.Geometry
	if g.VertexCount() != 4 {
		t.Fatalf("expected 4 vertices, got %d", g.VertexCount())
	}
	if !g.VertexDataDirty() || !g.IndexDataDirty() {
		t.Error("expected both dirty marks raised")
	}

	// Strip order: top-left, top-right, bottom-left, bottom-right.
	want := []TexturedPoint2D{
		{X: 10, Y: 20, U: 0, V: 0},
		{X: 110, Y: 20, U: 1, V: 0},
		{X: 10, Y: 70, U: 0, V: 1},
		{X: 110, Y: 70, U: 1, V: 1},
	}
	for i, v := range g.Vertices() {
		if v != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, v, want[i])
		}
	}
}

func TestBuildGeometryQuadAtlasRemap(t *testing.T) {
	shape := Shape{Rect: Rect{0, 0, 10, 10}, Radius: 0}
	sub := Rect{X: 0.5, Y: 0.25, Width: 0.25, Height: 0.5}

	res, err := NewBoundaryCache(4).BuildGeometry(shape, nil, sub)
	if err != nil {
		t.Fatalf("BuildGeometry failed: %v", err)
	}

	v := res.Geometry.Vertices()
	if v[0].U != 0.5 || v[0].V != 0.25 {
		t.Errorf("top-left texcoord = (%g, %g), want (0.5, 0.25)", v[0].U, v[0].V)
	}
	if v[3].U != 0.75 || v[3].V != 0.75 {
		t.Errorf("bottom-right texcoord = (%g, %g), want (0.75, 0.75)", v[3].U, v[3].V)
	}
}

func TestBuildGeometryRounded(t *testing.T) {
	c := NewBoundaryCache(4)
	shape := Shape{Rect: Rect{X: 5, Y: 7, Width: 100, Height: 50}, Radius: 10}

	res, err := c.BuildGeometry(shape, nil, UnitRect)
	if err != nil {
		t.Fatalf("BuildGeometry failed: %v", err)
	}
	g := res.Geometry

	pts, err := c.GetOrBuild(shape)
	if err != nil {
		t.Fatalf("GetOrBuild failed: %v", err)
	}
	if g.VertexCount() != len(pts) {
		t.Fatalf("vertex count %d does not match boundary length %d", g.VertexCount(), len(pts))
	}

	for i, v := range g.Vertices() {
		// Positions are boundary points offset by the rect position.
		if float64(v.X) < 5-1e-6 || float64(v.X) > 105+1e-6 ||
			float64(v.Y) < 7-1e-6 || float64(v.Y) > 57+1e-6 {
			t.Errorf("vertex %d position (%g, %g) outside the shape rect", i, v.X, v.Y)
		}
		// Texture coordinates are normalized over the rect.
		if v.U < -1e-6 || v.U > 1+1e-6 || v.V < -1e-6 || v.V > 1+1e-6 {
			t.Errorf("vertex %d texcoord (%g, %g) outside [0,1]", i, v.U, v.V)
		}
		// Position and texcoord describe the same boundary point.
		wantU := (float64(v.X) - 5) / 100
		if math.Abs(float64(v.U)-wantU) > 1e-5 {
			t.Errorf("vertex %d texcoord U %g does not track position (want %g)", i, v.U, wantU)
		}
	}
}

func TestBuildGeometryReusesBuffer(t *testing.T) {
	c := NewBoundaryCache(4)

	res, err := c.BuildGeometry(Shape{Rect: Rect{0, 0, 100, 50}, Radius: 10}, nil, UnitRect)
	if err != nil {
		t.Fatalf("initial build failed: %v", err)
	}
	g := res.Geometry
	g.ClearDirty()

	// Rebuild with a different shape family into the same buffer.
	res, err = c.BuildGeometry(Shape{Rect: Rect{0, 0, 80, 40}, Radius: 0}, g, UnitRect)
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if !res.Reused {
		t.Error("expected in-place reuse")
	}
	if res.Geometry != g {
		t.Error("expected the same geometry object back")
	}
	if g.VertexCount() != 4 {
		t.Errorf("expected quad vertex count after rebuild, got %d", g.VertexCount())
	}
	if !g.VertexDataDirty() || !g.IndexDataDirty() {
		t.Error("expected dirty marks raised by the rebuild")
	}
}

func TestBuildGeometryInvalidShape(t *testing.T) {
	c := NewBoundaryCache(4)

	invalid := []Shape{
		{Rect: Rect{0, 0, 0, 50}, Radius: 10},
		{Rect: Rect{0, 0, 100, -5}, Radius: 10},
		{Rect: Rect{0, 0, 100, 50}, Radius: -1},
	}
	for _, shape := range invalid {
		if _, err := c.BuildGeometry(shape, nil, UnitRect); err != ErrInvalidShape {
			t.Errorf("shape %+v: expected ErrInvalidShape, got %v", shape, err)
		}
	}

	// A failed build must not touch a supplied geometry.
	res, err := c.BuildGeometry(Shape{Rect: Rect{0, 0, 10, 10}, Radius: 2}, nil, UnitRect)
	if err != nil {
		t.Fatalf("valid build failed: %v", err)
	}
	g := res.Geometry
	g.ClearDirty()
	before := g.VertexCount()

	if _, err := c.BuildGeometry(invalid[0], g, UnitRect); err != ErrInvalidShape {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
	if g.VertexCount() != before || g.VertexDataDirty() {
		t.Error("failed build modified the supplied geometry")
	}
}

func TestBuildGeometryPackageLevel(t *testing.T) {
	res, err := BuildGeometry(Shape{Rect: Rect{0, 0, 30, 30}, Radius: 0}, nil, UnitRect)
	if err != nil {
		t.Fatalf("BuildGeometry failed: %v", err)
	}
	if res.Geometry.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", res.Geometry.VertexCount())
	}
}
