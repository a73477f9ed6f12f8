package sg

import "github.com/gogpu/gputypes"

// BuildResult is the outcome of a successful BuildGeometry call.
type BuildResult struct {
	// Geometry holds the written vertex data. When a geometry was passed
	// in, this is the same object resized in place.
	Geometry *Geometry
	// Reused reports whether Geometry is the caller's own object rather
	// than a fresh allocation. A caller that gets Reused=false must attach
	// the new geometry to its node.
	Reused bool
}

// BuildGeometry builds or rebuilds triangle-strip geometry for a shape using
// the process-wide boundary cache. See BoundaryCache.BuildGeometry.
func BuildGeometry(shape Shape, g *Geometry, subRect Rect) (BuildResult, error) {
	return DefaultBoundaryCache().BuildGeometry(shape, g, subRect)
}

// BuildGeometry writes the triangle-strip vertices for shape.
//
// A zero-radius shape produces a plain 4-vertex quad without touching the
// cache. A rounded shape looks up (or builds) the strip-ordered boundary
// points for the shape's dimensions and offsets them by the rectangle's
// position.
//
// Texture coordinates are normalized over the shape's rectangle and then
// mapped into subRect. Pass UnitRect for textures that own their whole
// backing surface; pass the texture's atlas sub-rectangle otherwise.
//
// If g is nil a new geometry is allocated. Otherwise g is resized in place
// and reused; it must have been produced by this builder, and passing a
// geometry with a different topology or upload pattern returns
// ErrIncompatibleGeometry. An invalid shape returns ErrInvalidShape and
// leaves g untouched. Both dirty marks are raised on success.
func (c *BoundaryCache) BuildGeometry(shape Shape, g *Geometry, subRect Rect) (BuildResult, error) {
	if !shape.IsValid() {
		return BuildResult{}, ErrInvalidShape
	}
	if g != nil {
		if g.Topology() != gputypes.PrimitiveTopologyTriangleStrip ||
			g.IndexDataPattern() != StaticPattern ||
			g.VertexDataPattern() != StaticPattern {
			return BuildResult{}, ErrIncompatibleGeometry
		}
	}
	reused := g != nil

	if shape.isRounded() {
		pts, err := c.GetOrBuild(shape)
		if err != nil {
			return BuildResult{}, err
		}
		if g == nil {
			g = NewGeometry(len(pts))
		} else {
			g.Allocate(len(pts))
		}
		writeBoundaryVertices(g.Vertices(), pts, shape.Rect, subRect)
	} else {
		if g == nil {
			g = NewGeometry(4)
		} else {
			g.Allocate(4)
		}
		writeQuadVertices(g.Vertices(), shape.Rect, subRect)
	}

	g.MarkIndexDataDirty()
	g.MarkVertexDataDirty()
	return BuildResult{Geometry: g, Reused: reused}, nil
}

// writeBoundaryVertices writes one vertex per boundary point. Points are in
// origin-local coordinates; positions add the rectangle's offset, texture
// coordinates divide by its size and remap into subRect.
func writeBoundaryVertices(v []TexturedPoint2D, pts []Point, rect Rect, subRect Rect) {
	for i, p := range pts {
		tc := subRect.MapUnit(Pt(p.X/rect.Width, p.Y/rect.Height))
		v[i].Set(
			float32(rect.X+p.X), float32(rect.Y+p.Y),
			float32(tc.X), float32(tc.Y),
		)
	}
}

// writeQuadVertices writes the rectangle's four corners in strip order:
// top-left, top-right, bottom-left, bottom-right.
func writeQuadVertices(v []TexturedPoint2D, rect Rect, subRect Rect) {
	corners := [4]Point{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
	}
	for i, c := range corners {
		tc := subRect.MapUnit(c)
		v[i].Set(
			float32(rect.X+c.X*rect.Width), float32(rect.Y+c.Y*rect.Height),
			float32(tc.X), float32(tc.Y),
		)
	}
}
