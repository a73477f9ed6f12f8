package sg

import "github.com/gogpu/gputypes"

// VertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position  (vec2<f32>) = 8 bytes  (location 0)
//	tex_coord (vec2<f32>) = 8 bytes  (location 1)
//
// Total = 16 bytes per vertex.
const VertexStride = 16

// TexturedPoint2D is a single vertex record: position in scene coordinates
// plus a normalized texture coordinate.
type TexturedPoint2D struct {
	X, Y float32
	U, V float32
}

// Set assigns all four components at once.
func (p *TexturedPoint2D) Set(x, y, u, v float32) {
	p.X, p.Y, p.U, p.V = x, y, u, v
}

// DataPattern describes how often a geometry's data is expected to change,
// hinting the renderer's upload strategy.
type DataPattern uint8

const (
	// StaticPattern marks data that rarely changes after upload.
	StaticPattern DataPattern = iota
	// DynamicPattern marks data rewritten every few frames.
	DynamicPattern
	// StreamPattern marks data rewritten every frame.
	StreamPattern
)

// String returns the string representation of DataPattern.
func (p DataPattern) String() string {
	switch p {
	case StaticPattern:
		return "Static"
	case DynamicPattern:
		return "Dynamic"
	case StreamPattern:
		return "Stream"
	default:
		return "Unknown"
	}
}

// Geometry is a GPU-facing vertex buffer: a resizable array of
// TexturedPoint2D records together with a fixed draw topology and upload
// patterns, plus the dirty marks the renderer consumes.
//
// The attribute layout, topology, and data patterns are fixed at creation.
// Rebuilding geometry in place only ever changes the vertex count and the
// record contents; the builder verifies the fixed fields and refuses
// incompatible geometries.
type Geometry struct {
	verts []TexturedPoint2D

	topology      gputypes.PrimitiveTopology
	indexPattern  DataPattern
	vertexPattern DataPattern

	indexDirty  bool
	vertexDirty bool
}

// NewGeometry creates a triangle-strip geometry with the given vertex count
// and static upload patterns for both the index and vertex streams.
// Indexing is not used by this geometry family; the index pattern exists so
// renderers treating the two streams uniformly see a consistent hint.
func NewGeometry(vertexCount int) *Geometry {
	return &Geometry{
		verts:         make([]TexturedPoint2D, vertexCount),
		topology:      gputypes.PrimitiveTopologyTriangleStrip,
		indexPattern:  StaticPattern,
		vertexPattern: StaticPattern,
	}
}

// Allocate resizes the geometry to the given vertex count, reusing the
// existing backing array when its capacity suffices. Record contents after
// Allocate are unspecified; callers overwrite every vertex.
func (g *Geometry) Allocate(vertexCount int) {
	if cap(g.verts) >= vertexCount {
		g.verts = g.verts[:vertexCount]
		return
	}
	g.verts = make([]TexturedPoint2D, vertexCount)
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.verts)
}

// Vertices returns the vertex records for direct read/write access.
// The slice is invalidated by Allocate.
func (g *Geometry) Vertices() []TexturedPoint2D {
	return g.verts
}

// Topology returns the draw topology. Always a triangle strip for
// geometries created by this package.
func (g *Geometry) Topology() gputypes.PrimitiveTopology {
	return g.topology
}

// IndexDataPattern returns the upload pattern of the index stream.
func (g *Geometry) IndexDataPattern() DataPattern {
	return g.indexPattern
}

// VertexDataPattern returns the upload pattern of the vertex stream.
func (g *Geometry) VertexDataPattern() DataPattern {
	return g.vertexPattern
}

// MarkIndexDataDirty flags the index stream for re-upload.
func (g *Geometry) MarkIndexDataDirty() {
	g.indexDirty = true
}

// MarkVertexDataDirty flags the vertex stream for re-upload.
func (g *Geometry) MarkVertexDataDirty() {
	g.vertexDirty = true
}

// IndexDataDirty reports whether the index stream needs re-upload.
func (g *Geometry) IndexDataDirty() bool {
	return g.indexDirty
}

// VertexDataDirty reports whether the vertex stream needs re-upload.
func (g *Geometry) VertexDataDirty() bool {
	return g.vertexDirty
}

// ClearDirty resets both dirty marks. Called by the renderer after it has
// re-uploaded the geometry.
func (g *Geometry) ClearDirty() {
	g.indexDirty = false
	g.vertexDirty = false
}

// VertexLayout returns the vertex buffer layout for this geometry family.
// Matches VertexInput in the image shader:
//
//	location 0: position (vec2<f32>)
//	location 1: tex_coord (vec2<f32>)
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // tex_coord
			},
		},
	}
}
