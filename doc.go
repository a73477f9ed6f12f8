// Package sg provides retained-mode scene-graph primitives for Go.
//
// # Overview
//
// sg implements the geometry side of a retained-mode scene graph: long-lived
// node objects that own GPU-facing vertex data and signal the host renderer
// through dirty flags when something must be re-uploaded. The package is
// designed to integrate with the GoGPU ecosystem.
//
// The centerpiece is ImageNode, a textured rectangle whose corners may be
// rounded. Rounded outlines are triangulated into a single non-indexed
// triangle strip, and the boundary point sequences are shared across nodes
// through a process-wide bounded cache so that nodes with the same
// (width, height, radius) never recompute the outline.
//
// # Quick Start
//
//	node := sg.NewImageNode()
//	if err := node.SetTexture(tex); err != nil {
//		return err
//	}
//	changed, err := node.SetShape(sg.Shape{
//		Rect:   sg.Rect{X: 0, Y: 0, Width: 100, Height: 50},
//		Radius: 10,
//	})
//
// After a successful SetShape the node's Geometry holds (x, y, u, v)
// vertices ready for upload; see the render subpackage for the wgpu/hal
// upload and pipeline layer, and the atlas subpackage for atlas-backed
// textures.
//
// # Architecture
//
// The library is organized into:
//   - Public API: ImageNode, Shape, Geometry, Texture, materials
//   - cache: bounded LRU used for shared boundary outlines
//   - internal/path: curve-to-polyline simplification
//   - atlas: shelf-packed texture atlas producing atlas-backed textures
//   - render: GPU upload and render pipeline via gogpu/wgpu
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin (0,0) at top-left,
// X increases right, Y increases down. Texture coordinates are normalized
// to [0,1] within the node's texture (or its atlas sub-rectangle).
package sg
