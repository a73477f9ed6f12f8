package sg

import "fmt"

// DirtyState is a bitmask of node aspects that changed since the renderer
// last consumed the node.
type DirtyState uint8

const (
	// DirtyGeometry signals that the node's geometry object or its vertex
	// data changed.
	DirtyGeometry DirtyState = 1 << iota
	// DirtyMaterial signals that a material's texture or filtering changed.
	DirtyMaterial
)

// String returns the string representation of DirtyState.
func (d DirtyState) String() string {
	switch {
	case d&DirtyGeometry != 0 && d&DirtyMaterial != 0:
		return "Geometry|Material"
	case d&DirtyGeometry != 0:
		return "Geometry"
	case d&DirtyMaterial != 0:
		return "Material"
	default:
		return "None"
	}
}

// ImageNode renders a texture clipped to a rounded rectangle as a single
// triangle strip. It owns its geometry and two materials (an opaque and a
// blended variant of the same texture) and reports changes to the hosting
// renderer through a dirty observer.
//
// A node's methods are meant to be called from one logical thread of
// control, typically the renderer's scene-graph update pass. Distinct nodes
// may be updated concurrently; they only share the boundary cache, which is
// safe for concurrent use.
type ImageNode struct {
	shape   Shape
	texture Texture
	smooth  bool

	geometry       *Geometry
	material       *TextureMaterial
	opaqueMaterial *OpaqueTextureMaterial

	boundary *BoundaryCache
	observer func(DirtyState)
}

// NewImageNode creates a node with no texture, no shape, smooth filtering
// enabled, and the process-wide boundary cache.
func NewImageNode() *ImageNode {
	n := &ImageNode{
		smooth:         true,
		material:       NewTextureMaterial(),
		opaqueMaterial: NewOpaqueTextureMaterial(),
		boundary:       DefaultBoundaryCache(),
	}
	n.applyFiltering()
	return n
}

// SetBoundaryCache replaces the boundary cache used for geometry rebuilds.
// Intended for tests and for hosts that scope caching per renderer.
func (n *ImageNode) SetBoundaryCache(c *BoundaryCache) {
	if c == nil {
		c = DefaultBoundaryCache()
	}
	n.boundary = c
}

// SetDirtyObserver registers the callback invoked whenever the node's
// geometry or material state changes. Pass nil to detach.
func (n *ImageNode) SetDirtyObserver(fn func(DirtyState)) {
	n.observer = fn
}

// SetTexture sets the texture rendered by the node and updates both
// materials. Passing nil returns ErrNilTexture and changes nothing.
//
// Texture coordinates are laid out differently for atlas-backed and
// standalone textures, so the geometry is rebuilt whenever the node had no
// texture before, the previous texture was atlas-backed, or the new one is.
// Between two standalone textures the existing coordinates stay valid and
// no rebuild happens.
func (n *ImageNode) SetTexture(t Texture) error {
	if t == nil {
		return ErrNilTexture
	}

	needsRebuild := n.texture == nil || n.texture.IsAtlas() || t.IsAtlas()
	n.texture = t
	n.material.SetTexture(t)
	n.opaqueMaterial.SetTexture(t)
	n.markDirty(DirtyMaterial)

	if needsRebuild && n.shape.IsValid() {
		if err := n.rebuildGeometry(n.shape); err != nil {
			return err
		}
	}
	return nil
}

// SetShape sets the node's shape, rebuilding geometry as needed. It reports
// whether the node changed: a shape equal to the current one (by the Shape
// equality contract) is a no-op.
//
// On error the node's shape and geometry are left as they were.
func (n *ImageNode) SetShape(s Shape) (bool, error) {
	if s.Equals(n.shape) {
		return false, nil
	}
	if err := n.rebuildGeometry(s); err != nil {
		Logger().Warn("sg: shape rejected",
			"rect", s.Rect, "radius", s.Radius, "err", err)
		return false, err
	}
	n.shape = s
	return true, nil
}

// SetSmooth selects between smooth (linear, mipmapped) and pixelated
// (nearest, no mipmaps) texture filtering on both materials. A no-op when
// the flag is unchanged. Has no effect on geometry.
func (n *ImageNode) SetSmooth(smooth bool) {
	if smooth == n.smooth {
		return
	}
	n.smooth = smooth
	n.applyFiltering()
	n.markDirty(DirtyMaterial)
}

// RebuildGeometry forces a geometry rebuild with the current shape and
// texture. Returns ErrInvalidShape when no valid shape has been set.
func (n *ImageNode) RebuildGeometry() error {
	return n.rebuildGeometry(n.shape)
}

// Shape returns the node's current shape.
func (n *ImageNode) Shape() Shape { return n.shape }

// Texture returns the node's current texture, or nil when unset.
func (n *ImageNode) Texture() Texture { return n.texture }

// Smooth reports whether smooth filtering is enabled.
func (n *ImageNode) Smooth() bool { return n.smooth }

// Geometry returns the node's geometry, or nil before the first successful
// shape update. The renderer reads vertex data and dirty marks from it.
func (n *ImageNode) Geometry() *Geometry { return n.geometry }

// Material returns the blended material.
func (n *ImageNode) Material() *TextureMaterial { return n.material }

// OpaqueMaterial returns the opaque material, preferred by renderers when
// the node's content is fully opaque.
func (n *ImageNode) OpaqueMaterial() *OpaqueTextureMaterial { return n.opaqueMaterial }

// Release drops the node's geometry and texture references. The node can be
// reused after another SetTexture/SetShape sequence.
func (n *ImageNode) Release() {
	n.geometry = nil
	n.texture = nil
	n.material.SetTexture(nil)
	n.opaqueMaterial.SetTexture(nil)
}

// Description returns a short human-readable summary for debug logging.
func (n *ImageNode) Description() string {
	vertices := 0
	if n.geometry != nil {
		vertices = n.geometry.VertexCount()
	}
	return fmt.Sprintf("ImageNode(rect=(%g,%g %gx%g) radius=%g smooth=%t vertices=%d)",
		n.shape.Rect.X, n.shape.Rect.Y, n.shape.Rect.Width, n.shape.Rect.Height,
		n.shape.Radius, n.smooth, vertices)
}

// rebuildGeometry writes geometry for the given shape into the node's
// buffer, allocating one on first use, and raises the geometry dirty signal.
func (n *ImageNode) rebuildGeometry(shape Shape) error {
	subRect := UnitRect
	if n.texture != nil && n.texture.IsAtlas() {
		subRect = n.texture.NormalizedSubRect()
	}
	res, err := n.boundary.BuildGeometry(shape, n.geometry, subRect)
	if err != nil {
		return err
	}
	n.geometry = res.Geometry
	n.markDirty(DirtyGeometry)
	return nil
}

// applyFiltering pushes the current smoothing mode to both materials.
func (n *ImageNode) applyFiltering() {
	filtering, mipmap := FilterNearest, FilterNone
	if n.smooth {
		filtering, mipmap = FilterLinear, FilterLinear
	}
	n.material.SetFiltering(filtering)
	n.material.SetMipmapFiltering(mipmap)
	n.opaqueMaterial.SetFiltering(filtering)
	n.opaqueMaterial.SetMipmapFiltering(mipmap)
}

// markDirty notifies the observer, if any.
func (n *ImageNode) markDirty(state DirtyState) {
	if n.observer != nil {
		n.observer(state)
	}
}
