package sg

// Texture is an opaque handle to a texture resource. Implementations are
// provided by the hosting renderer (or by the atlas subpackage); this
// package never loads or decodes image data itself.
//
// Nodes hold a Texture for their own lifetime; the underlying resource must
// stay valid at least that long.
type Texture interface {
	// IsAtlas reports whether the texture is packed into a shared atlas
	// surface. Atlas-backed textures need their texture coordinates
	// remapped into a sub-rectangle of the atlas.
	IsAtlas() bool

	// NormalizedSubRect returns the texture's sub-rectangle within its
	// backing surface in normalized [0,1] coordinates. Textures that are
	// not atlas-backed return UnitRect.
	NormalizedSubRect() Rect
}

// StandaloneTexture is a trivial Texture for resources that own their whole
// backing surface. Useful as an embedding base for renderer texture types
// and in tests.
type StandaloneTexture struct{}

// IsAtlas always reports false.
func (StandaloneTexture) IsAtlas() bool { return false }

// NormalizedSubRect returns the unit rectangle.
func (StandaloneTexture) NormalizedSubRect() Rect { return UnitRect }
