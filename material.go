package sg

// FilterMode selects the sampling filter for a material's texture.
type FilterMode uint8

const (
	// FilterNone disables filtering. Only meaningful for mipmap
	// filtering, where it turns mipmapping off entirely.
	FilterNone FilterMode = iota
	// FilterNearest samples the nearest texel.
	FilterNearest
	// FilterLinear interpolates between neighboring texels.
	FilterLinear
)

// String returns the string representation of FilterMode.
func (f FilterMode) String() string {
	switch f {
	case FilterNone:
		return "None"
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// OpaqueTextureMaterial renders geometry with a texture and no blending.
// It is the material a renderer prefers for fully opaque content.
type OpaqueTextureMaterial struct {
	texture         Texture
	filtering       FilterMode
	mipmapFiltering FilterMode
}

// NewOpaqueTextureMaterial creates an opaque texture material with nearest
// filtering and mipmapping off.
func NewOpaqueTextureMaterial() *OpaqueTextureMaterial {
	return &OpaqueTextureMaterial{
		filtering:       FilterNearest,
		mipmapFiltering: FilterNone,
	}
}

// SetTexture sets the texture sampled by the material.
func (m *OpaqueTextureMaterial) SetTexture(t Texture) {
	m.texture = t
}

// Texture returns the texture sampled by the material.
func (m *OpaqueTextureMaterial) Texture() Texture {
	return m.texture
}

// SetFiltering sets the minification/magnification filter.
func (m *OpaqueTextureMaterial) SetFiltering(f FilterMode) {
	m.filtering = f
}

// Filtering returns the minification/magnification filter.
func (m *OpaqueTextureMaterial) Filtering() FilterMode {
	return m.filtering
}

// SetMipmapFiltering sets the filter used between mipmap levels.
// FilterNone disables mipmapping.
func (m *OpaqueTextureMaterial) SetMipmapFiltering(f FilterMode) {
	m.mipmapFiltering = f
}

// MipmapFiltering returns the filter used between mipmap levels.
func (m *OpaqueTextureMaterial) MipmapFiltering() FilterMode {
	return m.mipmapFiltering
}

// TextureMaterial is the alpha-blended variant of OpaqueTextureMaterial.
type TextureMaterial struct {
	OpaqueTextureMaterial
}

// NewTextureMaterial creates a blended texture material with nearest
// filtering and mipmapping off.
func NewTextureMaterial() *TextureMaterial {
	return &TextureMaterial{
		OpaqueTextureMaterial: OpaqueTextureMaterial{
			filtering:       FilterNearest,
			mipmapFiltering: FilterNone,
		},
	}
}
