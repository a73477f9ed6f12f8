// Package atlas packs many small images into one shared texture surface.
//
// Renderers batch draws better when nodes sample from the same texture.
// An Atlas owns a CPU-side RGBA surface and hands out Regions: sub-
// rectangles that implement the texture contract consumed by image nodes,
// including the normalized sub-rectangle used to remap texture coordinates.
package atlas

import (
	"errors"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sg"
)

// Default atlas configuration.
const (
	// DefaultSize is the default edge length of the atlas surface.
	DefaultSize = 2048

	// DefaultPadding is the default gap between packed regions, in pixels.
	// One pixel keeps linear filtering from bleeding between neighbors.
	DefaultPadding = 1
)

// ErrFull is returned when an image does not fit in the remaining atlas
// space.
var ErrFull = errors.New("atlas: no space left")

// Atlas packs images into a single RGBA surface using shelf-based
// allocation. It is not safe for concurrent use; callers pack during scene
// setup or guard it themselves.
type Atlas struct {
	img     *image.RGBA
	alloc   *shelfAllocator
	regions []*Region
	dirty   bool
}

// New creates an atlas with a width x height RGBA surface.
// Non-positive dimensions fall back to DefaultSize.
func New(width, height int) *Atlas {
	if width <= 0 {
		width = DefaultSize
	}
	if height <= 0 {
		height = DefaultSize
	}
	return &Atlas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		alloc: newShelfAllocator(width, height, DefaultPadding),
	}
}

// Add copies src into the atlas and returns the resulting region.
// Returns ErrFull when no remaining space fits the image.
func (a *Atlas) Add(src image.Image) (*Region, error) {
	b := src.Bounds()
	return a.add(src, b.Dx(), b.Dy(), false)
}

// AddScaled resamples src to w x h and packs the result. Uses bilinear
// interpolation, which is adequate for texture content that is filtered
// again at draw time.
func (a *Atlas) AddScaled(src image.Image, w, h int) (*Region, error) {
	return a.add(src, w, h, true)
}

func (a *Atlas) add(src image.Image, w, h int, scale bool) (*Region, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrFull
	}
	x, y, ok := a.alloc.allocate(w, h)
	if !ok {
		sg.Logger().Warn("atlas: allocation failed",
			"width", w, "height", h, "utilization", a.alloc.utilization())
		return nil, ErrFull
	}

	dst := image.Rect(x, y, x+w, y+h)
	if scale {
		xdraw.BiLinear.Scale(a.img, dst, src, src.Bounds(), draw.Src, nil)
	} else {
		draw.Draw(a.img, dst, src, src.Bounds().Min, draw.Src)
	}
	a.dirty = true

	r := &Region{atlas: a, bounds: dst}
	a.regions = append(a.regions, r)
	sg.Logger().Debug("atlas: region packed",
		"x", x, "y", y, "width", w, "height", h)
	return r, nil
}

// Image returns the backing surface for upload to the GPU. The pixel data
// is valid until the next Add or Reset.
func (a *Atlas) Image() *image.RGBA {
	return a.img
}

// Dirty reports whether the surface changed since the last ClearDirty.
func (a *Atlas) Dirty() bool { return a.dirty }

// ClearDirty resets the dirty flag. Called by the renderer after it has
// re-uploaded the surface.
func (a *Atlas) ClearDirty() { a.dirty = false }

// Utilization returns the fraction of the surface covered by regions.
func (a *Atlas) Utilization() float64 {
	return a.alloc.utilization()
}

// Len returns the number of packed regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Reset drops all regions and clears the surface. Previously returned
// Regions must not be used afterwards.
func (a *Atlas) Reset() {
	a.alloc.reset()
	a.regions = a.regions[:0]
	draw.Draw(a.img, a.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	a.dirty = true
}

// Region is a packed sub-rectangle of an atlas. It implements the texture
// contract consumed by sg.ImageNode: atlas-backed, with a normalized
// sub-rectangle for texture-coordinate remapping.
type Region struct {
	atlas  *Atlas
	bounds image.Rectangle
}

// IsAtlas always reports true.
func (r *Region) IsAtlas() bool { return true }

// NormalizedSubRect returns the region's placement within the atlas surface
// in [0,1] coordinates.
func (r *Region) NormalizedSubRect() sg.Rect {
	sw := float64(r.atlas.img.Rect.Dx())
	sh := float64(r.atlas.img.Rect.Dy())
	return sg.Rect{
		X:      float64(r.bounds.Min.X) / sw,
		Y:      float64(r.bounds.Min.Y) / sh,
		Width:  float64(r.bounds.Dx()) / sw,
		Height: float64(r.bounds.Dy()) / sh,
	}
}

// Bounds returns the region's placement in atlas pixels.
func (r *Region) Bounds() image.Rectangle {
	return r.bounds
}

// Atlas returns the atlas the region belongs to.
func (r *Region) Atlas() *Atlas {
	return r.atlas
}
