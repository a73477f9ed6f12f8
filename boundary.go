package sg

import (
	"github.com/gogpu/sg/cache"
	ipath "github.com/gogpu/sg/internal/path"
)

// DefaultBoundaryCacheCapacity is the entry capacity of the cache returned
// by DefaultBoundaryCache.
const DefaultBoundaryCacheCapacity = 64

// boundaryKey identifies a cached boundary point sequence. The key carries
// the raw float64 values bit-for-bit: radii that are merely fuzzy-equal map
// to distinct entries. Positions do not participate; boundary points are
// built at the origin and offset per node.
type boundaryKey struct {
	width, height, radius float64
}

// BoundaryCache caches the strip-ordered boundary points of rounded
// rectangles, keyed by (width, height, radius). Building the boundary means
// flattening four corner arcs; rounded rectangles of the same size recur
// constantly across a scene, so nodes share one cache.
//
// BoundaryCache is safe for concurrent use.
type BoundaryCache struct {
	entries *cache.LRU[boundaryKey, []Point]
}

// NewBoundaryCache creates a boundary cache holding up to capacity distinct
// (width, height, radius) entries. If capacity <= 0 a default is used.
func NewBoundaryCache(capacity int) *BoundaryCache {
	return &BoundaryCache{
		entries: cache.New[boundaryKey, []Point](capacity),
	}
}

// defaultBoundaryCache is shared by all nodes that do not inject their own
// cache via SetBoundaryCache.
var defaultBoundaryCache = NewBoundaryCache(DefaultBoundaryCacheCapacity)

// DefaultBoundaryCache returns the process-wide shared boundary cache.
func DefaultBoundaryCache() *BoundaryCache {
	return defaultBoundaryCache
}

// GetOrBuild returns the strip-ordered boundary points for the shape's
// dimensions, building and caching them on first use.
//
// The returned slice is owned by the cache and shared between callers; it
// must be treated as read-only.
func (c *BoundaryCache) GetOrBuild(shape Shape) ([]Point, error) {
	key := boundaryKey{
		width:  shape.Rect.Width,
		height: shape.Rect.Height,
		radius: shape.Radius,
	}
	return c.entries.GetOrCreate(key, func() ([]Point, error) {
		pts, err := buildBoundary(key.width, key.height, key.radius)
		if err != nil {
			return nil, err
		}
		Logger().Debug("sg: boundary built",
			"width", key.width, "height", key.height, "radius", key.radius,
			"points", len(pts))
		return pts, nil
	})
}

// Stats returns the cache's hit/miss statistics.
func (c *BoundaryCache) Stats() cache.Stats {
	return c.entries.Stats()
}

// Clear drops all cached boundary sequences.
func (c *BoundaryCache) Clear() {
	c.entries.Clear()
}

// buildBoundary traces a rounded rectangle of the given size at the origin,
// flattens its corner arcs to line segments, and reorders the resulting
// polyline for triangle-strip rendering.
func buildBoundary(width, height, radius float64) ([]Point, error) {
	p := NewPath()
	p.RoundedRectangle(0, 0, width, height, radius)

	simplified := ipath.Simplify(toInternal(p.Elements()))

	// The strip triangulation only understands polylines. A curve element
	// at this point means Simplify no longer upholds its contract.
	natural := make([]Point, 0, len(simplified))
	for _, elem := range simplified {
		switch e := elem.(type) {
		case ipath.MoveTo:
			natural = append(natural, Point(e.Point))
		case ipath.LineTo:
			natural = append(natural, Point(e.Point))
		default:
			return nil, ErrCurvedElement
		}
	}

	return reorderForStrip(natural), nil
}

// reorderForStrip folds a boundary polyline from both ends inward so that
// consecutive points form valid strip triangles covering the interior:
// output index i takes natural element i when i is odd, and natural element
// n-1-i when i is even. For the symmetric outline of a rounded rectangle
// this yields full coverage from a single strip with no indexing.
func reorderForStrip(natural []Point) []Point {
	n := len(natural)
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		if i&1 == 1 {
			out[i] = natural[i]
		} else {
			out[i] = natural[n-1-i]
		}
	}
	return out
}

// toInternal converts public path elements to the internal simplification
// representation.
func toInternal(elements []PathElement) []ipath.Element {
	out := make([]ipath.Element, 0, len(elements))
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, ipath.MoveTo{Point: ipath.Point(e.Point)})
		case LineTo:
			out = append(out, ipath.LineTo{Point: ipath.Point(e.Point)})
		case QuadTo:
			out = append(out, ipath.QuadTo{
				Control: ipath.Point(e.Control),
				Point:   ipath.Point(e.Point),
			})
		case CubicTo:
			out = append(out, ipath.CubicTo{
				Control1: ipath.Point(e.Control1),
				Control2: ipath.Point(e.Control2),
				Point:    ipath.Point(e.Point),
			})
		case Close:
			out = append(out, ipath.Close{})
		}
	}
	return out
}
