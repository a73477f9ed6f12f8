package sg

import (
	"math"
	"testing"
)

func TestReorderForStripMapping(t *testing.T) {
	// Output index i takes natural element i when i is odd, n-1-i when even.
	for _, n := range []int{4, 5, 8, 9, 12, 13} {
		natural := make([]Point, n)
		for i := range natural {
			natural[i] = Pt(float64(i), 0)
		}

		out := reorderForStrip(natural)
		if len(out) != n {
			t.Fatalf("n=%d: reorder changed length to %d", n, len(out))
		}
		for i, p := range out {
			want := i
			if i&1 == 0 {
				want = n - 1 - i
			}
			if p != natural[want] {
				t.Errorf("n=%d: output %d = %v, want natural %d", n, i, p, want)
			}
		}
	}
}

func TestBoundaryPointsFormValidStrip(t *testing.T) {
	pts, err := NewBoundaryCache(4).GetOrBuild(Shape{
		Rect:   Rect{0, 0, 100, 50},
		Radius: 10,
	})
	if err != nil {
		t.Fatalf("GetOrBuild failed: %v", err)
	}

	// One MoveTo plus four edges plus four equally-flattened corner arcs
	// always yields an odd point count.
	if len(pts) < 9 {
		t.Fatalf("expected at least 9 boundary points, got %d", len(pts))
	}
	if len(pts)%2 == 0 {
		t.Fatalf("expected odd point count, got %d", len(pts))
	}

	// No adjacent duplicates: every strip edge has positive length.
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			t.Errorf("adjacent duplicate point at %d: %v", i, pts[i])
		}
	}

	// Every strip triangle covers area.
	for i := 0; i+2 < len(pts); i++ {
		a, b, c := pts[i], pts[i+1], pts[i+2]
		area := math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
		if area <= 1e-9 {
			t.Errorf("degenerate strip triangle at %d: %v %v %v", i, a, b, c)
		}
	}

	// All points stay inside the (origin-local) bounds.
	for _, p := range pts {
		if p.X < -1e-9 || p.X > 100+1e-9 || p.Y < -1e-9 || p.Y > 50+1e-9 {
			t.Errorf("boundary point %v outside 100x50", p)
		}
	}
}

func TestBoundaryCacheDeterministic(t *testing.T) {
	c := NewBoundaryCache(8)
	shape := Shape{Rect: Rect{0, 0, 64, 64}, Radius: 8}

	first, err := c.GetOrBuild(shape)
	if err != nil {
		t.Fatalf("first GetOrBuild failed: %v", err)
	}
	second, err := c.GetOrBuild(shape)
	if err != nil {
		t.Fatalf("second GetOrBuild failed: %v", err)
	}

	// The cached slice is shared, not rebuilt.
	if &first[0] != &second[0] {
		t.Error("expected repeated lookups to share the cached slice")
	}

	stats := c.Stats()
	if stats.Misses != 1 || stats.Hits != 1 {
		t.Errorf("expected 1 miss and 1 hit, got %d misses, %d hits", stats.Misses, stats.Hits)
	}
}

func TestBoundaryCacheKeyIsExact(t *testing.T) {
	c := NewBoundaryCache(8)
	rect := Rect{0, 0, 64, 64}

	r1 := 8.0
	r2 := 8 * (1 + 1e-14) // fuzzy-equal to r1, but a different bit pattern

	s1 := Shape{Rect: rect, Radius: r1}
	s2 := Shape{Rect: rect, Radius: r2}
	if !s1.Equals(s2) {
		t.Fatal("test radii must be fuzzy-equal")
	}

	if _, err := c.GetOrBuild(s1); err != nil {
		t.Fatalf("GetOrBuild failed: %v", err)
	}
	if _, err := c.GetOrBuild(s2); err != nil {
		t.Fatalf("GetOrBuild failed: %v", err)
	}

	if got := c.Stats().Len; got != 2 {
		t.Errorf("expected 2 distinct cache entries, got %d", got)
	}
}

func TestBoundaryCacheIgnoresPosition(t *testing.T) {
	c := NewBoundaryCache(8)

	if _, err := c.GetOrBuild(Shape{Rect: Rect{0, 0, 64, 64}, Radius: 8}); err != nil {
		t.Fatalf("GetOrBuild failed: %v", err)
	}
	if _, err := c.GetOrBuild(Shape{Rect: Rect{500, 300, 64, 64}, Radius: 8}); err != nil {
		t.Fatalf("GetOrBuild failed: %v", err)
	}

	stats := c.Stats()
	if stats.Len != 1 || stats.Hits != 1 {
		t.Errorf("expected shapes differing only by position to share one entry, got %+v", stats)
	}
}

func TestBoundaryCacheClear(t *testing.T) {
	c := NewBoundaryCache(8)
	if _, err := c.GetOrBuild(Shape{Rect: Rect{0, 0, 10, 10}, Radius: 2}); err != nil {
		t.Fatalf("GetOrBuild failed: %v", err)
	}

	c.Clear()
	if got := c.Stats().Len; got != 0 {
		t.Errorf("expected empty cache after Clear, got %d entries", got)
	}
}

func TestDefaultBoundaryCacheShared(t *testing.T) {
	if DefaultBoundaryCache() != DefaultBoundaryCache() {
		t.Error("expected a single process-wide default cache")
	}
}
