package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.Capacity() != 100 {
		t.Errorf("expected capacity 100, got %d", c.Capacity())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestNewDefaultCapacity(t *testing.T) {
	c := New[string, int](0)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, c.Capacity())
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)

	// Set a value
	c.Set("key1", 42)

	// Get existing key
	val, ok := c.Get("key1")
	if !ok {
		t.Error("expected key1 to exist")
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	// Get non-existing key
	_, ok = c.Get("nonexistent")
	if ok {
		t.Error("expected nonexistent key to not exist")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	createCalled := 0

	// First call should create
	val, err := c.GetOrCreate("key1", func() (int, error) {
		createCalled++
		return 100, nil
	})
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if val != 100 {
		t.Errorf("expected 100, got %d", val)
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}

	// Second call should return cached value without creating
	val, err = c.GetOrCreate("key1", func() (int, error) {
		createCalled++
		return 200, nil
	})
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if val != 100 {
		t.Errorf("expected cached 100, got %d", val)
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}
}

func TestCacheGetOrCreateError(t *testing.T) {
	c := New[string, int](10)
	wantErr := errors.New("build failed")

	_, err := c.GetOrCreate("key1", func() (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected build error, got %v", err)
	}

	// Nothing should have been cached
	if c.Len() != 0 {
		t.Errorf("expected empty cache after failed create, got %d entries", c.Len())
	}
	if _, ok := c.Get("key1"); ok {
		t.Error("expected key1 to not exist after failed create")
	}
}

func TestCacheEviction(t *testing.T) {
	c := New[int, string](4)

	for i := 0; i < 8; i++ {
		c.Set(i, strconv.Itoa(i))
	}

	if c.Len() != 4 {
		t.Errorf("expected 4 entries after eviction, got %d", c.Len())
	}

	// Oldest entries are gone, newest survive
	if _, ok := c.Get(0); ok {
		t.Error("expected entry 0 to be evicted")
	}
	if _, ok := c.Get(7); !ok {
		t.Error("expected entry 7 to survive")
	}

	stats := c.Stats()
	if stats.Evictions != 4 {
		t.Errorf("expected 4 evictions, got %d", stats.Evictions)
	}
}

func TestCacheLRUOrder(t *testing.T) {
	c := New[int, int](2)

	c.Set(1, 1)
	c.Set(2, 2)

	// Touch 1 so 2 becomes the eviction candidate
	if _, ok := c.Get(1); !ok {
		t.Fatal("expected entry 1 to exist")
	}

	c.Set(3, 3)

	if _, ok := c.Get(2); ok {
		t.Error("expected entry 2 to be evicted")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("expected entry 1 to survive")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 1)

	if !c.Delete("key1") {
		t.Error("expected Delete to report removal")
	}
	if c.Delete("key1") {
		t.Error("expected second Delete to report nothing removed")
	}
	if _, ok := c.Get("key1"); ok {
		t.Error("expected key1 to be gone")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d entries", c.Len())
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 1)

	c.Get("key1")      // hit
	c.Get("key1")      // hit
	c.Get("missing")   // miss

	stats := c.Stats()
	if stats.Hits != 2 {
		t.Errorf("expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.HitRate < 0.66 || stats.HitRate > 0.67 {
		t.Errorf("expected hit rate ~0.67, got %f", stats.HitRate)
	}

	c.ResetStats()
	stats = c.Stats()
	if stats.Hits != 0 || stats.Misses != 0 || stats.Evictions != 0 {
		t.Errorf("expected zeroed stats after reset, got %+v", stats)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](64)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := (g*100 + i) % 32
				c.Set(key, i)
				c.Get(key)
				_, _ = c.GetOrCreate(key+1000, func() (int, error) {
					return key, nil
				})
			}
		}(g)
	}
	wg.Wait()
}
