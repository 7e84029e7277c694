package cache

import (
	"sync"
	"testing"
)

// sameShardKeys returns n int keys that all land on one shard, so LRU
// ordering within the shard is observable.
func sameShardKeys(n int) []int {
	keys := make([]int, 0, n)
	for i := 0; len(keys) < n; i++ {
		if IntHasher(i)&shardMask == 0 {
			keys = append(keys, i)
		}
	}
	return keys
}

func TestGetSet(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	if _, ok := c.Get("missing"); ok {
		t.Fatal("hit on an empty cache")
	}
	c.Set("a", 1)
	c.Set("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %v, %v", v, ok)
	}
	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Fatalf("overwrite lost: %v", v)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	const capacity = 4
	c := NewSharded[int, int](capacity, IntHasher)
	keys := sameShardKeys(capacity + 1)

	for _, k := range keys[:capacity] {
		c.Set(k, k)
	}
	// touch the oldest so the second-oldest becomes the victim
	c.Get(keys[0])
	c.Set(keys[capacity], keys[capacity])

	if _, ok := c.Get(keys[1]); ok {
		t.Fatal("least recently used entry survived eviction")
	}
	if _, ok := c.Get(keys[0]); !ok {
		t.Fatal("recently touched entry was evicted")
	}
	if _, ok := c.Get(keys[capacity]); !ok {
		t.Fatal("newest entry missing")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Fatalf("Evictions = %d, want 1", got)
	}
}

func TestGetOrCreate(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	calls := 0
	create := func() int {
		calls++
		return 42
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Fatalf("GetOrCreate = %v", v)
	}
	if v := c.GetOrCreate("k", create); v != 42 {
		t.Fatalf("GetOrCreate = %v", v)
	}
	if calls != 1 {
		t.Fatalf("create ran %d times, want 1", calls)
	}
}

func TestDelete(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	c.Set("a", 1)
	if !c.Delete("a") {
		t.Fatal("Delete of present key reported false")
	}
	if c.Delete("a") {
		t.Fatal("Delete of absent key reported true")
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("deleted key still present")
	}
}

func TestClear(t *testing.T) {
	c := NewSharded[int, int](8, IntHasher)
	for i := 0; i < 20; i++ {
		c.Set(i, i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len after Clear = %d", c.Len())
	}
}

func TestStatsCounters(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Fatalf("Stats = %+v, want 2 hits 1 miss", s)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewSharded[int, int](64, IntHasher)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				k := g*1000 + i
				c.Set(k, i)
				c.Get(k)
				c.GetOrCreate(k, func() int { return i })
			}
		}(g)
	}
	wg.Wait()
}
