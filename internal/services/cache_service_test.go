package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newClockedCache(capacity int) (*LRUCache[string], *time.Time) {
	now := fixedNow
	c := NewLRUCache[string](capacity)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestLRUCache_GetSet(t *testing.T) {
	c, _ := newClockedCache(2)

	c.Set("a", "1", time.Minute)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	c.Set("a", "2", time.Minute)
	v, _ = c.Get("a")
	assert.Equal(t, "2", v)
	assert.Equal(t, 1, c.Size())
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newClockedCache(2)

	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)
	c.Get("a")
	c.Set("c", "3", time.Minute)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.True(t, okA)
	assert.False(t, okB, "b era o menos recentemente usado")
	assert.True(t, okC)
}

func TestLRUCache_Expiration(t *testing.T) {
	c, now := newClockedCache(4)

	c.Set("short", "x", time.Second)
	c.Set("long", "y", time.Hour)

	*now = now.Add(2 * time.Second)

	_, ok := c.Get("short")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Size(), "entrada expirada é removida no Get")

	*now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, c.CleanupExpired())
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_DeleteClear(t *testing.T) {
	c, _ := newClockedCache(4)
	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_Concurrent(t *testing.T) {
	c := NewLRUCache[int](16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := string(rune('a' + (j % 20)))
				c.Set(key, n, time.Minute)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Size(), 16)
}
