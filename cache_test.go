package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSplitIsMemoized exercises the cache indirectly through the public
// API: splitting the same layout and area twice must not panic and must
// produce identical results, whether or not the second call was served
// from the cache.
func TestSplitIsMemoized(t *testing.T) {
	area := NewRect(0, 0, 40, 1)
	l := Horizontal(Len(10), Fill(1))

	first := l.Split(area)
	second := l.Split(area)

	require.Equal(t, first, second, "memoized split diverged between calls")
}

func resetCacheState(t *testing.T) {
	t.Helper()

	cacheMu.Lock()
	savedCache, savedCustom, savedUsed := cache, cacheCustom, cacheUsedOnce
	cacheCustom, cacheUsedOnce = false, false
	cacheMu.Unlock()

	t.Cleanup(func() {
		cacheMu.Lock()
		cache, cacheCustom, cacheUsedOnce = savedCache, savedCustom, savedUsed
		cacheMu.Unlock()
	})
}

func TestInitCacheSucceedsOnlyOnce(t *testing.T) {
	t.Parallel()
	resetCacheState(t)

	require.True(t, InitCache(32), "first InitCache call should succeed")
	require.False(t, InitCache(64), "second InitCache call should be a no-op")
}

func TestInitCacheNoopAfterUse(t *testing.T) {
	resetCacheState(t)

	Horizontal(Len(5)).Split(NewRect(0, 0, 5, 1))

	require.False(t, InitCache(16), "InitCache should refuse to resize after the cache has already served a split")
}

func TestInitCacheZeroDisablesMemoization(t *testing.T) {
	resetCacheState(t)

	require.True(t, InitCache(0), "InitCache(0) should succeed")

	area := NewRect(0, 0, 20, 1)
	l := Horizontal(Len(5), Fill(1))

	got := l.Split(area)
	got2 := l.Split(area)

	require.Equal(t, got, got2, "split should still work with memoization disabled")
}
