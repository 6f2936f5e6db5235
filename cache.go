package layout

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tuilayout/split/internal/obs"
)

// defaultCacheCapacity is the number of distinct (area, layout) solves kept
// in memory before the least recently used entry is evicted.
const defaultCacheCapacity = 500

// cacheKey identifies a memoized split. Two layouts that are equal in every
// field that affects the solve hash and compare equal, regardless of
// whether they are the same Go value.
type cacheKey struct {
	Area            Rect
	Direction       Direction
	ConstraintsHash uint64
	Margin          Margin
	Spacing         int
	Flex            Flex
}

type cacheValue struct {
	Segments []Rect
	Spacers  []Rect
}

var (
	cacheMu       sync.Mutex
	cache         *lru.Cache[cacheKey, cacheValue]
	cacheCustom   bool
	cacheUsedOnce bool
)

func init() {
	cache, _ = lru.New[cacheKey, cacheValue](defaultCacheCapacity)
}

// InitCache replaces the shared split cache with one of the given
// capacity. It reports whether the resize took effect: it only ever does
// so the first time it is called, and only if no split has been resolved
// yet. Every later call — including one that arrives after the cache has
// already served a lookup — is a no-op that returns false, since resizing
// out from under entries already in the cache would silently discard
// memoized results a caller might still expect to find.
//
// A capacity of zero or less disables memoization entirely: [Layout.Split]
// and [Layout.SplitWithSpacers] still work, they simply solve every time.
//
// The cache is shared process-wide rather than held per goroutine. Unlike
// an OS thread, a goroutine has no stable identity to key a cache on and
// is far cheaper to spawn, so per-goroutine storage would mean a cache
// that is constantly created and thrown away instead of warmed by reuse.
// A single mutex-guarded cache is the structure this package's own split
// path already used before memoization was layered on, so the cache adds
// a lookup around the existing solve rather than a second code path.
func InitCache(capacity int) bool {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cacheCustom || cacheUsedOnce {
		return false
	}

	cacheCustom = true

	if capacity <= 0 {
		cache = nil

		return true
	}

	newCache, err := lru.New[cacheKey, cacheValue](capacity)
	if err != nil {
		return false
	}

	cache = newCache

	return true
}

func lookupCache(key cacheKey) (cacheValue, bool) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	cacheUsedOnce = true

	if cache == nil {
		return cacheValue{}, false
	}

	value, ok := cache.Get(key)
	if ok {
		obs.Logger().Debug("layout cache hit", "direction", key.Direction, "spacing", key.Spacing, "flex", key.Flex)
	} else {
		obs.Logger().Debug("layout cache miss", "direction", key.Direction, "spacing", key.Spacing, "flex", key.Flex)
	}

	return value, ok
}

func storeCache(key cacheKey, value cacheValue) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	cacheUsedOnce = true

	if cache == nil {
		return
	}

	cache.Add(key, value)
}
