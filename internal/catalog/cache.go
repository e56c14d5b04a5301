package catalog

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/TradeUp_Go/internal/domain"
)

// itemCache memoizes Item instances by ID for the life of the catalog.
// It is sized to the catalog so entries are never evicted; the mutex serialises
// construction so each ID is built at most once under concurrent lookups.
type itemCache struct {
	mu          sync.Mutex
	lru         *lru.Cache[string, *domain.Item]
	constructed int
}

// newItemCache creates a cache able to hold size items without eviction.
func newItemCache(size int) (*itemCache, error) {
	if size < 1 {
		size = 1
	}
	c, err := lru.New[string, *domain.Item](size)
	if err != nil {
		return nil, err
	}
	return &itemCache{lru: c}, nil
}

// getOrCreate returns the cached item for id, building it with build on first use.
func (c *itemCache) getOrCreate(id string, build func() *domain.Item) *domain.Item {
	if item, ok := c.lru.Get(id); ok {
		return item
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have built it while we waited
	if item, ok := c.lru.Get(id); ok {
		return item
	}

	item := build()
	c.lru.Add(id, item)
	c.constructed++
	return item
}

// Len returns the number of memoized items.
func (c *itemCache) Len() int {
	return c.lru.Len()
}

// Constructed returns how many items have been built.
func (c *itemCache) Constructed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.constructed
}
