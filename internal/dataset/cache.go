package dataset

import (
	"log"
	"sync"

	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
)

// Loader produces the full property table from the backing store.
type Loader interface {
	LoadAll() ([]models.Property, error)
}

// Cache memoizes the dataset load for the process lifetime. The load is the
// only expensive operation in a dashboard pass, so it runs once on first
// access and every interaction afterwards reuses the snapshot. The snapshot
// is shared read-only across sessions and must never be mutated; a failed
// load is not cached and retried on the next access.
type Cache struct {
	mu     sync.RWMutex
	loader Loader
	props  []models.Property
	loaded bool
}

// NewCache creates a cache over the given loader.
func NewCache(loader Loader) *Cache {
	return &Cache{loader: loader}
}

// Get returns the dataset snapshot, loading it on first access.
func (c *Cache) Get() ([]models.Property, error) {
	c.mu.RLock()
	if c.loaded {
		props := c.props
		c.mu.RUnlock()
		return props, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.props, nil
	}

	props, err := c.loader.LoadAll()
	if err != nil {
		return nil, err
	}

	c.props = props
	c.loaded = true
	log.Printf("Property dataset loaded: %d records", len(props))
	return props, nil
}

// Invalidate drops the snapshot so the next access reloads from the store.
// Used after an import replaces the underlying table.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.props = nil
	c.loaded = false
}
