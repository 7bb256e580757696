package timezone

import (
	"sync"
	"time"
)

// locationCache memoizes loaded locations by canonical name. The set of
// zones is small and fixed, so entries never expire.
type locationCache struct {
	mu    sync.RWMutex
	items map[string]*time.Location
}

var locations = &locationCache{items: make(map[string]*time.Location)}

func (c *locationCache) load(name string) (*time.Location, error) {
	c.mu.RLock()
	loc, ok := c.items[name]
	c.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items[name] = loc
	c.mu.Unlock()
	return loc, nil
}

// Len returns the number of cached locations.
func (c *locationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
