package inmemory

import (
	"sync"
	"time"

	familydomain "visitbook-go/internal/domain/family"
)

// FamilyCache is a TTL cache of families keyed by join code.
type FamilyCache struct {
	mu    sync.RWMutex
	items map[string]familyItem
}

type familyItem struct {
	value     familydomain.Family
	expiresAt time.Time
}

func NewFamilyCache() *FamilyCache {
	return &FamilyCache{items: make(map[string]familyItem)}
}

func (c *FamilyCache) GetByCode(code string) (*familydomain.Family, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[code]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		if item, ok = c.items[code]; ok && !item.expiresAt.After(now) {
			delete(c.items, code)
		}
		c.mu.Unlock()
		return nil, false
	}

	value := item.value
	return &value, true
}

func (c *FamilyCache) SetByCode(code string, fam *familydomain.Family, ttl time.Duration) {
	if fam == nil || ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.items[code] = familyItem{value: *fam, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

func (c *FamilyCache) DeleteByCode(code string) {
	c.mu.Lock()
	delete(c.items, code)
	c.mu.Unlock()
}

func (c *FamilyCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]familyItem)
	c.mu.Unlock()
}
