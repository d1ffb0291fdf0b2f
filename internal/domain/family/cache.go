package family

import "time"

// Cache stores families keyed by their join code. FindByCode is the
// hot path of the join flow.
type Cache interface {
	GetByCode(code string) (*Family, bool)
	SetByCode(code string, fam *Family, ttl time.Duration)
	DeleteByCode(code string)
	Clear()
}

type noopCache struct{}

func NewNoopCache() Cache { return noopCache{} }

func (noopCache) GetByCode(string) (*Family, bool) { return nil, false }

func (noopCache) SetByCode(string, *Family, time.Duration) {}

func (noopCache) DeleteByCode(string) {}

func (noopCache) Clear() {}
