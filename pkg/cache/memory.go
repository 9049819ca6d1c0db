package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Memory struct {
	store  *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{store: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		m.misses.Add(1)
		return "", false
	}

	s, ok := v.(string)
	if !ok {
		m.misses.Add(1)
		return "", false
	}

	m.hits.Add(1)
	return s, true
}

func (m *Memory) Set(key, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.store.Set(key, value, ttl)
}

func (m *Memory) Delete(key string) {
	m.store.Delete(key)
}

func (m *Memory) Stats() Stats {
	return Stats{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
		Keys:   m.store.ItemCount(),
	}
}
