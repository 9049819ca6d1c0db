package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vladislavprovich/nft-explorer/pkg/cache"
)

func TestMemory(t *testing.T) {
	var c cache.Service = cache.NewMemory(time.Minute, time.Minute)

	_, ok := c.Get("cid")
	assert.False(t, ok)

	c.Set("cid", "https://ipfs.io/ipfs/", 0)
	v, ok := c.Get("cid")
	assert.True(t, ok)
	assert.Equal(t, "https://ipfs.io/ipfs/", v)

	c.Delete("cid")
	_, ok = c.Get("cid")
	assert.False(t, ok)

	assert.Equal(t, cache.Stats{Hits: 1, Misses: 2, Keys: 0}, c.Stats())
}

func TestMemory_Expiry(t *testing.T) {
	c := cache.NewMemory(time.Minute, time.Minute)

	c.Set("cid", "gw", 20*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	_, ok := c.Get("cid")
	assert.False(t, ok)
}
