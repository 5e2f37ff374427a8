package cache

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/maypok86/otter"
)

// OtterCache is the in-memory first layer. It holds the json of each response
// keyed by resource url and evicts by size and ttl.
type OtterCache struct {
	cache otter.Cache[string, []byte]
}

func NewOtterCache(size int, ttl time.Duration) (*OtterCache, error) {
	c, err := otter.MustBuilder[string, []byte](size).
		WithTTL(ttl).
		Build()
	if err != nil {
		return nil, err
	}
	return &OtterCache{cache: c}, nil
}

func (c *OtterCache) Set(key string, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if !c.cache.Set(key, bytes) {
		// rejected by the eviction policy, the lower layers still hold it
		slog.Debug("otter cache rejected entry", slog.String("key", key), slog.Int("bytes", len(bytes)))
	}
	return nil
}

func (c *OtterCache) Get(key string, value any) (bool, error) {
	bytes, found := c.cache.Get(key)
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(bytes, value); err != nil {
		// a stale shape is dropped so the next fetch replaces it
		c.cache.Delete(key)
		return true, err
	}
	return true, nil
}

// Len is the number of responses currently held in memory.
func (c *OtterCache) Len() int {
	return c.cache.Size()
}

func (c *OtterCache) Close() {
	c.cache.Close()
}
