package cache

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nerdwave-nick/pokeapi-go"
)

// MultiLayerCache asks its layers in order and back-fills the faster layers on a hit.
// Writes go to every layer; one failing layer does not keep the others from being written.
type MultiLayerCache struct {
	caches []pokeapi.Cache
}

func NewMultiLayerCache(caches ...pokeapi.Cache) *MultiLayerCache {
	return &MultiLayerCache{caches: caches}
}

func (c *MultiLayerCache) Set(key string, value any) error {
	var errs []error
	for i, cache := range c.caches {
		if err := cache.Set(key, value); err != nil {
			slog.Warn("writing cache layer", slog.Int("layer", i), slog.String("key", key), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("layer %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (c *MultiLayerCache) Get(key string, value any) (bool, error) {
	for i, cache := range c.caches {
		found, err := cache.Get(key, value)
		if err != nil {
			slog.Error("reading cache layer", slog.Int("layer", i), slog.String("key", key), slog.Any("error", err))
			return found, err
		}
		if !found {
			continue
		}
		slog.Debug("cache hit", slog.Int("layer", i), slog.String("key", key))
		for j, faster := range c.caches[:i] {
			if err := faster.Set(key, value); err != nil {
				slog.Warn("back-filling cache layer", slog.Int("layer", j), slog.String("key", key), slog.Any("error", err))
			}
		}
		return true, nil
	}
	slog.Debug("cache miss", slog.String("key", key))
	return false, nil
}
