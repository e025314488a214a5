package wallet

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"walletScope/internal/model"
)

// ErrNoMetadata reports a coin type with no registered metadata on chain.
var ErrNoMetadata = errors.New("coin metadata not registered")

// FetchFunc loads metadata for a coin type. A nil result with a nil error
// means the coin type is not registered.
type FetchFunc func(ctx context.Context, coinType string) (*model.CoinMetadata, error)

// MetadataCache memoizes coin metadata for the lifetime of a session. Each
// coin type is written at most once and concurrent lookups for the same key
// share a single fetch.
type MetadataCache struct {
	mu     sync.RWMutex
	data   map[string]model.CoinMetadata
	flight singleflight.Group
}

func NewMetadataCache() *MetadataCache {
	return &MetadataCache{data: make(map[string]model.CoinMetadata)}
}

func (c *MetadataCache) Get(coinType string) (model.CoinMetadata, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	meta, ok := c.data[coinType]
	return meta, ok
}

func (c *MetadataCache) set(coinType string, meta model.CoinMetadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[coinType]; ok {
		return
	}
	c.data[coinType] = meta
}

// Resolve returns cached metadata for coinType, fetching it on a miss.
// Failed fetches are not cached so a later call can retry.
func (c *MetadataCache) Resolve(ctx context.Context, coinType string, fetch FetchFunc) (model.CoinMetadata, error) {
	if meta, ok := c.Get(coinType); ok {
		return meta, nil
	}

	result, err, _ := c.flight.Do(coinType, func() (interface{}, error) {
		if meta, ok := c.Get(coinType); ok {
			return meta, nil
		}
		meta, err := fetch(ctx, coinType)
		if err != nil {
			return nil, err
		}
		if meta == nil {
			return nil, ErrNoMetadata
		}
		c.set(coinType, *meta)
		return *meta, nil
	})
	if err != nil {
		return model.CoinMetadata{}, err
	}
	return result.(model.CoinMetadata), nil
}
