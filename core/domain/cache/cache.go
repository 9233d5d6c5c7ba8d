// Package cache memoizes classification results. The classifier is pure, so
// cached entries never go stale; the TTL only bounds memory for one-off
// queries.
package cache

import (
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/veltaire/planforge/core/domain"
)

const (
	defaultNumCounters = 1e5
	defaultMaxCost     = 1e6
	defaultBufferItems = 64
	defaultTTL         = 10 * time.Minute

	entryCost = 1
)

// ClassificationCache is a read-through cache in front of a
// domain.Classifier.
type ClassificationCache struct {
	classifier *domain.Classifier
	cache      *ristretto.Cache
	ttl        time.Duration
	mu         sync.RWMutex
	closed     bool
}

// Config tunes the underlying ristretto cache.
type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	TTL         time.Duration
}

func NewClassificationCache(classifier *domain.Classifier, config *Config) (*ClassificationCache, error) {
	cfg := applyDefaults(config)

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &ClassificationCache{
		classifier: classifier,
		cache:      cache,
		ttl:        cfg.TTL,
	}, nil
}

func applyDefaults(config *Config) *Config {
	cfg := &Config{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
		TTL:         defaultTTL,
	}

	if config == nil {
		return cfg
	}

	if config.NumCounters > 0 {
		cfg.NumCounters = config.NumCounters
	}
	if config.MaxCost > 0 {
		cfg.MaxCost = config.MaxCost
	}
	if config.BufferItems > 0 {
		cfg.BufferItems = config.BufferItems
	}
	if config.TTL > 0 {
		cfg.TTL = config.TTL
	}

	return cfg
}

// Classify returns the cached classification for the inputs, running the
// underlying classifier on a miss.
func (cc *ClassificationCache) Classify(category, description, industry string) domain.BusinessDomain {
	key := Key(category, description, industry)

	cc.mu.RLock()
	closed := cc.closed
	cc.mu.RUnlock()

	if !closed {
		if value, found := cc.cache.Get(key); found {
			if d, ok := value.(domain.BusinessDomain); ok {
				return d
			}
		}
	}

	d := cc.classifier.Classify(category, description, industry)

	if !closed {
		cc.cache.SetWithTTL(key, d, entryCost, cc.ttl)
	}
	return d
}

// Close releases the cache. Classify keeps working after Close by delegating
// straight to the classifier.
func (cc *ClassificationCache) Close() {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if cc.closed {
		return
	}
	cc.closed = true
	cc.cache.Close()
}
