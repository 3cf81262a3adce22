// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package text

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/openkit-ui/openkit"
)

// DefaultMeasureCapacity is the measurement cache capacity used when none
// is given.
const DefaultMeasureCapacity = 1024

// measureKey identifies a measurement result. Font size is keyed by bit
// pattern so that distinct float values never collide.
type measureKey struct {
	text     string
	sizeBits uint32
}

// MeasureCache is a bounded cache of text measurements in front of an
// Engine.
//
// Eviction is FIFO: when full, the oldest inserted entry is dropped no
// matter how recently it was hit. Measurement results for UI text are
// cheap to recompute and heavily skewed toward a stable working set, so
// insertion-order eviction performs within noise of LRU here while
// avoiding per-hit bookkeeping.
//
// MeasureCache is safe for concurrent use and is the intended way to
// share an Engine across goroutines.
type MeasureCache struct {
	mu      sync.Mutex
	engine  Engine
	entries map[measureKey]openkit.Size

	// order holds keys oldest-first. Entries are appended on insert and
	// popped from the front on eviction.
	order    []measureKey
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewMeasureCache creates a cache over the engine. capacity <= 0 selects
// DefaultMeasureCapacity.
func NewMeasureCache(engine Engine, capacity int) *MeasureCache {
	if capacity <= 0 {
		capacity = DefaultMeasureCapacity
	}
	return &MeasureCache{
		engine:   engine,
		entries:  make(map[measureKey]openkit.Size, capacity),
		order:    make([]measureKey, 0, capacity),
		capacity: capacity,
	}
}

// Measure returns the cached extent of the text, consulting the engine on
// a miss.
func (c *MeasureCache) Measure(text string, size float32) openkit.Size {
	key := measureKey{text: text, sizeBits: math.Float32bits(size)}

	c.mu.Lock()
	if s, ok := c.entries[key]; ok {
		c.mu.Unlock()
		c.hits.Add(1)
		return s
	}

	// Miss: measure under the lock. The engine call is the expensive part,
	// but serializing it here also guarantees engines are never invoked
	// concurrently through a shared cache.
	s := c.engine.Measure(text, size)

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}
	c.entries[key] = s
	c.order = append(c.order, key)
	c.mu.Unlock()

	c.misses.Add(1)
	return s
}

// Len returns the number of cached measurements.
func (c *MeasureCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of cached measurements.
func (c *MeasureCache) Capacity() int { return c.capacity }

// Reset discards all cached measurements. Statistics are kept.
func (c *MeasureCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.order = c.order[:0]
}

// CacheStats is a point-in-time snapshot of cache behavior.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the fraction of lookups served from the cache.
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache counters.
func (c *MeasureCache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
