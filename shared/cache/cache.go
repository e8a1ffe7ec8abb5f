package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"sync"
	"time"
	"zeit/config"
	"zeit/infras/otel"
	"zeit/internal/domains/worldtime/model"
	"zeit/shared/clock"
	"zeit/shared/constant"

	"github.com/rs/zerolog/log"
)

// ReportCache keeps recently computed reports for the freshness window. A
// stale entry is a miss until the next Save for its key overwrites it.
type ReportCache interface {
	Get(ctx context.Context, key string) (model.TimeReport, bool)
	Save(ctx context.Context, key string, report model.TimeReport)
	Len() int
	Stop()
}

type entry struct {
	report    model.TimeReport
	createdAt time.Time
}

type memoryCache struct {
	mu        sync.Mutex
	entries   map[string]entry
	freshness time.Duration
	maxSize   int
	clock     clock.Clock
	otel      otel.Otel
	stop      chan struct{}
	stopOnce  sync.Once
}

func NewMemoryCache(cfg *config.Config, clk clock.Clock, ot otel.Otel) ReportCache {
	cache := &memoryCache{
		entries:   make(map[string]entry),
		freshness: time.Duration(cfg.App.Cache.FreshnessMillis) * time.Millisecond,
		maxSize:   cfg.App.Cache.MaxEntries,
		clock:     clk,
		otel:      ot,
		stop:      make(chan struct{}),
	}

	go cache.janitor()

	return cache
}

// Get implements ReportCache.
func (cache *memoryCache) Get(ctx context.Context, key string) (model.TimeReport, bool) {
	_, scope := cache.otel.NewScope(ctx, constant.OtelCacheScopeName, constant.OtelCacheScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(constant.OtelCacheKeyAttribute, key)

	cache.mu.Lock()
	defer cache.mu.Unlock()

	ent, ok := cache.entries[key]
	if !ok || cache.clock.Now().Sub(ent.createdAt) > cache.freshness {
		scope.AddEvent("cache miss")

		return model.TimeReport{}, false
	}

	scope.AddEvent("cache hit")

	return ent.report, true
}

// Save implements ReportCache.
func (cache *memoryCache) Save(ctx context.Context, key string, report model.TimeReport) {
	_, scope := cache.otel.NewScope(ctx, constant.OtelCacheScopeName, constant.OtelCacheScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(constant.OtelCacheKeyAttribute, key)

	now := cache.clock.Now()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if _, exists := cache.entries[key]; !exists && len(cache.entries) >= cache.maxSize {
		cache.evictOldestLocked()
	}

	cache.entries[key] = entry{report: report, createdAt: now}
}

func (cache *memoryCache) Len() int {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	return len(cache.entries)
}

func (cache *memoryCache) Stop() {
	cache.stopOnce.Do(func() {
		close(cache.stop)
	})
}

// evictOldestLocked drops the entry with the oldest creation time. Callers
// hold the mutex.
func (cache *memoryCache) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)

	for key, ent := range cache.entries {
		if !found || ent.createdAt.Before(oldestAt) {
			oldestKey, oldestAt, found = key, ent.createdAt, true
		}
	}

	if found {
		delete(cache.entries, oldestKey)
	}
}

// janitor sweeps expired entries so key diversity cannot grow the map
// without bound between evictions.
func (cache *memoryCache) janitor() {
	interval := cache.freshness
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-cache.stop:
			return
		case <-ticker.C:
			cache.sweep()
		}
	}
}

func (cache *memoryCache) sweep() {
	now := cache.clock.Now()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	removed := 0

	for key, ent := range cache.entries {
		if now.Sub(ent.createdAt) > cache.freshness {
			delete(cache.entries, key)
			removed++
		}
	}

	if removed > 0 {
		log.Debug().Int("removed", removed).Int("remaining", len(cache.entries)).Msg("swept stale cache entries")
	}
}
