package ratelimit

//go:generate go run go.uber.org/mock/mockgen -source=./ratelimit.go -destination=./mocks/ratelimit_mock.go -package=mocks

import (
	"context"
	"sync"
	"time"
	"zeit/config"
	"zeit/infras/otel"
	"zeit/shared/clock"
	"zeit/shared/constant"

	"github.com/rs/zerolog/log"
)

// Result is the outcome of an admission check. Remaining and Reset feed the
// X-RateLimit response headers.
type Result struct {
	Allowed   bool
	Remaining int
	Reset     time.Time
}

// Limiter admits or rejects a request from one client against a fixed
// window. A client that exhausts one window is admitted again the moment the
// next window starts, so bursts up to twice the threshold can straddle a
// window boundary.
type Limiter interface {
	Admit(ctx context.Context, clientID string) Result
	Stop()
}

type window struct {
	count int
	start time.Time
}

type memoryLimiter struct {
	mu         sync.Mutex
	windows    map[string]window
	maxReqs    int
	windowLen  time.Duration
	maxClients int
	clock      clock.Clock
	otel       otel.Otel
	stop       chan struct{}
	stopOnce   sync.Once
}

func NewMemoryLimiter(cfg *config.Config, clk clock.Clock, ot otel.Otel) Limiter {
	limiter := &memoryLimiter{
		windows:    make(map[string]window),
		maxReqs:    cfg.App.RateLimiter.MaxRequests,
		windowLen:  time.Duration(cfg.App.RateLimiter.WindowSeconds) * time.Second,
		maxClients: cfg.App.RateLimiter.MaxClients,
		clock:      clk,
		otel:       ot,
		stop:       make(chan struct{}),
	}

	go limiter.janitor()

	return limiter
}

// Admit implements Limiter.
func (l *memoryLimiter) Admit(ctx context.Context, clientID string) Result {
	_, scope := l.otel.NewScope(ctx, constant.OtelLimiterScopeName, constant.OtelLimiterScopeName+".Admit")
	defer scope.End()

	scope.SetAttribute(constant.OtelClientIDAttribute, clientID)

	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	win, ok := l.windows[clientID]
	if !ok || now.Sub(win.start) >= l.windowLen {
		if !ok && len(l.windows) >= l.maxClients {
			l.evictStalestLocked()
		}

		l.windows[clientID] = window{count: 1, start: now}

		return Result{Allowed: true, Remaining: l.maxReqs - 1, Reset: now.Add(l.windowLen)}
	}

	win.count++
	l.windows[clientID] = win

	if win.count > l.maxReqs {
		scope.AddEvent("rate limit exceeded")
		log.Warn().Str("client", clientID).Int("count", win.count).Msg("rate limit exceeded")

		return Result{Allowed: false, Remaining: 0, Reset: win.start.Add(l.windowLen)}
	}

	return Result{Allowed: true, Remaining: l.maxReqs - win.count, Reset: win.start.Add(l.windowLen)}
}

func (l *memoryLimiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// evictStalestLocked frees a slot by dropping the window furthest into the
// past; an expired window has no admission state worth keeping. Callers hold
// the mutex.
func (l *memoryLimiter) evictStalestLocked() {
	var (
		stalestID string
		stalestAt time.Time
		found     bool
	)

	for id, win := range l.windows {
		if !found || win.start.Before(stalestAt) {
			stalestID, stalestAt, found = id, win.start, true
		}
	}

	if found {
		delete(l.windows, stalestID)
	}
}

func (l *memoryLimiter) janitor() {
	interval := l.windowLen
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *memoryLimiter) sweep() {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0

	for id, win := range l.windows {
		if now.Sub(win.start) >= l.windowLen {
			delete(l.windows, id)
			removed++
		}
	}

	if removed > 0 {
		log.Debug().Int("removed", removed).Int("remaining", len(l.windows)).Msg("swept elapsed rate windows")
	}
}
