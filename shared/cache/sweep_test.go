package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"zeit/config"
	"zeit/infras/otel/mocks"
	"zeit/internal/domains/worldtime/model"
	"zeit/shared/clock"
)

func TestSweepRemovesOnlyStaleEntries(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Cache.FreshnessMillis = 1000
	cfg.App.Cache.MaxEntries = 16

	clk := clock.NewMock(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC))

	c := NewMemoryCache(cfg, clk, mocks.NewOtel()).(*memoryCache)
	defer c.Stop()

	ctx := context.Background()

	c.Save(ctx, "timezone=UTC", model.TimeReport{Timezone: "UTC"})
	clk.Advance(900 * time.Millisecond)
	c.Save(ctx, "timezone=GMT", model.TimeReport{Timezone: "GMT"})
	clk.Advance(200 * time.Millisecond)

	c.sweep()

	assert.Equal(t, 1, c.Len())

	_, ok := c.Get(ctx, "timezone=GMT")
	assert.True(t, ok)
}
