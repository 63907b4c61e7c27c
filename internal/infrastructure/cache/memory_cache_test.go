package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(now *time.Time) *memoryCache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     func() time.Time { return *now },
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type tile struct {
		ID    string  `json:"id"`
		Price float64 `json:"price"`
	}
	stored := []tile{{ID: "p1", Price: 499}, {ID: "p2", Price: 999}}
	require.NoError(t, c.Set(ctx, "home:section:mens", stored, time.Minute))

	var loaded []tile
	require.NoError(t, c.Get(ctx, "home:section:mens", &loaded))
	assert.Equal(t, stored, loaded)
}

func TestMemoryCacheMissingKey(t *testing.T) {
	c := NewMemoryCache()
	var out string
	err := c.Get(context.Background(), "absent", &out)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCacheExpiresAfterTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(&now)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", 15*time.Minute))

	var out string
	require.NoError(t, c.Get(ctx, "key", &out))
	assert.Equal(t, "value", out)

	now = now.Add(15*time.Minute + time.Second)
	err := c.Get(ctx, "key", &out)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(&now)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", 42, 0))
	now = now.Add(1000 * time.Hour)

	var out int
	require.NoError(t, c.Get(ctx, "key", &out))
	assert.Equal(t, 42, out)
}

func TestMemoryCacheInvalidate(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, c.Invalidate(ctx, "key"))

	var out string
	err := c.Get(ctx, "key", &out)
	assert.ErrorIs(t, err, ErrMiss)
}
