package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAnalyticsCache_SetAndGet(t *testing.T) {
	c := NewMemoryAnalyticsCache()
	ctx := context.Background()

	err := c.Set(ctx, "key", []byte("payload"), time.Minute)
	require.NoError(t, err)

	value, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), value)
}

func TestMemoryAnalyticsCache_Miss(t *testing.T) {
	c := NewMemoryAnalyticsCache()

	value, ok, err := c.Get(context.Background(), "absent")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestMemoryAnalyticsCache_Expiry(t *testing.T) {
	c := NewMemoryAnalyticsCache()
	ctx := context.Background()

	err := c.Set(ctx, "key", []byte("payload"), -time.Second)
	require.NoError(t, err)

	_, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryAnalyticsCache_InvalidateAll(t *testing.T) {
	c := NewMemoryAnalyticsCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, c.InvalidateAll(ctx))

	_, ok, _ := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "b")
	assert.False(t, ok)
}

func TestMemoryAnalyticsCache_GetReturnsCopy(t *testing.T) {
	c := NewMemoryAnalyticsCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("payload"), time.Minute))

	value, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)

	value[0] = 'X'

	again, ok, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), again)
}
