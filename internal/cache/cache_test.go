package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, KeyFaqs, []byte(`[]`), time.Minute))

	val, ok, err := c.Get(ctx, KeyFaqs)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), val)

	now = now.Add(time.Minute)
	_, ok, err = c.Get(ctx, KeyFaqs)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	require.NoError(t, c.Set(ctx, KeyProjects, []byte(`[1]`), 0))
	require.NoError(t, c.Set(ctx, KeyFeaturedProjects, []byte(`[2]`), 0))
	require.NoError(t, c.Delete(ctx, KeyProjects, KeyFeaturedProjects))

	_, ok, _ := c.Get(ctx, KeyProjects)
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, KeyFeaturedProjects)
	assert.False(t, ok)
}

func TestNoopCacheNeverHits(t *testing.T) {
	ctx := context.Background()
	c := NewNoop()
	require.NoError(t, c.Set(ctx, KeyTeam, []byte(`[]`), time.Minute))
	_, ok, err := c.Get(ctx, KeyTeam)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisFromURLRejectsBadScheme(t *testing.T) {
	_, err := NewRedisFromURL("http://localhost:6379")
	assert.Error(t, err)
}

func TestContentKeysClearEveryList(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	for _, k := range ContentKeys {
		require.NoError(t, c.Set(ctx, k, []byte(`[]`), time.Minute))
	}
	require.NoError(t, c.Delete(ctx, ContentKeys...))
	for _, k := range ContentKeys {
		_, ok, err := c.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok, k)
	}
}

func TestOpenWithoutRedisConfig(t *testing.T) {
	rc, err := Open("", "", "", 0)
	require.NoError(t, err)
	assert.Nil(t, rc)

	_, err = Open("not-a-redis-url", "", "", 0)
	assert.Error(t, err)

	rc, err = Open("", "localhost:6379", "", 0)
	require.NoError(t, err)
	require.NotNil(t, rc)
	assert.NoError(t, rc.Close())
}
