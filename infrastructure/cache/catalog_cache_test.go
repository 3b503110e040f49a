package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"enthro-backend/infrastructure/cache"
)

// A nil Redis client must disable the cache without panics: reads miss,
// writes and invalidations are swallowed.
func TestCatalogCacheNilClient(t *testing.T) {
	catalogCache := cache.NewCatalogCache(nil, 5*time.Second)
	assert.NotNil(t, catalogCache)

	ctx := context.Background()
	var dest string
	assert.False(t, catalogCache.Get(ctx, "stream:abc", &dest))
	catalogCache.Set(ctx, "stream:abc", "value")
	catalogCache.Delete(ctx, "stream:abc")
}
