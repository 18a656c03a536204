package geocache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetThenGet(t *testing.T) {
	cache := NewMemoryCache(DefaultTTL)
	ctx := context.Background()

	cache.Set(ctx, "k", []byte(`"v"`))

	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte(`"v"`), got)
}

func TestMemoryCache_MissIsNotAnError(t *testing.T) {
	cache := NewMemoryCache(DefaultTTL)

	got, ok := cache.Get(context.Background(), "absent")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryCache_EntryExpiresAfterTTL(t *testing.T) {
	now := time.Now()
	clock := &now
	cache := NewMemoryCache(DefaultTTL).WithClock(func() time.Time { return *clock })
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("payload"))

	// Just inside the window the entry is still served.
	later := now.Add(DefaultTTL)
	clock = &later
	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok)

	// One tick past the window it is absent and evicted.
	expired := now.Add(DefaultTTL + time.Millisecond)
	clock = &expired
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)

	// The lazy eviction removed the entry, a repeated get is still a miss.
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_SetRefreshesTimestamp(t *testing.T) {
	now := time.Now()
	clock := &now
	cache := NewMemoryCache(DefaultTTL).WithClock(func() time.Time { return *clock })
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("old"))

	mid := now.Add(45 * time.Second)
	clock = &mid
	cache.Set(ctx, "k", []byte("new"))

	// 90s after the first write but only 45s after the overwrite.
	late := now.Add(90 * time.Second)
	clock = &late
	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestMemoryCache_Clear(t *testing.T) {
	cache := NewMemoryCache(DefaultTTL)
	ctx := context.Background()

	cache.Set(ctx, "a", []byte("1"))
	cache.Set(ctx, "b", []byte("2"))
	cache.Clear(ctx)

	_, ok := cache.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "b")
	assert.False(t, ok)
}

func TestMemoryCache_ConcurrentDisjointKeys(t *testing.T) {
	cache := NewMemoryCache(DefaultTTL)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n byte) {
			defer wg.Done()
			key := string([]byte{'k', n})
			cache.Set(ctx, key, []byte{n})
			got, ok := cache.Get(ctx, key)
			assert.True(t, ok)
			assert.Equal(t, []byte{n}, got)
		}(byte(i))
	}
	wg.Wait()
}

func TestAutocompleteKey_NormalizesCaseAndWhitespace(t *testing.T) {
	assert.Equal(t, AutocompleteKey("pizza"), AutocompleteKey("  Pizza "))
	assert.Equal(t, "autocomplete:night market", AutocompleteKey(" Night Market\t"))
}

func TestReverseKey_RoundsToFourDecimals(t *testing.T) {
	// ~11 m grid: coordinates within the same 4-decimal cell share a slot.
	assert.Equal(t, ReverseKey(25.03301, 121.56541), ReverseKey(25.03299, 121.56539))
	assert.Equal(t, "reverse:25.0330:121.5654", ReverseKey(25.033, 121.5654))
}
