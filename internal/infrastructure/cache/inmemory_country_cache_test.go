package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/backend/internal/domain/partner"
)

func sampleCountries() []partner.Country {
	return []partner.Country{
		{Name: "Brazil", Code: "BR"},
		{Name: "Portugal", Code: "PT"},
	}
}

func TestInMemoryCountryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cache misses", func(t *testing.T) {
		c := NewInMemoryCountryCache(time.Hour)

		got, ok := c.Get(ctx)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("set then get hits", func(t *testing.T) {
		c := NewInMemoryCountryCache(time.Hour)
		c.Set(ctx, sampleCountries())

		got, ok := c.Get(ctx)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, "BR", got[0].Code)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		c := NewInMemoryCountryCache(time.Hour)
		c.Set(ctx, sampleCountries())

		got, ok := c.Get(ctx)
		require.True(t, ok)
		got[0].Code = "XX"

		again, ok := c.Get(ctx)
		require.True(t, ok)
		assert.Equal(t, "BR", again[0].Code)
	})

	t.Run("invalidate drops entry", func(t *testing.T) {
		c := NewInMemoryCountryCache(time.Hour)
		c.Set(ctx, sampleCountries())
		c.Invalidate(ctx)

		_, ok := c.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("expired entry misses", func(t *testing.T) {
		c := NewInMemoryCountryCache(time.Minute)
		current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return current }

		c.Set(ctx, sampleCountries())

		current = current.Add(2 * time.Minute)
		_, ok := c.Get(ctx)
		assert.False(t, ok)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		c := NewInMemoryCountryCache(0)
		current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return current }

		c.Set(ctx, sampleCountries())

		current = current.Add(1000 * time.Hour)
		_, ok := c.Get(ctx)
		assert.True(t, ok)
	})

	t.Run("empty list is still a hit", func(t *testing.T) {
		c := NewInMemoryCountryCache(time.Hour)
		c.Set(ctx, []partner.Country{})

		got, ok := c.Get(ctx)
		assert.True(t, ok)
		assert.Empty(t, got)
	})
}
