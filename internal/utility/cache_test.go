package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache(time.Hour)
	defer cache.Stop()

	cache.Set("k", "v")

	value, exists := cache.Get("k")
	assert.True(t, exists)
	assert.Equal(t, "v", value)
}

func TestCache_GetMissing(t *testing.T) {
	cache := NewCache(time.Hour)
	defer cache.Stop()

	_, exists := cache.Get("missing")
	assert.False(t, exists)
}

func TestCache_CleanupClearsItems(t *testing.T) {
	cache := NewCache(20 * time.Millisecond)
	defer cache.Stop()

	cache.Set("k", "v")

	// Chờ qua một chu kỳ dọn dẹp
	assert.Eventually(t, func() bool {
		_, exists := cache.Get("k")
		return !exists
	}, time.Second, 10*time.Millisecond)
}
