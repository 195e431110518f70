//go:build !integration

package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/container-optimizer/internal/domain/model"
)

func optimalResult(totalBoxes int) model.OptimizationResult {
	return model.OptimizationResult{
		Status:        model.StatusOptimal,
		TotalBoxes:    totalBoxes,
		SelectedItems: []model.ResultItem{},
	}
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setupCache    func() *ttlCache
		key           string
		expectedValue model.OptimizationResult
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, time.Minute)
				c.Set("digest-a", optimalResult(25))
				return c
			},
			key:           "digest-a",
			expectedValue: optimalResult(25),
			expectedFound: true,
		},
		{
			name: "returns false when key not found",
			setupCache: func() *ttlCache {
				return newTTLCache(10, time.Minute)
			},
			key:           "missing",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, 50*time.Millisecond)
				c.Set("digest-a", optimalResult(25))
				time.Sleep(100 * time.Millisecond)
				return c
			},
			key:           "digest-a",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setupCache()
			defer c.Stop()
			value, found := c.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestTTLCache_EvictsLRUAtCapacity(t *testing.T) {
	c := newTTLCache(2, time.Minute)
	defer c.Stop()

	c.Set("a", optimalResult(1))
	c.Set("b", optimalResult(2))

	// Touch "a" so "b" becomes the least recently used entry.
	_, found := c.Get("a")
	assert.True(t, found)

	c.Set("c", optimalResult(3))

	_, found = c.Get("b")
	assert.False(t, found)
	_, found = c.Get("a")
	assert.True(t, found)
	_, found = c.Get("c")
	assert.True(t, found)
}

func TestTTLCache_SetUpdatesExistingKey(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("digest-a", optimalResult(10))
	c.Set("digest-a", optimalResult(20))

	value, found := c.Get("digest-a")
	assert.True(t, found)
	assert.Equal(t, 20, value.TotalBoxes)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("digest-a", optimalResult(10))
	c.Invalidate("digest-a")

	_, found := c.Get("digest-a")
	assert.False(t, found)
}

func TestTTLCache_Clear(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("a", optimalResult(1))
	c.Set("b", optimalResult(2))
	c.Set("c", optimalResult(3))

	c.Clear()

	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Hits)
	assert.Equal(t, int64(0), m.Misses)

	_, found := c.Get("a")
	assert.False(t, found)
}

func TestTTLCache_Metrics(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("a", optimalResult(1))

	_, _ = c.Get("a")       // hit
	_, _ = c.Get("missing") // miss

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
	assert.Equal(t, 10, m.Capacity)
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	c := newTTLCache(100, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := fmt.Sprintf("w%d-%d", worker, j)
				c.Set(key, optimalResult(j))
				_, _ = c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	m := c.Metrics()
	assert.LessOrEqual(t, m.Size, 100)
}
