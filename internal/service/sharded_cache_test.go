//go:build !integration

package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		ttl        time.Duration
		numShards  int
		wantShards int
	}{
		{
			name:       "default shards when zero",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  0,
			wantShards: 16,
		},
		{
			name:       "default shards when negative",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  -1,
			wantShards: 16,
		},
		{
			name:       "rounds up to power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  3,
			wantShards: 4,
		},
		{
			name:       "exact power of 2",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  8,
			wantShards: 8,
		},
		{
			name:       "rounds 5 to 8",
			capacity:   100,
			ttl:        time.Minute,
			numShards:  5,
			wantShards: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewShardedCache(tt.capacity, tt.ttl, tt.numShards)
			defer c.Stop()

			assert.NotNil(t, c)
			assert.Equal(t, tt.wantShards, c.numShards)
			assert.Equal(t, uint32(tt.wantShards-1), c.shardMask)
			assert.Len(t, c.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_GetSet(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	c.Set("digest-1", optimalResult(10))
	c.Set("digest-2", optimalResult(20))

	value, found := c.Get("digest-1")
	assert.True(t, found)
	assert.Equal(t, 10, value.TotalBoxes)

	value, found = c.Get("digest-2")
	assert.True(t, found)
	assert.Equal(t, 20, value.TotalBoxes)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestShardedCache_SameKeySameShard(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 8)
	defer c.Stop()

	assert.Same(t, c.getShard("stable-key"), c.getShard("stable-key"))
}

func TestShardedCache_Invalidate(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	c.Set("digest-1", optimalResult(10))
	c.Invalidate("digest-1")

	_, found := c.Get("digest-1")
	assert.False(t, found)
}

func TestShardedCache_Clear(t *testing.T) {
	c := NewShardedCache(100, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 20; i++ {
		c.Set(fmt.Sprintf("digest-%d", i), optimalResult(i))
	}

	c.Clear()

	assert.Equal(t, 0, c.Metrics().Size)
	for i := 0; i < 20; i++ {
		_, found := c.Get(fmt.Sprintf("digest-%d", i))
		assert.False(t, found)
	}
}

func TestShardedCache_AggregatedMetrics(t *testing.T) {
	c := NewShardedCache(64, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("digest-%d", i), optimalResult(i))
	}
	for i := 0; i < 10; i++ {
		_, _ = c.Get(fmt.Sprintf("digest-%d", i))
	}
	_, _ = c.Get("missing")

	m := c.Metrics()
	assert.Equal(t, int64(10), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 10, m.Size)
	assert.Equal(t, 64, m.Capacity)
}

func TestShardedCache_ConcurrentAccess(t *testing.T) {
	c := NewShardedCache(1000, time.Minute, 16)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("w%d-%d", worker, j)
				c.Set(key, optimalResult(j))
				value, found := c.Get(key)
				assert.True(t, found)
				assert.Equal(t, j, value.TotalBoxes)
			}
		}(i)
	}
	wg.Wait()
}
