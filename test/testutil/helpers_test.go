package testutil

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-alert/flight-alert-service/internal/adapter/cache"
)

func TestLoadTestJSON(t *testing.T) {
	data := LoadTestJSON(t, "airports_results_envelope.json")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Contains(t, body, "results")
}

func TestEventually(t *testing.T) {
	var n atomic.Int32
	go func() {
		time.Sleep(20 * time.Millisecond)
		n.Store(1)
	}()

	Eventually(t, time.Second, func() bool { return n.Load() == 1 }, "flag set")
}

func TestPtr(t *testing.T) {
	p := Ptr(42.5)
	require.NotNil(t, p)
	assert.Equal(t, 42.5, *p)

	s := Ptr("JFK")
	assert.Equal(t, "JFK", *s)
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.Del(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)
	assert.Equal(t, 0, c.Len())
}
