package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiters_BucketPerClientAndUpstream(t *testing.T) {
	l := NewLimiters(0.02, 1)

	assert.True(t, l.Allow("a", UpstreamUsers))
	assert.False(t, l.Allow("a", UpstreamUsers))
	assert.True(t, l.Allow("a", UpstreamItems))
	assert.True(t, l.Allow("b", UpstreamUsers))

	assert.Equal(t, 2, l.Clients(UpstreamUsers))
	assert.Equal(t, 1, l.Clients(UpstreamItems))
	assert.Equal(t, 0, l.Clients(UpstreamFrontend))
}

func TestLimiters_EvictDropsIdleBuckets(t *testing.T) {
	l := NewLimiters(0.02, 1, WithIdleTTL(time.Minute), WithCleanupEvery(0))

	assert.True(t, l.Allow("k", UpstreamUsers))
	assert.Equal(t, 0, l.Evict(time.Now()))
	assert.Equal(t, 1, l.Evict(time.Now().Add(2*time.Minute)))
	assert.Equal(t, 0, l.Clients(UpstreamUsers))

	// bucket recriado: volta a ter o burst cheio
	assert.True(t, l.Allow("k", UpstreamUsers))
}

func TestLimiters_JanitorEvicts(t *testing.T) {
	l := NewLimiters(10, 1, WithIdleTTL(time.Millisecond), WithCleanupEvery(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l.Allow("k", UpstreamItems)
	l.StartJanitor(ctx)

	assert.Eventually(t, func() bool { return l.Clients(UpstreamItems) == 0 }, time.Second, 5*time.Millisecond)
}
