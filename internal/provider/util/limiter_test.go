package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiterBurstThenThrottle(t *testing.T) {
	hl := NewHostLimiter(100, 2)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, hl.Wait(ctx, "api.example.com"))
	require.NoError(t, hl.Wait(ctx, "api.example.com"))
	assert.Less(t, time.Since(start), 100*time.Millisecond, "burst should not block")

	// a different host has its own bucket
	require.NoError(t, hl.Wait(ctx, "other.example.com"))
}

func TestHostLimiterRespectsContext(t *testing.T) {
	hl := NewHostLimiter(0.001, 1)
	ctx := context.Background()
	require.NoError(t, hl.Wait(ctx, "slow.example.com"))

	ctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	err := hl.Wait(ctx, "slow.example.com")
	assert.Error(t, err)
}

func TestWaitURL(t *testing.T) {
	hl := NewHostLimiter(100, 1)
	assert.NoError(t, hl.WaitURL(context.Background(), "https://api.adzuna.com/v1/api/jobs/gb/search/1"))
	assert.NoError(t, hl.WaitURL(context.Background(), "::not a url::"))
}
