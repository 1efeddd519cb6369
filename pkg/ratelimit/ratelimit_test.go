package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestTokenLimiter_Wait(t *testing.T) {
	l := newTokenLimiter(100, time.Hour)

	require.NoError(t, l.Wait(context.Background(), 60))
	assert.Equal(t, 40, l.GetRemaining())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	err := l.Wait(ctx, 60)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 40, l.GetRemaining())
}

func TestTokenLimiter_Refill(t *testing.T) {
	l := newTokenLimiter(10, 50*time.Millisecond)
	require.NoError(t, l.Wait(context.Background(), 10))
	assert.Equal(t, 0, l.GetRemaining())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, l.Wait(ctx, 5))
	assert.Equal(t, 5, l.GetRemaining())
}

func TestTokenLimiter_OversizedRequestIsCapped(t *testing.T) {
	l := newTokenLimiter(10, time.Hour)
	require.NoError(t, l.Wait(context.Background(), 500))
	assert.Equal(t, 0, l.GetRemaining())
}

func TestLimiterStore(t *testing.T) {
	s := NewLimiterStore(rate.Limit(1), 1)
	a := s.GetLimiter("a")
	assert.Same(t, a, s.GetLimiter("a"))
	assert.NotSame(t, a, s.GetLimiter("b"))

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, s.Evict(10*time.Millisecond))
	assert.NotSame(t, a, s.GetLimiter("a"))
}

func TestPerMinute(t *testing.T) {
	assert.Equal(t, rate.Inf, PerMinute(0).Limit())
	assert.InDelta(t, 1.0, float64(PerMinute(60).Limit()), 0.0001)
}
