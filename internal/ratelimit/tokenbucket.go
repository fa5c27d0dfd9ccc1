package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenBucket lets Burst calls through at once and then PerMinute calls a
// minute. Callers reserve a token up front and sleep outside the lock, so
// concurrent readers queue in arrival order.
type TokenBucket struct {
	// refill is the time one token takes to come back.
	refill time.Duration
	burst  float64
	now    func() time.Time

	mu sync.Mutex
	// tokens goes negative while reservations wait for refills.
	tokens float64
	last   time.Time
}

// NewTokenBucket returns a full bucket allowing perMinute calls a minute.
func NewTokenBucket(perMinute, burst int) *TokenBucket {
	return newTokenBucket(perMinute, burst, time.Now)
}

func newTokenBucket(perMinute, burst int, now func() time.Time) *TokenBucket {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		refill: time.Minute / time.Duration(perMinute),
		burst:  float64(burst),
		now:    now,
		tokens: float64(burst),
		last:   now(),
	}
}

// reserve takes a token and returns how long the caller must wait for it.
func (tb *TokenBucket) reserve() time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.now()
	if elapsed := now.Sub(tb.last); elapsed > 0 {
		tb.tokens = min(tb.burst, tb.tokens+float64(elapsed)/float64(tb.refill))
		tb.last = now
	}
	tb.tokens--
	if tb.tokens >= 0 {
		return 0
	}
	return time.Duration(-tb.tokens * float64(tb.refill))
}

// cancel hands back a token reserved by a caller that gave up.
func (tb *TokenBucket) cancel() {
	tb.mu.Lock()
	tb.tokens = min(tb.burst, tb.tokens+1)
	tb.mu.Unlock()
}

// Wait implements Limiter.
func (tb *TokenBucket) Wait(ctx context.Context) error {
	wait := tb.reserve()
	if wait <= 0 {
		return nil
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		tb.cancel()
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
