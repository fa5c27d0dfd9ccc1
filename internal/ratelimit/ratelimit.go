// Package ratelimit paces calls to the price table bucket.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"coinvalue/internal/snapshot"
)

// Limiter blocks until a call may proceed.
type Limiter interface {
	Wait(ctx context.Context) error
}

// MinInterval enforces a minimum time between calls.
// Concurrent callers wait their turn, or return early if the context is canceled.
type MinInterval struct {
	Interval time.Duration
	mu       sync.Mutex
	next     time.Time
}

// Wait implements Limiter.
func (m *MinInterval) Wait(ctx context.Context) error {
	if m.Interval <= 0 {
		return nil
	}
	// reserve a slot so concurrent callers queue up behind each other
	m.mu.Lock()
	now := time.Now()
	slot := m.next
	if slot.Before(now) {
		slot = now
	}
	m.next = slot.Add(m.Interval)
	m.mu.Unlock()

	wait := time.Until(slot)
	if wait <= 0 {
		return nil
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// New picks a limiter from request budgets: a token bucket when rpm is set,
// otherwise a minimum interval. It returns nil when neither is set.
func New(rpm, burst int, minInterval time.Duration) Limiter {
	switch {
	case rpm > 0:
		return NewTokenBucket(rpm, burst)
	case minInterval > 0:
		return &MinInterval{Interval: minInterval}
	}
	return nil
}

// S3API gates every S3 call on L.
type S3API struct {
	API snapshot.S3API
	L   Limiter
}

// ListObjectsV2 implements snapshot.S3API.
func (s *S3API) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if s.L != nil {
		if err := s.L.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return s.API.ListObjectsV2(ctx, params, optFns...)
}

// GetObject implements snapshot.S3API.
func (s *S3API) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if s.L != nil {
		if err := s.L.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return s.API.GetObject(ctx, params, optFns...)
}
