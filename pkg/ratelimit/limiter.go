// Package ratelimit provides client-side admission control for outbound
// API requests.
//
// The limiter implements the token bucket algorithm: the bucket holds up
// to Burst tokens and refills at Rate tokens per second. Every request
// consumes one token; callers block (context-aware) until a token is
// available. The limiter is safe for concurrent use and is designed to be
// dependency-injected rather than shared through package-level state.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter gates outbound requests with a token bucket.
type Limiter struct {
	limiter *rate.Limiter
	metrics Metrics
}

// New creates a Limiter from cfg. Invalid configurations are rejected;
// zero values are filled with defaults first.
func New(cfg Config) (*Limiter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		metrics: metrics,
	}, nil
}

// Wait blocks until a token is available or the context is done. Exactly
// one token is consumed per successful return.
func (l *Limiter) Wait(ctx context.Context) error {
	start := time.Now()
	err := l.limiter.Wait(ctx)
	l.metrics.RecordAcquire(time.Since(start), err == nil)
	return err
}

// Allow reports whether a token is immediately available, consuming one
// when it is. It never blocks.
func (l *Limiter) Allow() bool {
	ok := l.limiter.Allow()
	l.metrics.RecordAcquire(0, ok)
	return ok
}

// Tokens returns the number of tokens currently in the bucket. The value
// is a snapshot and is bounded by the configured burst.
func (l *Limiter) Tokens() float64 {
	return l.limiter.Tokens()
}

// Burst returns the bucket capacity.
func (l *Limiter) Burst() int {
	return l.limiter.Burst()
}
