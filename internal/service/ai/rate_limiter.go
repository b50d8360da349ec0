package ai

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default number of upstream requests per minute.
const DefaultRateLimit = 10

// RateLimiter throttles calls to the upstream AI API. The limit is
// expressed in requests per minute and can be changed at runtime.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	limit   int
}

// NewRateLimiter creates a limiter allowing perMinute requests per minute.
// Values <= 0 fall back to DefaultRateLimit.
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{}
	rl.SetLimit(perMinute)
	return rl
}

// SetLimit replaces the current limit. Values <= 0 fall back to
// DefaultRateLimit.
func (r *RateLimiter) SetLimit(perMinute int) {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit = perMinute
	r.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

// GetLimit returns the current requests-per-minute limit.
func (r *RateLimiter) GetLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// Wait blocks until a request is allowed or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Wait(ctx)
}
