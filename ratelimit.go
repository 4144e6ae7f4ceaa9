package dansk

import (
	"context"
	"sync"
	"time"
)

// RateLimitConfig configures the token bucket guarding suggestion calls.
type RateLimitConfig struct {
	RequestsPerMinute int // refill rate, defaults to 60
	BurstSize         int // bucket capacity, defaults to RequestsPerMinute
}

// RateLimiter is a token bucket. The bucket starts full and refills
// continuously at the configured per-minute rate; fractional tokens
// accumulate between calls.
type RateLimiter struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	updated  time.Time
}

// NewRateLimiter creates a rate limiter from cfg, applying defaults for
// zero or negative values.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60
	}
	capacity := float64(cfg.BurstSize)
	if capacity <= 0 {
		capacity = rpm
	}
	return &RateLimiter{
		tokens:   capacity,
		capacity: capacity,
		perSec:   rpm / 60.0,
		updated:  time.Now(),
	}
}

// advance credits tokens for the time elapsed since the last call.
// Callers must hold mu.
func (r *RateLimiter) advance() {
	now := time.Now()
	r.tokens += now.Sub(r.updated).Seconds() * r.perSec
	if r.tokens > r.capacity {
		r.tokens = r.capacity
	}
	r.updated = now
}

// TryAcquire takes one token if available, without blocking.
func (r *RateLimiter) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.advance()
	if r.tokens < 1 {
		return false
	}
	r.tokens--
	return true
}

// Wait blocks until a token can be taken or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		r.advance()
		if r.tokens >= 1 {
			r.tokens--
			r.mu.Unlock()
			return nil
		}
		// Sleep just long enough for the missing fraction of a token.
		wait := time.Duration((1 - r.tokens) / r.perSec * float64(time.Second))
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Available returns the current token count, refilled to now.
func (r *RateLimiter) Available() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advance()
	return r.tokens
}

// RateLimitedSuggester wraps a Suggester with rate limiting.
type RateLimitedSuggester struct {
	suggester Suggester
	limiter   *RateLimiter
}

// NewRateLimitedSuggester creates a new rate-limited suggester.
func NewRateLimitedSuggester(s Suggester, cfg RateLimitConfig) *RateLimitedSuggester {
	return &RateLimitedSuggester{
		suggester: s,
		limiter:   NewRateLimiter(cfg),
	}
}

// Suggest waits for the limiter, then delegates to the wrapped suggester.
// A cancelled wait surfaces as a non-retryable ProviderError.
func (s *RateLimitedSuggester) Suggest(ctx context.Context, req SuggestRequest) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", &ProviderError{
			Message:   "rate limit wait cancelled",
			Cause:     err,
			Retryable: false,
		}
	}
	return s.suggester.Suggest(ctx, req)
}

// Limiter returns the underlying rate limiter for inspection.
func (s *RateLimitedSuggester) Limiter() *RateLimiter {
	return s.limiter
}
