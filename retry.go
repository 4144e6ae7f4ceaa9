package dansk

import (
	"context"
	"errors"
	"time"
)

// RetryConfig controls the exponential backoff used by WithRetry.
type RetryConfig struct {
	MaxRetries int           // retries after the first attempt
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration // backoff ceiling
}

// DefaultRetryConfig returns the defaults the CLI and server use for
// suggestion calls.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry runs fn up to 1+MaxRetries times, doubling the delay between
// attempts up to MaxDelay. It stops early on success, on a non-retryable
// error, or when ctx is done.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var zero T

	delay := cfg.BaseDelay
	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !IsRetryable(err) {
			return zero, err
		}
		lastErr = err

		if attempt >= cfg.MaxRetries {
			return zero, lastErr
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}

// IsRetryable reports whether err is worth retrying. Only ProviderError
// with the Retryable flag qualifies; everything else, context errors
// included, fails immediately.
func IsRetryable(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}

// RetryableSuggester wraps a Suggester with retry logic.
type RetryableSuggester struct {
	suggester Suggester
	config    RetryConfig
}

// NewRetryableSuggester creates a new suggester with retry logic.
func NewRetryableSuggester(s Suggester, cfg RetryConfig) *RetryableSuggester {
	return &RetryableSuggester{
		suggester: s,
		config:    cfg,
	}
}

// Suggest implements Suggester with retry logic.
func (s *RetryableSuggester) Suggest(ctx context.Context, req SuggestRequest) (string, error) {
	return WithRetry(ctx, s.config, func() (string, error) {
		return s.suggester.Suggest(ctx, req)
	})
}
