// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"authsvc/config"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"
)

const (
	defaultStoreTimeout   = 5 * time.Second
	defaultRetryBaseDelay = 50 * time.Millisecond
)

// storeGuard bounds every store call with a timeout and retries idempotent reads
// that failed transiently. Writes are attempted exactly once.
type storeGuard struct {
	timeout    time.Duration
	maxRetries uint64
	baseDelay  time.Duration
}

func newStoreGuard(cfg *config.Config) storeGuard {
	guard := storeGuard{
		timeout:   defaultStoreTimeout,
		baseDelay: defaultRetryBaseDelay,
	}
	if cfg == nil {
		return guard
	}

	if cfg.Store.RequestTimeout > 0 {
		guard.timeout = cfg.Store.RequestTimeout
	}
	if cfg.Store.Retry.BaseDelay > 0 {
		guard.baseDelay = cfg.Store.Retry.BaseDelay
	}
	guard.maxRetries = cfg.Store.Retry.MaxRetries

	return guard
}

// read runs an idempotent store call, retrying transient storage faults.
func (g storeGuard) read(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	backoff := retry.WithMaxRetries(g.maxRetries, retry.NewExponential(g.baseDelay))

	var lastErr error
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		lastErr = fn(ctx)
		if domainerrors.IsTransient(lastErr) {
			return retry.RetryableError(lastErr)
		}

		return lastErr
	})
	// Out of time between attempts: report the store fault, not the deadline.
	if err != nil && lastErr != nil && errors.IsAny(err, context.DeadlineExceeded, context.Canceled) {
		return lastErr
	}

	return err
}

// write runs a non-idempotent store call once under the timeout.
func (g storeGuard) write(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return fn(ctx)
}

// guardedRead is read for calls that return a value.
func guardedRead[T any](ctx context.Context, g storeGuard, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := g.read(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)

		return err
	})

	return result, err
}
