package ledger

import (
	"context"
	"fmt"
	"time"
)

// await runs fn and gives up once timeout elapses or ctx is done. fn keeps
// running in the background after a timeout; its result is dropped.
func await[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}

	done := make(chan result, 1)
	go func() {
		val, err := fn()
		done <- result{val: val, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrLedgerUnavailable, ctx.Err())
	}
}
