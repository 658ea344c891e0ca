package common

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryForever repeats fn until it succeeds or the context is canceled,
// waiting interval between attempts.
func RetryForever(ctx context.Context, interval time.Duration, fn func(context.Context) error) error {
	err := retry.Do(ctx, retry.NewConstant(interval), func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return retry.RetryableError(err)
		}

		return nil
	})

	return err
}
