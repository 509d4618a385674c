package middleware

import (
	"context"
	"time"

	"ctrader-openapi/messages"
)

// Retry re-dispatches a failed request up to maxRetries times with
// exponential backoff. shouldRetry decides which errors are worth another
// attempt; trading requests are not idempotent, so callers scope this
// middleware to read-only operations.
func Retry(maxRetries int, baseDelay time.Duration, shouldRetry func(error) bool) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error) {
			res, err := next(ctx, req)
			for i := 0; i < maxRetries && err != nil && shouldRetry(err); i++ {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(baseDelay * time.Duration(1<<i)):
				}
				res, err = next(ctx, req)
			}
			return res, err
		}
	}
}
