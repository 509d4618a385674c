package middleware

import (
	"context"
	"time"

	"ctrader-openapi/messages"
)

// Timeout bounds each dispatched request with a context deadline. The
// dispatch honors context cancellation, so no racing goroutine is needed.
func Timeout(d time.Duration) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, req)
		}
	}
}
