package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ctrader-openapi/messages"
)

// Logging records the request payload type, duration, and any error for each
// dispatched request.
func Logging(log *zap.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req messages.Message) (*messages.ProtoMessage, error) {
			start := time.Now()
			res, err := next(ctx, req)
			fields := []zap.Field{
				zap.String("request", messages.Name(req.PayloadType())),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				log.Warn("request failed", append(fields, zap.Error(err))...)
				return res, err
			}
			log.Debug("request completed", fields...)
			return res, nil
		}
	}
}
