package server

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"go.uber.org/zap"
)

// NewLoggingInterceptor logs every unary call with its outcome.
func NewLoggingInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("procedure", req.Spec().Procedure),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				code := connect.CodeOf(err)
				fields = append(fields, zap.Stringer("code", code), zap.Error(err))
				if code == connect.CodeInternal || code == connect.CodeUnavailable {
					logger.Error("rpc failed", fields...)
				} else {
					logger.Info("rpc rejected", fields...)
				}
				return res, err
			}
			logger.Info("rpc handled", fields...)
			return res, nil
		}
	}
}
