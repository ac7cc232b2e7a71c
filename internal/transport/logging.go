package transport

import (
	"net/http"

	"marketplace-client/internal/logger"
	"marketplace-client/internal/metrics"

	"go.uber.org/zap"
)

// Logging records every outbound call with its status and latency.
func Logging() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			timer := metrics.StartTimer()
			log := logger.FromCtx(req.Context())

			resp, err := next.RoundTrip(req)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Duration("duration_ms", timer.Duration()),
			}
			if err != nil {
				log.Warn("outgoing request failed", append(fields, zap.Error(err))...)
				return nil, err
			}

			log.Info("outgoing request", append(fields, zap.Int("status", resp.StatusCode))...)
			return resp, nil
		})
	}
}
