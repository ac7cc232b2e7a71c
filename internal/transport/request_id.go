package transport

import (
	"net/http"

	"marketplace-client/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with the context's request id, generating one
// when the caller did not set it.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(RequestIDHeader) != "" {
				return next.RoundTrip(req)
			}

			ctx := logger.NewRequestID(req.Context())
			req = req.Clone(ctx)
			req.Header.Set(RequestIDHeader, logger.RequestIDFrom(ctx))
			return next.RoundTrip(req)
		})
	}
}
