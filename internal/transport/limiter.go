package transport

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// NewLimiter builds a token bucket of perSecond requests with the given burst.
// A non-positive rate disables limiting.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// RateLimit holds each request until the limiter allows it or the request's
// context ends.
func RateLimit(l *rate.Limiter) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := l.Wait(req.Context()); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
			}
			return next.RoundTrip(req)
		})
	}
}
