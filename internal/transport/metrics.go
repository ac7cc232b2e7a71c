package transport

import (
	"errors"
	"net/http"

	"marketplace-client/internal/metrics"
)

// Metrics counts every round trip into m by outcome. Requests held back by
// the limiter are counted as throttled, not sent.
func Metrics(m *metrics.Client) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if errors.Is(err, ErrRateLimited) {
				m.Throttled.Inc()
				return nil, err
			}
			if err != nil {
				m.Observe(0)
				return nil, err
			}
			m.Observe(resp.StatusCode)
			return resp, nil
		})
	}
}
