package transport

import "net/http"

// TokenSource yields the current bearer token; "" means anonymous.
type TokenSource interface {
	Token() string
}

// BearerAuth adds "Authorization: Bearer <token>" when a token is held and
// the request has no Authorization header of its own.
func BearerAuth(src TokenSource) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			token := src.Token()
			if token == "" || req.Header.Get("Authorization") != "" {
				return next.RoundTrip(req)
			}

			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
			return next.RoundTrip(req)
		})
	}
}
