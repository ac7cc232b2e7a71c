package auth

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrTokenExpired     = errors.New("session token expired")
	ErrMalformedToken   = errors.New("malformed session token")
)
