package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the client reads out of the backend's token. The signature
// is not checked here; only the backend holds the secret.
type Claims struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
	UserID  string `json:"user_id"`
	jwt.RegisteredClaims
}

func (c *Claims) buyerID() string {
	for _, id := range []string{c.ID, c.MongoID, c.UserID, c.Subject} {
		if id != "" {
			return id
		}
	}
	return ""
}

// Session holds the bearer token of the signed-in user. It is kept in memory
// only and dies with the process.
type Session struct {
	mu      sync.RWMutex
	token   string
	buyerID string
	expires time.Time
}

func NewSession() *Session {
	return &Session{}
}

// SetToken stores token after reading its claims.
func (s *Session) SetToken(token string) error {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	var expires time.Time
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}

	s.mu.Lock()
	s.token = token
	s.buyerID = claims.buyerID()
	s.expires = expires
	s.mu.Unlock()
	return nil
}

// Token returns the bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// BuyerID is the user id carried by the token, if the backend put one there.
func (s *Session) BuyerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buyerID
}

// Expired reports whether the token's exp is at or before now. Tokens
// without exp never expire client-side.
func (s *Session) Expired(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.expires.IsZero() && !now.Before(s.expires)
}

// Check returns nil when a usable token is held.
func (s *Session) Check(now time.Time) error {
	if s.Token() == "" {
		return ErrNotAuthenticated
	}
	if s.Expired(now) {
		return ErrTokenExpired
	}
	return nil
}

// Clear signs the session out.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.buyerID = ""
	s.expires = time.Time{}
	s.mu.Unlock()
}
