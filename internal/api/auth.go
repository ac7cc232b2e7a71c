package api

import (
	"context"
	"net/http"

	"marketplace-client/internal/user"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, user.Credentials{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrMissingToken
	}
	return resp.Token, nil
}

// Register validates the form locally, then creates the account. It returns
// the server's confirmation message.
func (c *Client) Register(ctx context.Context, in user.RegisterInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, in, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Profile returns the user the session token belongs to.
func (c *Client) Profile(ctx context.Context) (*user.Profile, error) {
	var p user.Profile
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
