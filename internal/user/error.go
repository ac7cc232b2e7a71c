package user

import "errors"

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidPhone     = errors.New("invalid phone number")
)
