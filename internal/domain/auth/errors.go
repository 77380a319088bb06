package auth

import "errors"

var (
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountSuspended    = errors.New("account is suspended")
)
