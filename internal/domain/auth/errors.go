package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email/badge or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
