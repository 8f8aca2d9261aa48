package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserExists              = errors.New("badge or email already registered")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrActingForOtherUser      = errors.New("cannot act on behalf of another user")
)
