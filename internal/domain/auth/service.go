package auth

import "context"

type AuthService interface {
	// Login verifies email/badge and password and issues an access token
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
