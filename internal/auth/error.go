package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenRevoked is returned for refresh tokens that were revoked or never persisted.
	ErrTokenRevoked = errors.New("token revoked")
)
