package model

import "errors"

var (
	// ErrBadExchangeSecret means the caller is not the trusted gateway.
	ErrBadExchangeSecret = errors.New("invalid exchange secret")

	// ErrInvalidRefreshToken covers expired, malformed, revoked, and
	// already-rotated refresh tokens alike. Callers get no finer detail.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
