// Package common defines shared constants and sentinel errors used across
// client and server layers of LifeLog. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation / payload errors.
	ErrValidation       = errors.New("validation error")
	ErrPayloadTooLarge  = errors.New("payload too large")
	ErrUnsupportedMedia = errors.New("unsupported media type")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
