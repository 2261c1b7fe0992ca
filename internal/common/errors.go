// Package common defines shared constants and sentinel errors used across
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport/status level errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("server unavailable")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")

	// Validation errors.
	ErrInvalidURL = errors.New("invalid url")
)
