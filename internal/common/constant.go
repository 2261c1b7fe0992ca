// Package common contains shared constants and sentinel errors used across
// the shortener client.
package common

// Storage keys of the session token pair.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
)

// HTTP header names the client sets on outbound requests.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	RequestIDHeaderName     = "X-Request-Id"
	LocationHeaderName      = "Location"

	BearerPrefix    = "Bearer "
	JSONContentType = "application/json"
)
