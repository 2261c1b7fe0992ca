// Package client is the authenticated HTTP client of the URL-shortener
// backend.
//
// # Overview
//
// HTTPClient issues one logical request per call. Each request carries a
// bearer access token taken from an injected TokenStore. When the backend
// answers 401 on the first attempt, the client renews the token pair through
// PATCH /auth/updateToken and resends the request exactly once. If no refresh
// token is stored, or the renewal fails, the injected SessionTerminator is
// invoked. The call then returns with no value and no error, because the
// session is over and the caller is expected to leave the current screen.
//
// Concurrent renewals holding the same refresh token are collapsed into one
// backend call. A 401 that arrives after another caller already rotated the
// pair is retried with the stored access token and makes no refresh call.
//
// # Error Handling
//
// Non-success responses other than the recoverable first 401 are returned as
// *APIError. APIError matches the sentinels in internal/common through
// errors.Is: ErrUnauthorized (401, 403), ErrNotFound (404) and ErrUnavailable
// (502, 503, 504). Transport failures are returned as produced by the
// transport. ErrRefreshFailed and ErrInvalidTokenResponse describe malformed
// token responses.
package client
