package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/shortener-client/internal/common"
)

var (
	ErrRefreshFailed        = errors.New("failed to refresh token")
	ErrInvalidTokenResponse = errors.New("invalid token response")
	ErrNoLocation           = errors.New("response has no Location header")
)

// APIError is returned for every non-success response that is not recovered
// by the token renewal.
type APIError struct {
	StatusCode int
	// Message is "HTTP <status>: <reason phrase>".
	Message string
	// Payload is the decoded JSON object body; nil if the body was empty or
	// not a JSON object.
	Payload map[string]any
}

// newAPIError builds the error from a response. status is the status line
// as received ("499 Client Closed Request"); its reason phrase wins over
// http.StatusText.
func newAPIError(statusCode int, status string, body []byte) *APIError {
	e := &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", statusCode, reasonPhrase(statusCode, status)),
	}

	var payload map[string]any
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		e.Payload = payload
	}
	return e
}

func reasonPhrase(statusCode int, status string) string {
	code, reason, _ := strings.Cut(strings.TrimSpace(status), " ")
	if reason = strings.TrimSpace(reason); code == strconv.Itoa(statusCode) && reason != "" {
		return reason
	}
	return http.StatusText(statusCode)
}

func (e *APIError) Error() string {
	return e.Message
}

// ServerMessage returns the "message" field of the payload when the server
// sent one, and Message otherwise.
func (e *APIError) ServerMessage() string {
	if msg, ok := e.Payload["message"].(string); ok && msg != "" {
		return msg
	}
	return e.Message
}

func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case common.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case common.ErrUnavailable:
		return e.StatusCode == http.StatusBadGateway ||
			e.StatusCode == http.StatusServiceUnavailable ||
			e.StatusCode == http.StatusGatewayTimeout
	}
	return false
}

// UserMessage renders err for display: the server message of an *APIError,
// or err.Error() for anything else.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ServerMessage()
	}
	return err.Error()
}
