package client

import (
	"context"

	"github.com/dmitrijs2005/shortener-client/internal/client/models"
)

// TokenStore persists the session token pair. Get returns "" for an absent
// key. SetPair must write both tokens or neither.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	SetPair(ctx context.Context, pair models.TokenPair) error
	Clear(ctx context.Context) error
}

// SessionTerminator ends the local session after an unrecoverable auth
// failure. Implementations must be idempotent.
type SessionTerminator func(ctx context.Context)

// Client is the backend API contract used by the services layer.
type Client interface {
	Execute(ctx context.Context, endpoint string, opts RequestOptions, out any) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (models.TokenPair, error)

	Login(ctx context.Context, email, password string) (models.TokenPair, error)
	Register(ctx context.Context, email, password string) error
	Logout(ctx context.Context, refreshToken string) error

	ListURLs(ctx context.Context) ([]models.ShortURL, error)
	CreateURL(ctx context.Context, url, alias string) (models.ShortURL, error)
	UpdateURL(ctx context.Context, id int64, newURL string) error
	DeleteURL(ctx context.Context, id int64) error
	ResolveAlias(ctx context.Context, alias string) (string, error)
}

// RequestOptions describes one logical request. Method defaults to GET.
// Headers are merged over Content-Type: application/json. A string or []byte
// Body is sent as-is; any other non-nil Body is encoded as JSON.
type RequestOptions struct {
	Method  string
	Headers map[string]string
	Body    any
}
