package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shortener-client/internal/client/models"
	"github.com/dmitrijs2005/shortener-client/internal/client/tokenstore"
	"github.com/dmitrijs2005/shortener-client/internal/common"
)

// ---- fake backend ----

type hit struct {
	Method    string
	Path      string
	Auth      string
	RequestID string
	Body      []byte
}

// fakeBackend records every request before routing it.
type fakeBackend struct {
	mu   sync.Mutex
	hits []hit

	router *chi.Mux
	srv    *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{router: chi.NewRouter()}
	b.router.Use(b.record)
	b.srv = httptest.NewServer(b.router)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		b.mu.Lock()
		b.hits = append(b.hits, hit{
			Method:    r.Method,
			Path:      r.URL.Path,
			Auth:      r.Header.Get(common.AuthorizationHeaderName),
			RequestID: r.Header.Get(common.RequestIDHeaderName),
			Body:      body,
		})
		b.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) URL() string { return b.srv.URL }

func (b *fakeBackend) Hits(method, path string) []hit {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []hit
	for _, h := range b.hits {
		if h.Method == method && h.Path == path {
			out = append(out, h)
		}
	}
	return out
}

func (b *fakeBackend) Total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.hits)
}

// requireBearer answers 401 unless the request carries Bearer token.
func requireBearer(token string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(common.AuthorizationHeaderName) != common.BearerPrefix+token {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "token expired"})
			return
		}
		next(w, r)
	}
}

// rotateTokens serves /auth/updateToken: from -> to, anything else 401.
func rotateTokens(from string, to models.TokenPair) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken != from {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "invalid refresh token"})
			return
		}
		writeJSON(w, http.StatusOK, to)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(common.ContentTypeHeaderName, common.JSONContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- client wiring ----

type terminations struct {
	n atomic.Int32
}

func (tc *terminations) terminate(context.Context) { tc.n.Add(1) }

func (tc *terminations) Count() int { return int(tc.n.Load()) }

func newTestClient(t *testing.T, baseURL string, pair models.TokenPair) (*HTTPClient, *tokenstore.MemoryStore, *terminations) {
	t.Helper()
	store := tokenstore.NewMemoryStore()
	ctx := context.Background()
	if pair.AccessToken != "" {
		require.NoError(t, store.Set(ctx, common.AccessTokenKey, pair.AccessToken))
	}
	if pair.RefreshToken != "" {
		require.NoError(t, store.Set(ctx, common.RefreshTokenKey, pair.RefreshToken))
	}

	term := &terminations{}
	return NewHTTPClient(baseURL, store, term.terminate, nil), store, term
}

func storedPair(t *testing.T, store TokenStore) models.TokenPair {
	t.Helper()
	ctx := context.Background()
	access, err := store.Get(ctx, common.AccessTokenKey)
	require.NoError(t, err)
	refresh, err := store.Get(ctx, common.RefreshTokenKey)
	require.NoError(t, err)
	return models.TokenPair{AccessToken: access, RefreshToken: refresh}
}
