package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shortener-client/internal/client/models"
)

func TestLogin_StoresPair(t *testing.T) {
	b := newFakeBackend(t)
	b.router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, models.Credentials{Email: "a@b.c", Password: "p"}, creds)
		writeJSON(w, http.StatusOK, pair1)
	})

	c, store, term := newTestClient(t, b.URL(), models.TokenPair{})

	got, err := c.Login(context.Background(), "a@b.c", "p")
	require.NoError(t, err)
	require.Equal(t, pair1, got)
	require.Equal(t, pair1, storedPair(t, store))
	require.Zero(t, term.Count())

	hits := b.Hits(http.MethodPost, "/auth/login")
	require.Len(t, hits, 1)
	require.Empty(t, hits[0].Auth)
}

func TestLogin_IncompletePairStoresNothing(t *testing.T) {
	b := newFakeBackend(t)
	b.router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"accessToken": "A1"})
	})

	c, store, _ := newTestClient(t, b.URL(), models.TokenPair{})

	_, err := c.Login(context.Background(), "a@b.c", "p")
	require.ErrorIs(t, err, ErrInvalidTokenResponse)
	require.Equal(t, models.TokenPair{}, storedPair(t, store))
}

func TestLogin_RejectedWithoutSessionTerminates(t *testing.T) {
	b := newFakeBackend(t)
	b.router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "wrong password"})
	})

	c, store, term := newTestClient(t, b.URL(), models.TokenPair{})

	got, err := c.Login(context.Background(), "a@b.c", "bad")
	require.NoError(t, err)
	require.Equal(t, models.TokenPair{}, got)
	require.Equal(t, 1, term.Count())
	require.Equal(t, models.TokenPair{}, storedPair(t, store))
}

func TestLogin_ServerError(t *testing.T) {
	b := newFakeBackend(t)
	b.router.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "email is invalid"})
	})

	c, _, _ := newTestClient(t, b.URL(), models.TokenPair{})

	_, err := c.Login(context.Background(), "nope", "p")
	require.Error(t, err)
	require.Equal(t, "email is invalid", UserMessage(err))
}

func TestRegister(t *testing.T) {
	b := newFakeBackend(t)
	b.router.Post("/auth", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	c, _, _ := newTestClient(t, b.URL(), models.TokenPair{})

	require.NoError(t, c.Register(context.Background(), "a@b.c", "p"))

	hits := b.Hits(http.MethodPost, "/auth")
	require.Len(t, hits, 1)
	require.JSONEq(t, `{"email":"a@b.c","password":"p"}`, string(hits[0].Body))
}

func TestRegister_Conflict(t *testing.T) {
	b := newFakeBackend(t)
	b.router.Post("/auth", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{"message": "user exists"})
	})

	c, _, _ := newTestClient(t, b.URL(), models.TokenPair{})

	err := c.Register(context.Background(), "a@b.c", "p")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "user exists", apiErr.ServerMessage())
}

func TestLogout_SendsRefreshToken(t *testing.T) {
	b := newFakeBackend(t)
	b.router.Post("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	c, store, _ := newTestClient(t, b.URL(), pair1)

	require.NoError(t, c.Logout(context.Background(), "R1"))

	hits := b.Hits(http.MethodPost, "/auth/logout")
	require.Len(t, hits, 1)
	require.JSONEq(t, `{"refreshToken":"R1"}`, string(hits[0].Body))
	require.Equal(t, pair1, storedPair(t, store))
}
