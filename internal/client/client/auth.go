package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/shortener-client/internal/client/models"
)

const (
	loginEndpoint    = "/auth/login"
	registerEndpoint = "/auth"
	logoutEndpoint   = "/auth/logout"
)

// Login authenticates and stores the returned pair atomically. A zero pair
// with a nil error means the session was terminated while logging in.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	var pair models.TokenPair
	ended, err := c.execute(ctx, loginEndpoint, RequestOptions{
		Method: http.MethodPost,
		Body:   models.Credentials{Email: email, Password: password},
	}, &pair)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("login: %w", err)
	}
	if ended {
		return models.TokenPair{}, nil
	}

	if !pair.Complete() {
		return models.TokenPair{}, fmt.Errorf("login: %w", ErrInvalidTokenResponse)
	}
	if err := c.tokens.SetPair(ctx, pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("login: %w", err)
	}

	c.log.Info(ctx, "logged in", "op", "login")
	return pair, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	err := c.Execute(ctx, registerEndpoint, RequestOptions{
		Method: http.MethodPost,
		Body:   models.Credentials{Email: email, Password: password},
	}, nil)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout revokes refreshToken on the backend. Local tokens are left alone.
func (c *HTTPClient) Logout(ctx context.Context, refreshToken string) error {
	err := c.Execute(ctx, logoutEndpoint, RequestOptions{
		Method: http.MethodPost,
		Body:   models.RefreshRequest{RefreshToken: refreshToken},
	}, nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
