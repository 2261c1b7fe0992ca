package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/shortener-client/internal/client/client"
	"github.com/dmitrijs2005/shortener-client/internal/client/models"
	"github.com/dmitrijs2005/shortener-client/internal/common"
)

var ErrMissingCredentials = errors.New("email and password are required")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate and persist the token pair.
//   - Register: create a new user on the server.
//   - Logout: revoke the refresh token and always clear local tokens.
//   - Session: report the locally stored session.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (Session, error)
}

// Session is the locally stored login state.
type Session struct {
	Tokens models.TokenPair
	// Claims is nil when the access token is not a decodable JWT.
	Claims *models.AccessClaims
}

// Active reports whether a full token pair is stored.
func (s Session) Active() bool {
	return s.Tokens.Complete()
}

// Email returns the account email from the access token, if known.
func (s Session) Email() string {
	if s.Claims == nil {
		return ""
	}
	return s.Claims.Email
}

type authService struct {
	client client.Client
	tokens client.TokenStore
}

func NewAuthService(c client.Client, tokens client.TokenStore) AuthService {
	return &authService{client: c, tokens: tokens}
}

// Login returns common.ErrUnauthorized when the backend rejected the
// credentials and the session was terminated instead of erroring.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return ErrMissingCredentials
	}

	pair, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrInvalidTokenResponse) {
			return fmt.Errorf("login error: %w", common.ErrUnauthorized)
		}
		return fmt.Errorf("login error: %w", err)
	}
	if !pair.Complete() {
		return common.ErrUnauthorized
	}
	return nil
}

func (a *authService) Register(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return ErrMissingCredentials
	}

	if err := a.client.Register(ctx, email, string(password)); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// Logout clears local tokens whatever the backend answered. The backend
// error, if any, is still returned.
func (a *authService) Logout(ctx context.Context) error {
	s, err := a.Session(ctx)
	if err != nil {
		return err
	}

	var logoutErr error
	if s.Active() {
		logoutErr = a.client.Logout(ctx, s.Tokens.RefreshToken)
	}

	if err := a.tokens.Clear(ctx); err != nil {
		return errors.Join(logoutErr, fmt.Errorf("clear tokens: %w", err))
	}
	return logoutErr
}

func (a *authService) Session(ctx context.Context) (Session, error) {
	access, err := a.tokens.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}
	refresh, err := a.tokens.Get(ctx, common.RefreshTokenKey)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	s := Session{Tokens: models.TokenPair{AccessToken: access, RefreshToken: refresh}}
	if access != "" {
		if claims, err := models.ParseAccessClaims(access); err == nil {
			s.Claims = &claims
		}
	}
	return s, nil
}
