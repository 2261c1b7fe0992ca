// Package models defines the data exchanged with the shortener backend.
package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/shortener-client/internal/common"
)

// Credentials is the login/registration body. It is never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is the session token pair issued on login and on renewal.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Complete reports whether both tokens are present.
func (p TokenPair) Complete() bool {
	return p.AccessToken != "" && p.RefreshToken != ""
}

// RefreshRequest is the body of logout and token renewal requests.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AccessClaims is the subset of access token claims shown to the user.
type AccessClaims struct {
	UserID    int64
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token expiry is known and lies before now.
func (c AccessClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// ParseAccessClaims decodes the access token payload without verifying the
// signature. The result is for display only.
func ParseAccessClaims(accessToken string) (AccessClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return AccessClaims{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	var ac AccessClaims
	if uid, ok := claims["uid"].(float64); ok {
		ac.UserID = int64(uid)
	}
	ac.Email, _ = claims["email"].(string)
	ac.Role, _ = claims["role"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return AccessClaims{}, fmt.Errorf("%w: expiry: %w", common.ErrInvalidToken, err)
	}
	if exp != nil {
		ac.ExpiresAt = exp.Time
	}
	return ac, nil
}
