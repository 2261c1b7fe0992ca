package services

import (
	"context"

	"github.com/dmitrijs2005/shortener-client/internal/client/client"
	"github.com/dmitrijs2005/shortener-client/internal/client/models"
)

// ---- fake client ----

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	// results
	LoginRet    models.TokenPair
	LoginErr    error
	RegisterErr error
	LogoutErr   error

	ListRet   []models.ShortURL
	ListErr   error
	CreateRet models.ShortURL
	CreateErr error
	UpdateErr error
	DeleteErr error

	ResolveRet string
	ResolveErr error

	// tokens written on a successful Login, as the real client does
	Tokens client.TokenStore

	// recorded arguments
	LastEmail    string
	LastPassword string
	LastRefresh  string
	LastURL      string
	LastAlias    string
	LastID       int64

	LogoutCalls int
	CreateCalls int
	UpdateCalls int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Execute(ctx context.Context, endpoint string, opts client.RequestOptions, out any) error {
	return nil
}

func (f *fakeClient) RefreshAccessToken(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return models.TokenPair{}, client.ErrRefreshFailed
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	f.LastEmail, f.LastPassword = email, password
	if f.LoginErr == nil && f.LoginRet.Complete() && f.Tokens != nil {
		if err := f.Tokens.SetPair(ctx, f.LoginRet); err != nil {
			return models.TokenPair{}, err
		}
	}
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, email, password string) error {
	f.LastEmail, f.LastPassword = email, password
	return f.RegisterErr
}

func (f *fakeClient) Logout(ctx context.Context, refreshToken string) error {
	f.LogoutCalls++
	f.LastRefresh = refreshToken
	return f.LogoutErr
}

func (f *fakeClient) ListURLs(ctx context.Context) ([]models.ShortURL, error) {
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateURL(ctx context.Context, url, alias string) (models.ShortURL, error) {
	f.CreateCalls++
	f.LastURL, f.LastAlias = url, alias
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateURL(ctx context.Context, id int64, newURL string) error {
	f.UpdateCalls++
	f.LastID, f.LastURL = id, newURL
	return f.UpdateErr
}

func (f *fakeClient) DeleteURL(ctx context.Context, id int64) error {
	f.LastID = id
	return f.DeleteErr
}

func (f *fakeClient) ResolveAlias(ctx context.Context, alias string) (string, error) {
	f.LastAlias = alias
	return f.ResolveRet, f.ResolveErr
}
