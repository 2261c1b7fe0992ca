package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/shortener-client/internal/client/models"
	"github.com/dmitrijs2005/shortener-client/internal/common"
)

const (
	urlEndpoint     = "/url"
	urlListEndpoint = "/url/urls"
)

// ListURLs returns the caller's links in server order. Nothing is cached.
func (c *HTTPClient) ListURLs(ctx context.Context) ([]models.ShortURL, error) {
	headers, err := c.bearer(ctx)
	if err != nil {
		return nil, fmt.Errorf("list urls: %w", err)
	}

	var urls []models.ShortURL
	if err := c.Execute(ctx, urlListEndpoint, RequestOptions{Headers: headers}, &urls); err != nil {
		return nil, fmt.Errorf("list urls: %w", err)
	}
	return urls, nil
}

func (c *HTTPClient) CreateURL(ctx context.Context, destination, alias string) (models.ShortURL, error) {
	headers, err := c.bearer(ctx)
	if err != nil {
		return models.ShortURL{}, fmt.Errorf("create url: %w", err)
	}

	var created models.ShortURL
	err = c.Execute(ctx, urlEndpoint, RequestOptions{
		Method:  http.MethodPost,
		Headers: headers,
		Body:    models.CreateURLRequest{URL: destination, Alias: alias},
	}, &created)
	if err != nil {
		return models.ShortURL{}, fmt.Errorf("create url: %w", err)
	}
	return created, nil
}

func (c *HTTPClient) UpdateURL(ctx context.Context, id int64, newURL string) error {
	headers, err := c.bearer(ctx)
	if err != nil {
		return fmt.Errorf("update url: %w", err)
	}

	err = c.Execute(ctx, urlEndpoint, RequestOptions{
		Method:  http.MethodPatch,
		Headers: headers,
		Body:    models.UpdateURLRequest{URLID: id, NewURL: newURL},
	}, nil)
	if err != nil {
		return fmt.Errorf("update url: %w", err)
	}
	return nil
}

func (c *HTTPClient) DeleteURL(ctx context.Context, id int64) error {
	headers, err := c.bearer(ctx)
	if err != nil {
		return fmt.Errorf("delete url: %w", err)
	}

	err = c.Execute(ctx, urlEndpoint, RequestOptions{
		Method:  http.MethodDelete,
		Headers: headers,
		Body:    models.DeleteURLRequest{URLID: id},
	}, nil)
	if err != nil {
		return fmt.Errorf("delete url: %w", err)
	}
	return nil
}

// ResolveAlias returns the destination the backend reports for alias in its
// Location header. An empty result with a nil error means the session was
// terminated.
func (c *HTTPClient) ResolveAlias(ctx context.Context, alias string) (string, error) {
	headers, err := c.bearer(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve alias: %w", err)
	}

	resp, ended, err := c.do(ctx, urlEndpoint+"/"+url.PathEscape(alias), RequestOptions{Headers: headers})
	if err != nil {
		return "", fmt.Errorf("resolve alias: %w", err)
	}
	if ended {
		return "", nil
	}

	location := resp.Header().Get(common.LocationHeaderName)
	if location == "" {
		return "", fmt.Errorf("resolve alias %q: %w", alias, ErrNoLocation)
	}
	return location, nil
}
