package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shortener-client/internal/client/client"
	"github.com/dmitrijs2005/shortener-client/internal/client/tokenstore"
)

type staticTransport struct {
	status int
	body   string
}

func (s staticTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode:    s.status,
		Header:        http.Header{},
		Body:          io.NopCloser(bytes.NewBufferString(s.body)),
		ContentLength: int64(len(s.body)),
		Request:       r,
	}, nil
}

// apiError produces a real *client.APIError by running one request against a
// canned response.
func apiError(t *testing.T, status int, body string) error {
	t.Helper()
	rc := resty.New().SetTransport(staticTransport{status: status, body: body})
	c := client.NewHTTPClientWithTransport(rc, "http://backend.test", tokenstore.NewMemoryStore(), nil, nil)

	err := c.Execute(context.Background(), "/", client.RequestOptions{}, nil)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	return err
}
