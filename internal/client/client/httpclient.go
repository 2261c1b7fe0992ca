package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/shortener-client/internal/client/models"
	"github.com/dmitrijs2005/shortener-client/internal/common"
	"github.com/dmitrijs2005/shortener-client/internal/logging"
)

const updateTokenEndpoint = "/auth/updateToken"

type HTTPClient struct {
	http      *resty.Client
	tokens    TokenStore
	terminate SessionTerminator
	log       logging.Logger

	refreshGroup singleflight.Group
}

// NewHTTPClient builds a client for the backend at baseURL. terminate may be
// nil, in which case an unrecoverable auth failure only ends the call.
func NewHTTPClient(baseURL string, tokens TokenStore, terminate SessionTerminator, log logging.Logger) *HTTPClient {
	return NewHTTPClientWithTransport(resty.New(), baseURL, tokens, terminate, log)
}

// NewHTTPClientWithTransport is NewHTTPClient over a preconfigured resty
// client (proxies, TLS, test transports).
func NewHTTPClientWithTransport(rc *resty.Client, baseURL string, tokens TokenStore, terminate SessionTerminator, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop()
	}
	rc.SetBaseURL(strings.TrimRight(baseURL, "/"))
	rc.SetLogger(restyLogger{log: log})
	// 3xx responses are surfaced, never followed off the backend host
	rc.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))

	return &HTTPClient{
		http:      rc,
		tokens:    tokens,
		terminate: terminate,
		log:       log,
	}
}

// Execute sends one logical request and decodes a non-empty JSON response
// body into out. It returns nil without touching out when the response has no
// body or when the session was terminated.
func (c *HTTPClient) Execute(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	_, err := c.execute(ctx, endpoint, opts, out)
	return err
}

// execute is Execute that also reports whether the session was terminated.
func (c *HTTPClient) execute(ctx context.Context, endpoint string, opts RequestOptions, out any) (bool, error) {
	resp, ended, err := c.do(ctx, endpoint, opts)
	if err != nil || ended {
		return ended, err
	}

	if !hasBody(resp) || out == nil {
		return false, nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return false, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return false, nil
}

// do runs the request state machine: first attempt, at most one resend after
// a token renewal, then success, *APIError or session termination.
func (c *HTTPClient) do(ctx context.Context, endpoint string, opts RequestOptions) (*resty.Response, bool, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	headers := map[string]string{
		common.ContentTypeHeaderName: common.JSONContentType,
		common.RequestIDHeaderName:   uuid.NewString(),
	}
	// keys are canonical so the retry overwrites a caller's Authorization
	for k, v := range opts.Headers {
		headers[http.CanonicalHeaderKey(k)] = v
	}

	payload, err := encodeBody(opts.Body)
	if err != nil {
		return nil, false, err
	}

	log := c.log.With("method", method, "endpoint", endpoint, "request_id", headers[common.RequestIDHeaderName])

	for attempt := 0; ; attempt++ {
		resp, err := c.send(ctx, method, endpoint, headers, payload)
		if err != nil {
			log.Warn(ctx, "request not sent", "error", err)
			return nil, false, err
		}

		if isSuccess(resp.StatusCode(), method) {
			return resp, false, nil
		}

		if resp.StatusCode() == http.StatusUnauthorized && attempt == 0 {
			accessToken, ok := c.renewAccessToken(ctx, log, headers[common.AuthorizationHeaderName])
			if !ok {
				c.endSession(ctx, log)
				return nil, true, nil
			}
			headers[common.AuthorizationHeaderName] = common.BearerPrefix + accessToken
			continue
		}

		apiErr := newAPIError(resp.StatusCode(), resp.Status(), resp.Body())
		log.Info(ctx, "request failed", "status", apiErr.StatusCode, "attempt", attempt+1)
		return nil, false, apiErr
	}
}

func (c *HTTPClient) send(ctx context.Context, method, endpoint string, headers map[string]string, payload []byte) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx).SetHeaders(headers)
	if payload != nil {
		req.SetBody(payload)
	}
	return req.Execute(method, endpoint)
}

// renewAccessToken returns the access token to retry with. ok is false when
// the session cannot be recovered.
func (c *HTTPClient) renewAccessToken(ctx context.Context, log logging.Logger, sentAuth string) (string, bool) {
	refreshToken, err := c.tokens.Get(ctx, common.RefreshTokenKey)
	if err != nil {
		log.Error(ctx, "refresh token lookup failed", "error", err)
		return "", false
	}
	if refreshToken == "" {
		log.Info(ctx, "access token rejected, no refresh token stored")
		return "", false
	}

	// another caller may have rotated the pair while this request was in flight
	if strings.HasPrefix(sentAuth, common.BearerPrefix) {
		current, err := c.tokens.Get(ctx, common.AccessTokenKey)
		if err == nil && current != "" && common.BearerPrefix+current != sentAuth {
			log.Debug(ctx, "retrying with already renewed access token")
			return current, true
		}
	}

	v, err, shared := c.refreshGroup.Do(refreshToken, func() (any, error) {
		return c.refreshOnce(ctx, refreshToken)
	})
	if err != nil {
		log.Warn(ctx, "token renewal failed", "error", err)
		return "", false
	}

	log.Debug(ctx, "token renewed", "shared", shared)
	return v.(models.TokenPair).AccessToken, true
}

// refreshOnce skips the backend call when a refresh that completed after the
// caller's lookup already rotated the pair.
func (c *HTTPClient) refreshOnce(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	current, err := c.tokens.Get(ctx, common.RefreshTokenKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if current == refreshToken {
		return c.RefreshAccessToken(ctx, refreshToken)
	}
	if current == "" {
		return models.TokenPair{}, fmt.Errorf("%w: session cleared", ErrRefreshFailed)
	}

	access, err := c.tokens.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	return models.TokenPair{AccessToken: access, RefreshToken: current}, nil
}

func (c *HTTPClient) endSession(ctx context.Context, log logging.Logger) {
	log.Warn(ctx, "session terminated")
	if c.terminate != nil {
		c.terminate(ctx)
	}
}

// RefreshAccessToken exchanges refreshToken for a new pair and stores it. It
// never terminates the session; that is left to the caller.
func (c *HTTPClient) RefreshAccessToken(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(common.ContentTypeHeaderName, common.JSONContentType).
		SetHeader(common.RequestIDHeaderName, uuid.NewString()).
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Execute(http.MethodPatch, updateTokenEndpoint)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if !resp.IsSuccess() {
		return models.TokenPair{}, fmt.Errorf("%w: status %d", ErrRefreshFailed, resp.StatusCode())
	}

	var pair models.TokenPair
	if err := json.Unmarshal(resp.Body(), &pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if !pair.Complete() {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrRefreshFailed, ErrInvalidTokenResponse)
	}

	if err := c.tokens.SetPair(ctx, pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	return pair, nil
}

// bearer builds the Authorization header from the stored access token.
func (c *HTTPClient) bearer(ctx context.Context) (map[string]string, error) {
	token, err := c.tokens.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return nil, err
	}
	return map[string]string{common.AuthorizationHeaderName: common.BearerPrefix + token}, nil
}

func isSuccess(status int, method string) bool {
	return (status >= 200 && status < 300) ||
		(status == http.StatusNoContent && method == http.MethodDelete)
}

// hasBody treats an explicit zero Content-Length or an empty body as no value.
func hasBody(resp *resty.Response) bool {
	if resp.RawResponse != nil && resp.RawResponse.ContentLength == 0 {
		return false
	}
	return len(resp.Body()) > 0
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(b), nil
	case []byte:
		return b, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return data, nil
	}
}

// restyLogger routes resty's own diagnostics into the client logger.
type restyLogger struct {
	log logging.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error(context.Background(), fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn(context.Background(), fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(context.Background(), fmt.Sprintf(format, v...))
}
