package requests

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client is the default blocking Sender. It issues HTTP GET requests with the
// parameter set encoded as the query string and returns the response body as
// text regardless of HTTP status; interpreting the body is the binding
// pipeline's job. Safe for concurrent use after construction (fields are not
// mutated post-NewClient).
type Client struct {
	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client
	// UserAgent is the User-Agent header value sent on every request.
	UserAgent string
}

// NewClient constructs a blocking sender with the given per-request timeout.
// A zero timeout leaves the underlying client without a deadline; callers
// then bound calls through the context. An empty userAgent selects the
// package default.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  userAgent,
	}
}

// Send performs the method call and returns the raw response body. Failures
// are reported as *Error tagged with the request phase; the HTTP status code
// is never interpreted here.
func (c *Client) Send(ctx context.Context, url string, params []Param) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &Error{Domain: DomainNewRequest, URL: url, Err: err}
	}
	req.URL.RawQuery = EncodeParams(params)
	req.Header.Set("User-Agent", c.userAgent())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &Error{Domain: DomainDo, URL: url, Err: err}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			zap.L().Error("failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Domain: DomainRead, URL: url, Err: err}
	}

	// The bare method URL is logged, never the query: tokens travel in params.
	zap.L().Debug("web api call",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	return string(body), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *Client) userAgent() string {
	if c.UserAgent == "" {
		return defaultUserAgent
	}
	return c.UserAgent
}
