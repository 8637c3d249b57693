package requests

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// AsyncClient is the default non-blocking AsyncSender. Unlike Client it does
// not go through the Send abstraction: it serializes the parameter set into
// the URL's query itself and drives the raw *http.Client from a goroutine,
// one goroutine per call. Safe for concurrent use after construction.
type AsyncClient struct {
	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client
	// UserAgent is the User-Agent header value sent on every request.
	UserAgent string
}

// NewAsyncClient constructs a non-blocking sender with the given per-request
// timeout. Semantics of the arguments match NewClient.
func NewAsyncClient(timeout time.Duration, userAgent string) *AsyncClient {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &AsyncClient{
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  userAgent,
	}
}

// SendAsync dispatches the method call on its own goroutine and returns a
// channel that resolves exactly once with the body-or-error outcome, then
// closes. The channel is buffered, so an abandoned result never blocks the
// goroutine. The request is bounded by ctx exactly as in the blocking path.
func (c *AsyncClient) SendAsync(ctx context.Context, rawURL string, params []Param) <-chan AsyncResult {
	ch := make(chan AsyncResult, 1)
	go func() {
		defer close(ch)
		ch <- c.send(ctx, rawURL, params)
	}()
	return ch
}

func (c *AsyncClient) send(ctx context.Context, rawURL string, params []Param) AsyncResult {
	u, err := url.Parse(rawURL)
	if err != nil {
		return AsyncResult{Err: &Error{Domain: DomainParseURL, URL: rawURL, Err: err}}
	}
	u.RawQuery = EncodeParams(params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return AsyncResult{Err: &Error{Domain: DomainNewRequest, URL: rawURL, Err: err}}
	}
	req.Header.Set("User-Agent", c.userAgent())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return AsyncResult{Err: &Error{Domain: DomainDo, URL: rawURL, Err: err}}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			zap.L().Error("failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AsyncResult{Err: &Error{Domain: DomainRead, URL: rawURL, Err: err}}
	}

	zap.L().Debug("web api call (async)",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	return AsyncResult{Body: string(body)}
}

func (c *AsyncClient) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *AsyncClient) userAgent() string {
	if c.UserAgent == "" {
		return defaultUserAgent
	}
	return c.UserAgent
}
