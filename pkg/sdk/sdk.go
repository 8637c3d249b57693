// Package sdk exposes the high-level Slack SDK entry points. It wires
// together the validated configuration, the HTTP transport pair (blocking
// and non-blocking), and the per-family method clients.
package sdk

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/config"
	"github.com/shamank/slack-sdk-go/pkg/requests"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SlackSDK is the public interface for obtaining method-family clients and
// releasing resources. Note: the endpoint packages (conversations, auth) can
// also be used directly with a requests.Sender when finer control over
// contexts is needed.
type SlackSDK interface {
	// Conversations returns the client for the conversations.* method family,
	// bound to the configured token.
	Conversations() Conversations

	// Auth returns the client for the auth.* method family, bound to the
	// configured token.
	Auth() Auth

	// Ping checks that the Web API is reachable using api.test, the one
	// method that needs no authentication.
	Ping() (*api.TestResponse, error)

	// Close releases resources associated with the SDK instance.
	Close()
}

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	logger, err := buildLogger(zap.InfoLevel)
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

func buildLogger(level zapcore.Level) (*zap.Logger, error) {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return c.Build()
}

// Core is the concrete SDK implementation. It embeds the runtime
// configuration and holds the shared transport pair.
type Core struct {
	*config.Config
	httpClient *http.Client
	sender     requests.Sender
	async      requests.AsyncSender
}

// NewSDK initializes the SDK Core with validated configuration and a shared
// HTTP client. It applies default timeout values and aborts the process if
// the configuration is invalid.
func NewSDK(cfg *config.Config) SlackSDK {
	err := cfg.Validate()
	if err != nil {
		zap.L().Fatal("Invalid config", zap.Error(err))
	}

	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	if cfg.Debug {
		if logger, err := buildLogger(zap.DebugLevel); err == nil {
			zap.ReplaceGlobals(logger)
		}
	}

	httpClient := newHTTPClient(cfg.Timeouts)

	return &Core{
		Config:     cfg,
		httpClient: httpClient,
		sender:     &requests.Client{HTTPClient: httpClient, UserAgent: cfg.UserAgent},
		async:      &requests.AsyncClient{HTTPClient: httpClient, UserAgent: cfg.UserAgent},
	}
}

// newHTTPClient builds the HTTP client both senders share: Connect bounds
// the TCP dial and TLS handshake, Request bounds one whole call including
// the body read.
func newHTTPClient(t config.Timeouts) *http.Client {
	return &http.Client{
		Timeout: t.Request,
		Transport: &http.Transport{
			DialContext:         (&net.Dialer{Timeout: t.Connect}).DialContext,
			TLSHandshakeTimeout: t.Connect,
		},
	}
}

// Ping checks connectivity with the Web API. It returns the api.test
// response, which echoes the (empty) argument set back.
func (c *Core) Ping() (*api.TestResponse, error) {
	ctx, cancel := withTimeout(context.Background(), c.Config.Timeouts.Request)
	defer cancel()

	return api.Test(ctx, c.sender, nil)
}

// Close releases idle connections held by the shared HTTP client. The SDK
// remains usable afterwards; new calls will open fresh connections.
func (c *Core) Close() {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
}

// withTimeout returns a derived context with the given timeout. A cancelable
// context is returned when d <= 0.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
