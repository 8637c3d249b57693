package sdk

import (
	"context"

	"github.com/shamank/slack-sdk-go/pkg/auth"
	"github.com/shamank/slack-sdk-go/pkg/config"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// Auth represents a high-level interface for working with the configured
// token itself: asking who it is and revoking it.
type Auth interface {
	// Test verifies the token and reports the workspace and user behind it.
	Test() (*auth.TestResponse, error)

	// TestAsync is Test without blocking; the channel delivers one result.
	TestAsync() <-chan auth.TestResult

	// Revoke invalidates the token. A nil request revokes for real; pass
	// a request with Test set for a dry run.
	Revoke(req *auth.RevokeRequest) (*auth.RevokeResponse, error)

	// RevokeAsync is Revoke without blocking.
	RevokeAsync(req *auth.RevokeRequest) <-chan auth.RevokeResult
}

// AuthClient is the concrete Auth implementation bound to a Core's
// configuration and transports.
type AuthClient struct {
	config *config.Config
	sender requests.Sender
	async  requests.AsyncSender
}

// Auth returns the auth.* client bound to the configured token.
func (c *Core) Auth() Auth {
	return &AuthClient{
		config: c.Config,
		sender: c.sender,
		async:  c.async,
	}
}

// Test verifies the token and reports the identity behind it.
func (ac *AuthClient) Test() (*auth.TestResponse, error) {
	ctx, cancel := withTimeout(context.Background(), ac.config.Timeouts.Request)
	defer cancel()

	return auth.Test(ctx, ac.sender, ac.config.Token)
}

// TestAsync is Test without blocking.
func (ac *AuthClient) TestAsync() <-chan auth.TestResult {
	return auth.TestAsync(context.Background(), ac.async, ac.config.Token)
}

// Revoke invalidates the configured token.
func (ac *AuthClient) Revoke(req *auth.RevokeRequest) (*auth.RevokeResponse, error) {
	ctx, cancel := withTimeout(context.Background(), ac.config.Timeouts.Request)
	defer cancel()

	return auth.Revoke(ctx, ac.sender, ac.config.Token, req)
}

// RevokeAsync is Revoke without blocking.
func (ac *AuthClient) RevokeAsync(req *auth.RevokeRequest) <-chan auth.RevokeResult {
	return auth.RevokeAsync(context.Background(), ac.async, ac.config.Token, req)
}
