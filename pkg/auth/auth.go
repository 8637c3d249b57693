// Package auth binds the auth.* Web API methods: checking what a token
// identifies as and revoking it.
package auth

import (
	"context"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// TestResponse is the auth.test payload: the workspace and user the token
// authenticates as.
type TestResponse struct {
	api.Envelope
	URL          string `json:"url,omitempty"`
	Team         string `json:"team,omitempty"`
	User         string `json:"user,omitempty"`
	TeamID       string `json:"team_id,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	EnterpriseID string `json:"enterprise_id,omitempty"`
	BotID        string `json:"bot_id,omitempty"`
}

// Test checks a token and reports the identity behind it. The method takes
// no arguments beyond the token itself.
//
// Wraps the auth.test Web API method:
// https://api.slack.com/methods/auth.test
func Test(ctx context.Context, client requests.Sender, token string) (*TestResponse, error) {
	params := []requests.Param{{Name: "token", Value: token}}
	body, err := client.Send(ctx, api.MethodURL("auth.test"), params)
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	resp := &TestResponse{}
	if err := api.ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// TestResult delivers the outcome of TestAsync. Exactly one of Response and
// Err is set.
type TestResult struct {
	Response *TestResponse
	Err      error
}

// TestAsync is Test over an AsyncSender. The returned channel delivers a
// single TestResult and is then closed; failures classify exactly as they
// do for Test.
func TestAsync(ctx context.Context, client requests.AsyncSender, token string) <-chan TestResult {
	out := make(chan TestResult, 1)
	go func() {
		defer close(out)
		params := []requests.Param{{Name: "token", Value: token}}
		res := <-client.SendAsync(ctx, api.MethodURL("auth.test"), params)
		if res.Err != nil {
			out <- TestResult{Err: &api.TransportError{Err: res.Err}}
			return
		}
		resp := &TestResponse{}
		if err := api.ParseResponse(res.Body, resp); err != nil {
			out <- TestResult{Err: err}
			return
		}
		out <- TestResult{Response: resp}
	}()
	return out
}

// RevokeRequest carries the optional arguments of auth.revoke.
type RevokeRequest struct {
	// Test asks the API to go through the motions without revoking anything.
	Test *bool
}

func revokeParams(token string, req *RevokeRequest) []requests.Param {
	params := []requests.Param{{Name: "token", Value: token}}
	if req == nil {
		return params
	}
	if req.Test != nil {
		v := "0"
		if *req.Test {
			v = "1"
		}
		params = append(params, requests.Param{Name: "test", Value: v})
	}
	return params
}

// RevokeResponse is the auth.revoke payload.
type RevokeResponse struct {
	api.Envelope
	Revoked bool `json:"revoked,omitempty"`
}

// Revoke invalidates the token it is called with. With Test set, the API
// reports what would happen without actually revoking.
//
// Wraps the auth.revoke Web API method:
// https://api.slack.com/methods/auth.revoke
func Revoke(ctx context.Context, client requests.Sender, token string, req *RevokeRequest) (*RevokeResponse, error) {
	body, err := client.Send(ctx, api.MethodURL("auth.revoke"), revokeParams(token, req))
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	resp := &RevokeResponse{}
	if err := api.ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RevokeResult delivers the outcome of RevokeAsync. Exactly one of Response
// and Err is set.
type RevokeResult struct {
	Response *RevokeResponse
	Err      error
}

// RevokeAsync is Revoke over an AsyncSender. The returned channel delivers a
// single RevokeResult and is then closed; failures classify exactly as they
// do for Revoke.
func RevokeAsync(ctx context.Context, client requests.AsyncSender, token string, req *RevokeRequest) <-chan RevokeResult {
	out := make(chan RevokeResult, 1)
	go func() {
		defer close(out)
		res := <-client.SendAsync(ctx, api.MethodURL("auth.revoke"), revokeParams(token, req))
		if res.Err != nil {
			out <- RevokeResult{Err: &api.TransportError{Err: res.Err}}
			return
		}
		resp := &RevokeResponse{}
		if err := api.ParseResponse(res.Body, resp); err != nil {
			out <- RevokeResult{Err: err}
			return
		}
		out <- RevokeResult{Response: resp}
	}()
	return out
}
