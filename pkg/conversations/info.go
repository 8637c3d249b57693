package conversations

import (
	"context"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/model"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// InfoRequest carries the arguments of conversations.info. Channel is
// required.
type InfoRequest struct {
	// Channel is the conversation to describe.
	Channel string
	// IncludeLocale asks for the conversation locale in the response.
	IncludeLocale *bool
	// IncludeNumMembers asks for the member count in the response.
	IncludeNumMembers *bool
}

func infoParams(token string, req *InfoRequest) []requests.Param {
	params := []requests.Param{
		{Name: "token", Value: token},
		{Name: "channel", Value: req.Channel},
	}
	if req.IncludeLocale != nil {
		v := "0"
		if *req.IncludeLocale {
			v = "1"
		}
		params = append(params, requests.Param{Name: "include_locale", Value: v})
	}
	if req.IncludeNumMembers != nil {
		v := "0"
		if *req.IncludeNumMembers {
			v = "1"
		}
		params = append(params, requests.Param{Name: "include_num_members", Value: v})
	}
	return params
}

// InfoResponse is the conversations.info payload: the full description of a
// single conversation.
type InfoResponse struct {
	api.Envelope
	Channel model.Conversation `json:"channel,omitempty"`
}

// Info describes a single conversation.
//
// Wraps the conversations.info Web API method:
// https://api.slack.com/methods/conversations.info
func Info(ctx context.Context, client requests.Sender, token string, req *InfoRequest) (*InfoResponse, error) {
	body, err := client.Send(ctx, api.MethodURL("conversations.info"), infoParams(token, req))
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	resp := &InfoResponse{}
	if err := api.ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// InfoResult delivers the outcome of InfoAsync. Exactly one of Response and
// Err is set.
type InfoResult struct {
	Response *InfoResponse
	Err      error
}

// InfoAsync is Info over an AsyncSender. The returned channel delivers a
// single InfoResult and is then closed; failures classify exactly as they
// do for Info.
func InfoAsync(ctx context.Context, client requests.AsyncSender, token string, req *InfoRequest) <-chan InfoResult {
	out := make(chan InfoResult, 1)
	go func() {
		defer close(out)
		res := <-client.SendAsync(ctx, api.MethodURL("conversations.info"), infoParams(token, req))
		if res.Err != nil {
			out <- InfoResult{Err: &api.TransportError{Err: res.Err}}
			return
		}
		resp := &InfoResponse{}
		if err := api.ParseResponse(res.Body, resp); err != nil {
			out <- InfoResult{Err: err}
			return
		}
		out <- InfoResult{Response: resp}
	}()
	return out
}
