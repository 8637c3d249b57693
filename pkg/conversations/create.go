package conversations

import (
	"context"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/model"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// CreateRequest carries the arguments of conversations.create. Name is
// required.
type CreateRequest struct {
	// Name of the channel to create, lowercase, without a leading '#'.
	Name string
	// IsPrivate creates a private channel instead of a public one.
	IsPrivate *bool
}

func createParams(token string, req *CreateRequest) []requests.Param {
	params := []requests.Param{
		{Name: "token", Value: token},
		{Name: "name", Value: req.Name},
	}
	if req.IsPrivate != nil {
		v := "0"
		if *req.IsPrivate {
			v = "1"
		}
		params = append(params, requests.Param{Name: "is_private", Value: v})
	}
	return params
}

// CreateResponse is the conversations.create payload: the conversation that
// was just created.
type CreateResponse struct {
	api.Envelope
	Channel model.Conversation `json:"channel,omitempty"`
}

// Create makes a new public or private channel.
//
// Wraps the conversations.create Web API method:
// https://api.slack.com/methods/conversations.create
func Create(ctx context.Context, client requests.Sender, token string, req *CreateRequest) (*CreateResponse, error) {
	body, err := client.Send(ctx, api.MethodURL("conversations.create"), createParams(token, req))
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	resp := &CreateResponse{}
	if err := api.ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateResult delivers the outcome of CreateAsync. Exactly one of Response
// and Err is set.
type CreateResult struct {
	Response *CreateResponse
	Err      error
}

// CreateAsync is Create over an AsyncSender. The returned channel delivers a
// single CreateResult and is then closed; failures classify exactly as they
// do for Create.
func CreateAsync(ctx context.Context, client requests.AsyncSender, token string, req *CreateRequest) <-chan CreateResult {
	out := make(chan CreateResult, 1)
	go func() {
		defer close(out)
		res := <-client.SendAsync(ctx, api.MethodURL("conversations.create"), createParams(token, req))
		if res.Err != nil {
			out <- CreateResult{Err: &api.TransportError{Err: res.Err}}
			return
		}
		resp := &CreateResponse{}
		if err := api.ParseResponse(res.Body, resp); err != nil {
			out <- CreateResult{Err: err}
			return
		}
		out <- CreateResult{Response: resp}
	}()
	return out
}
