// Package conversations binds the conversations.* family of Web API methods:
// listing, reading and managing the channel-like objects of a workspace.
package conversations

import (
	"context"
	"strconv"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/model"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// ListRequest carries the optional arguments of conversations.list. Unset
// fields are omitted from the request entirely, leaving the choice to the
// API's own defaults.
type ListRequest struct {
	// ExcludeArchived skips archived channels when set to true.
	ExcludeArchived *bool
	// Cursor resumes a paginated listing; pass the previous response's
	// NextCursor verbatim.
	Cursor *string
	// Limit caps how many conversations one page may carry.
	Limit *uint32
	// Types selects the conversation variants to return, comma separated:
	// public_channel, private_channel, mpim, im.
	Types *string
}

func listParams(token string, req *ListRequest) []requests.Param {
	params := []requests.Param{{Name: "token", Value: token}}
	if req == nil {
		return params
	}
	if req.ExcludeArchived != nil {
		v := "0"
		if *req.ExcludeArchived {
			v = "1"
		}
		params = append(params, requests.Param{Name: "exclude_archived", Value: v})
	}
	if req.Cursor != nil {
		params = append(params, requests.Param{Name: "cursor", Value: *req.Cursor})
	}
	if req.Limit != nil {
		params = append(params, requests.Param{Name: "limit", Value: strconv.FormatUint(uint64(*req.Limit), 10)})
	}
	if req.Types != nil {
		params = append(params, requests.Param{Name: "types", Value: *req.Types})
	}
	return params
}

// ListResponse is the conversations.list payload: one page of conversations
// and the cursor for the next one.
type ListResponse struct {
	api.Envelope
	Channels         []model.Conversation   `json:"channels,omitempty"`
	ResponseMetadata model.ResponseMetadata `json:"response_metadata,omitempty"`
}

// List returns the conversations the calling token has access to, one page
// at a time. A nil request asks for the API's default page of public
// channels.
//
// Wraps the conversations.list Web API method:
// https://api.slack.com/methods/conversations.list
func List(ctx context.Context, client requests.Sender, token string, req *ListRequest) (*ListResponse, error) {
	body, err := client.Send(ctx, api.MethodURL("conversations.list"), listParams(token, req))
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	resp := &ListResponse{}
	if err := api.ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListResult delivers the outcome of ListAsync. Exactly one of Response and
// Err is set.
type ListResult struct {
	Response *ListResponse
	Err      error
}

// ListAsync is List over an AsyncSender: it sends the same parameters and
// classifies failures identically, delivering the outcome on the returned
// channel. The channel carries a single ListResult and is then closed.
func ListAsync(ctx context.Context, client requests.AsyncSender, token string, req *ListRequest) <-chan ListResult {
	out := make(chan ListResult, 1)
	go func() {
		defer close(out)
		res := <-client.SendAsync(ctx, api.MethodURL("conversations.list"), listParams(token, req))
		if res.Err != nil {
			out <- ListResult{Err: &api.TransportError{Err: res.Err}}
			return
		}
		resp := &ListResponse{}
		if err := api.ParseResponse(res.Body, resp); err != nil {
			out <- ListResult{Err: err}
			return
		}
		out <- ListResult{Response: resp}
	}()
	return out
}
