package conversations

import (
	"context"
	"strconv"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/model"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// MembersRequest carries the arguments of conversations.members. Channel is
// required.
type MembersRequest struct {
	// Channel is the conversation whose membership is listed.
	Channel string
	// Cursor resumes a paginated listing.
	Cursor *string
	// Limit caps how many member IDs one page may carry.
	Limit *uint32
}

func membersParams(token string, req *MembersRequest) []requests.Param {
	params := []requests.Param{
		{Name: "token", Value: token},
		{Name: "channel", Value: req.Channel},
	}
	if req.Cursor != nil {
		params = append(params, requests.Param{Name: "cursor", Value: *req.Cursor})
	}
	if req.Limit != nil {
		params = append(params, requests.Param{Name: "limit", Value: strconv.FormatUint(uint64(*req.Limit), 10)})
	}
	return params
}

// MembersResponse is the conversations.members payload: one page of member
// user IDs and the cursor for the next one.
type MembersResponse struct {
	api.Envelope
	Members          []string               `json:"members,omitempty"`
	ResponseMetadata model.ResponseMetadata `json:"response_metadata,omitempty"`
}

// Members lists the user IDs that belong to a conversation, one page at a
// time.
//
// Wraps the conversations.members Web API method:
// https://api.slack.com/methods/conversations.members
func Members(ctx context.Context, client requests.Sender, token string, req *MembersRequest) (*MembersResponse, error) {
	body, err := client.Send(ctx, api.MethodURL("conversations.members"), membersParams(token, req))
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	resp := &MembersResponse{}
	if err := api.ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// MembersResult delivers the outcome of MembersAsync. Exactly one of
// Response and Err is set.
type MembersResult struct {
	Response *MembersResponse
	Err      error
}

// MembersAsync is Members over an AsyncSender. The returned channel delivers
// a single MembersResult and is then closed; failures classify exactly as
// they do for Members.
func MembersAsync(ctx context.Context, client requests.AsyncSender, token string, req *MembersRequest) <-chan MembersResult {
	out := make(chan MembersResult, 1)
	go func() {
		defer close(out)
		res := <-client.SendAsync(ctx, api.MethodURL("conversations.members"), membersParams(token, req))
		if res.Err != nil {
			out <- MembersResult{Err: &api.TransportError{Err: res.Err}}
			return
		}
		resp := &MembersResponse{}
		if err := api.ParseResponse(res.Body, resp); err != nil {
			out <- MembersResult{Err: err}
			return
		}
		out <- MembersResult{Response: resp}
	}()
	return out
}
