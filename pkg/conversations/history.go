package conversations

import (
	"context"
	"strconv"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/model"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// HistoryRequest carries the arguments of conversations.history. Channel is
// required; the rest narrow or page the listing and are omitted when unset.
type HistoryRequest struct {
	// Channel is the conversation to fetch history for.
	Channel string
	// Cursor resumes a paginated read.
	Cursor *string
	// Inclusive includes messages with ts exactly equal to Latest or Oldest.
	Inclusive *bool
	// Latest is the end of the time range, a raw ts string.
	Latest *string
	// Limit caps how many messages one page may carry.
	Limit *uint32
	// Oldest is the start of the time range, a raw ts string.
	Oldest *string
}

func historyParams(token string, req *HistoryRequest) []requests.Param {
	params := []requests.Param{
		{Name: "token", Value: token},
		{Name: "channel", Value: req.Channel},
	}
	if req.Cursor != nil {
		params = append(params, requests.Param{Name: "cursor", Value: *req.Cursor})
	}
	if req.Inclusive != nil {
		v := "0"
		if *req.Inclusive {
			v = "1"
		}
		params = append(params, requests.Param{Name: "inclusive", Value: v})
	}
	if req.Latest != nil {
		params = append(params, requests.Param{Name: "latest", Value: *req.Latest})
	}
	if req.Limit != nil {
		params = append(params, requests.Param{Name: "limit", Value: strconv.FormatUint(uint64(*req.Limit), 10)})
	}
	if req.Oldest != nil {
		params = append(params, requests.Param{Name: "oldest", Value: *req.Oldest})
	}
	return params
}

// HistoryResponse is the conversations.history payload: one page of messages,
// newest first, and the cursor for the next one.
type HistoryResponse struct {
	api.Envelope
	Messages         []model.Message        `json:"messages,omitempty"`
	HasMore          bool                   `json:"has_more,omitempty"`
	PinCount         int                    `json:"pin_count,omitempty"`
	Latest           string                 `json:"latest,omitempty"`
	ResponseMetadata model.ResponseMetadata `json:"response_metadata,omitempty"`
}

// History fetches a page of a conversation's message history.
//
// Wraps the conversations.history Web API method:
// https://api.slack.com/methods/conversations.history
func History(ctx context.Context, client requests.Sender, token string, req *HistoryRequest) (*HistoryResponse, error) {
	body, err := client.Send(ctx, api.MethodURL("conversations.history"), historyParams(token, req))
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	resp := &HistoryResponse{}
	if err := api.ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// HistoryResult delivers the outcome of HistoryAsync. Exactly one of
// Response and Err is set.
type HistoryResult struct {
	Response *HistoryResponse
	Err      error
}

// HistoryAsync is History over an AsyncSender. The returned channel delivers
// a single HistoryResult and is then closed; failures classify exactly as
// they do for History.
func HistoryAsync(ctx context.Context, client requests.AsyncSender, token string, req *HistoryRequest) <-chan HistoryResult {
	out := make(chan HistoryResult, 1)
	go func() {
		defer close(out)
		res := <-client.SendAsync(ctx, api.MethodURL("conversations.history"), historyParams(token, req))
		if res.Err != nil {
			out <- HistoryResult{Err: &api.TransportError{Err: res.Err}}
			return
		}
		resp := &HistoryResponse{}
		if err := api.ParseResponse(res.Body, resp); err != nil {
			out <- HistoryResult{Err: err}
			return
		}
		out <- HistoryResult{Response: resp}
	}()
	return out
}
