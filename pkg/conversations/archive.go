package conversations

import (
	"context"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

func archiveParams(token, channel string) []requests.Param {
	return []requests.Param{
		{Name: "token", Value: token},
		{Name: "channel", Value: channel},
	}
}

// ArchiveResponse is the conversations.archive payload; the method returns
// nothing beyond the envelope.
type ArchiveResponse struct {
	api.Envelope
}

// Archive freezes a conversation: it stays readable but accepts no new
// messages or members.
//
// Wraps the conversations.archive Web API method:
// https://api.slack.com/methods/conversations.archive
func Archive(ctx context.Context, client requests.Sender, token, channel string) (*ArchiveResponse, error) {
	body, err := client.Send(ctx, api.MethodURL("conversations.archive"), archiveParams(token, channel))
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	resp := &ArchiveResponse{}
	if err := api.ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ArchiveResult delivers the outcome of ArchiveAsync. Exactly one of
// Response and Err is set.
type ArchiveResult struct {
	Response *ArchiveResponse
	Err      error
}

// ArchiveAsync is Archive over an AsyncSender. The returned channel delivers
// a single ArchiveResult and is then closed; failures classify exactly as
// they do for Archive.
func ArchiveAsync(ctx context.Context, client requests.AsyncSender, token, channel string) <-chan ArchiveResult {
	out := make(chan ArchiveResult, 1)
	go func() {
		defer close(out)
		res := <-client.SendAsync(ctx, api.MethodURL("conversations.archive"), archiveParams(token, channel))
		if res.Err != nil {
			out <- ArchiveResult{Err: &api.TransportError{Err: res.Err}}
			return
		}
		resp := &ArchiveResponse{}
		if err := api.ParseResponse(res.Body, resp); err != nil {
			out <- ArchiveResult{Err: err}
			return
		}
		out <- ArchiveResult{Response: resp}
	}()
	return out
}
