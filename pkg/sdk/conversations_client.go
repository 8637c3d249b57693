package sdk

import (
	"context"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/config"
	"github.com/shamank/slack-sdk-go/pkg/conversations"
	"github.com/shamank/slack-sdk-go/pkg/model"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// Conversations defines the high-level client API for the conversations.*
// method family. Implementations carry the SDK token and timeouts so call
// sites pass only the method arguments.
type Conversations interface {
	// List returns one page of the conversations the token can see.
	List(req *conversations.ListRequest) (*conversations.ListResponse, error)
	// ListAsync is List without blocking; the channel delivers one result.
	ListAsync(req *conversations.ListRequest) <-chan conversations.ListResult

	// ListAll follows cursors until the listing is exhausted and returns
	// every page's conversations in one slice. The request's Cursor field is
	// used as the starting point and is not modified.
	ListAll(req *conversations.ListRequest) ([]model.Conversation, error)

	// History returns one page of a conversation's messages.
	History(req *conversations.HistoryRequest) (*conversations.HistoryResponse, error)
	// HistoryAsync is History without blocking.
	HistoryAsync(req *conversations.HistoryRequest) <-chan conversations.HistoryResult

	// Info describes a single conversation.
	Info(req *conversations.InfoRequest) (*conversations.InfoResponse, error)
	// InfoAsync is Info without blocking.
	InfoAsync(req *conversations.InfoRequest) <-chan conversations.InfoResult

	// Members returns one page of a conversation's member IDs.
	Members(req *conversations.MembersRequest) (*conversations.MembersResponse, error)
	// MembersAsync is Members without blocking.
	MembersAsync(req *conversations.MembersRequest) <-chan conversations.MembersResult

	// Create makes a new public or private channel.
	Create(req *conversations.CreateRequest) (*conversations.CreateResponse, error)
	// CreateAsync is Create without blocking.
	CreateAsync(req *conversations.CreateRequest) <-chan conversations.CreateResult

	// Archive freezes a conversation.
	Archive(channel string) (*conversations.ArchiveResponse, error)
	// ArchiveAsync is Archive without blocking.
	ArchiveAsync(channel string) <-chan conversations.ArchiveResult
}

// ConversationsClient is the concrete Conversations implementation bound to
// a Core's configuration and transports.
type ConversationsClient struct {
	config *config.Config
	sender requests.Sender
	async  requests.AsyncSender
}

// Conversations returns the conversations.* client bound to the configured
// token.
func (c *Core) Conversations() Conversations {
	return &ConversationsClient{
		config: c.Config,
		sender: c.sender,
		async:  c.async,
	}
}

// List returns one page of the conversations the token can see.
func (cc *ConversationsClient) List(req *conversations.ListRequest) (*conversations.ListResponse, error) {
	ctx, cancel := withTimeout(context.Background(), cc.config.Timeouts.Request)
	defer cancel()

	return conversations.List(ctx, cc.sender, cc.config.Token, req)
}

// ListAsync is List without blocking. The per-call deadline comes from the
// shared HTTP client's timeout rather than a context, which would have to be
// cancelled while the call is still in flight.
func (cc *ConversationsClient) ListAsync(req *conversations.ListRequest) <-chan conversations.ListResult {
	return conversations.ListAsync(context.Background(), cc.async, cc.config.Token, req)
}

// ListAll follows cursors until the listing is exhausted. Each page is one
// List call; the first error aborts the walk.
func (cc *ConversationsClient) ListAll(req *conversations.ListRequest) ([]model.Conversation, error) {
	page := conversations.ListRequest{}
	if req != nil {
		page = *req
	}

	var all []model.Conversation
	for {
		resp, err := cc.List(&page)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Channels...)
		if !resp.ResponseMetadata.HasMore() {
			return all, nil
		}
		page.Cursor = api.String(resp.ResponseMetadata.NextCursor)
	}
}

// History returns one page of a conversation's messages.
func (cc *ConversationsClient) History(req *conversations.HistoryRequest) (*conversations.HistoryResponse, error) {
	ctx, cancel := withTimeout(context.Background(), cc.config.Timeouts.Request)
	defer cancel()

	return conversations.History(ctx, cc.sender, cc.config.Token, req)
}

// HistoryAsync is History without blocking.
func (cc *ConversationsClient) HistoryAsync(req *conversations.HistoryRequest) <-chan conversations.HistoryResult {
	return conversations.HistoryAsync(context.Background(), cc.async, cc.config.Token, req)
}

// Info describes a single conversation.
func (cc *ConversationsClient) Info(req *conversations.InfoRequest) (*conversations.InfoResponse, error) {
	ctx, cancel := withTimeout(context.Background(), cc.config.Timeouts.Request)
	defer cancel()

	return conversations.Info(ctx, cc.sender, cc.config.Token, req)
}

// InfoAsync is Info without blocking.
func (cc *ConversationsClient) InfoAsync(req *conversations.InfoRequest) <-chan conversations.InfoResult {
	return conversations.InfoAsync(context.Background(), cc.async, cc.config.Token, req)
}

// Members returns one page of a conversation's member IDs.
func (cc *ConversationsClient) Members(req *conversations.MembersRequest) (*conversations.MembersResponse, error) {
	ctx, cancel := withTimeout(context.Background(), cc.config.Timeouts.Request)
	defer cancel()

	return conversations.Members(ctx, cc.sender, cc.config.Token, req)
}

// MembersAsync is Members without blocking.
func (cc *ConversationsClient) MembersAsync(req *conversations.MembersRequest) <-chan conversations.MembersResult {
	return conversations.MembersAsync(context.Background(), cc.async, cc.config.Token, req)
}

// Create makes a new public or private channel.
func (cc *ConversationsClient) Create(req *conversations.CreateRequest) (*conversations.CreateResponse, error) {
	ctx, cancel := withTimeout(context.Background(), cc.config.Timeouts.Request)
	defer cancel()

	return conversations.Create(ctx, cc.sender, cc.config.Token, req)
}

// CreateAsync is Create without blocking.
func (cc *ConversationsClient) CreateAsync(req *conversations.CreateRequest) <-chan conversations.CreateResult {
	return conversations.CreateAsync(context.Background(), cc.async, cc.config.Token, req)
}

// Archive freezes a conversation.
func (cc *ConversationsClient) Archive(channel string) (*conversations.ArchiveResponse, error) {
	ctx, cancel := withTimeout(context.Background(), cc.config.Timeouts.Request)
	defer cancel()

	return conversations.Archive(ctx, cc.sender, cc.config.Token, channel)
}

// ArchiveAsync is Archive without blocking.
func (cc *ConversationsClient) ArchiveAsync(channel string) <-chan conversations.ArchiveResult {
	return conversations.ArchiveAsync(context.Background(), cc.async, cc.config.Token, channel)
}
