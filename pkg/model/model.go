// Package model defines the data structures the Web API returns inside
// method payloads: conversations (public and private channels, direct and
// group messages), channel messages, and the pagination metadata that trails
// every list response.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversation describes a channel-like object: a public or private channel,
// a direct message, or a multi-party direct message. Which variant it is can
// be read off the Is* flags; the API sets exactly one of them per object.
type Conversation struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	IsChannel      bool     `json:"is_channel,omitempty"`
	IsGroup        bool     `json:"is_group,omitempty"`
	IsIM           bool     `json:"is_im,omitempty"`
	IsMPIM         bool     `json:"is_mpim,omitempty"`
	IsPrivate      bool     `json:"is_private,omitempty"`
	Created        int64    `json:"created,omitempty"`
	Creator        string   `json:"creator,omitempty"`
	IsArchived     bool     `json:"is_archived,omitempty"`
	IsGeneral      bool     `json:"is_general,omitempty"`
	Unlinked       int      `json:"unlinked,omitempty"`
	NameNormalized string   `json:"name_normalized,omitempty"`
	IsShared       bool     `json:"is_shared,omitempty"`
	IsOrgShared    bool     `json:"is_org_shared,omitempty"`
	IsMember       bool     `json:"is_member,omitempty"`
	// User is the counterpart of a direct message; empty for channels.
	User          string   `json:"user,omitempty"`
	Topic         Topic    `json:"topic,omitempty"`
	Purpose       Purpose  `json:"purpose,omitempty"`
	PreviousNames []string `json:"previous_names,omitempty"`
	NumMembers    int      `json:"num_members,omitempty"`
	Locale        string   `json:"locale,omitempty"`
}

// DisplayName returns the name a client would render for the conversation:
// the channel name when there is one, otherwise the counterpart user of a
// direct message.
func (c *Conversation) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.User
}

// CreatedTime returns the creation moment of the conversation.
func (c *Conversation) CreatedTime() time.Time {
	return time.Unix(c.Created, 0)
}

// Topic is the topic line of a conversation and who set it last.
type Topic struct {
	Value   string `json:"value"`
	Creator string `json:"creator"`
	LastSet int64  `json:"last_set"`
}

// Purpose is the stated purpose of a conversation and who set it last.
type Purpose struct {
	Value   string `json:"value"`
	Creator string `json:"creator"`
	LastSet int64  `json:"last_set"`
}

// Message is a single channel message as returned by conversations.history.
// TS is the raw timestamp string; within a channel it doubles as the message
// identifier, so it is kept verbatim and parsed on demand.
type Message struct {
	Type       string `json:"type"`
	SubType    string `json:"subtype,omitempty"`
	User       string `json:"user,omitempty"`
	BotID      string `json:"bot_id,omitempty"`
	Text       string `json:"text,omitempty"`
	TS         string `json:"ts"`
	ThreadTS   string `json:"thread_ts,omitempty"`
	ReplyCount int    `json:"reply_count,omitempty"`
	Team       string `json:"team,omitempty"`
}

// Timestamp parses the message ts into an exact decimal value. The six
// fractional digits disambiguate messages within the same second, so the
// value must never pass through a float.
func (m *Message) Timestamp() (decimal.Decimal, error) {
	return decimal.NewFromString(m.TS)
}

// Time converts the message ts to a time.Time, keeping the sub-second part.
func (m *Message) Time() (time.Time, error) {
	d, err := m.Timestamp()
	if err != nil {
		return time.Time{}, err
	}
	sec := d.IntPart()
	nanos := d.Sub(decimal.NewFromInt(sec)).Mul(decimal.NewFromInt(1e9)).IntPart()
	return time.Unix(sec, nanos), nil
}

// ResponseMetadata trails every cursor-paginated list response. An empty
// NextCursor means the listing is complete.
type ResponseMetadata struct {
	NextCursor string `json:"next_cursor"`
}

// HasMore reports whether another page can be fetched with NextCursor.
func (m *ResponseMetadata) HasMore() bool {
	return m.NextCursor != ""
}
