// Package model defines data structures representing Slack conversations,
// messages, and list pagination metadata.
//
// This package contains the core data models that represent:
//   - Conversations (public/private channels, DMs, group DMs)
//   - Conversation topic and purpose lines
//   - Channel messages and their timestamps
//   - Cursor-based pagination metadata
//
// These structures are decoded from Web API JSON payloads, providing a
// Go-native representation of the objects the platform returns.
//
// # Conversations
//
// Conversation is the unified channel-like object the conversations.* methods
// operate on:
//
//	type Conversation struct {
//		ID         string   // Unique identifier ("C..." / "G..." / "D...")
//		Name       string   // Channel name, empty for DMs
//		IsChannel  bool     // Public channel
//		IsGroup    bool     // Legacy private channel
//		IsIM       bool     // Direct message
//		IsMPIM     bool     // Multi-party direct message
//		IsPrivate  bool     // Not visible to the whole workspace
//		IsArchived bool     // Frozen, no longer writable
//		Topic      Topic    // Current topic line
//		Purpose    Purpose  // Stated purpose
//		NumMembers int      // Member count, channels only
//	}
//
// The API models every channel-like thing as the same object and sets
// exactly one of the Is* variant flags. DisplayName picks the string a
// client would render: the channel name when present, otherwise the DM
// counterpart user.
//
// # Messages and timestamps
//
// Message is a single entry of a channel's history:
//
//	type Message struct {
//		Type     string // Always "message"
//		SubType  string // Variant, e.g. "bot_message", "channel_join"
//		User     string // Author user ID
//		Text     string // Message body
//		TS       string // Timestamp, e.g. "1503435956.000247"
//		ThreadTS string // Parent timestamp when in a thread
//	}
//
// TS is more than a time: within a channel it is the message's identity, and
// the six fractional digits order messages that share a second. The struct
// therefore keeps the raw string and offers parsed views on demand:
//
//	ts, err := msg.Timestamp() // exact decimal.Decimal
//	at, err := msg.Time()      // time.Time with sub-second precision
//
// Timestamp uses decimal arithmetic so values never pass through a float;
// two distinct message IDs must never collapse into one.
//
// # Pagination
//
// List responses trail a ResponseMetadata with the cursor for the next page:
//
//	type ResponseMetadata struct {
//		NextCursor string // Opaque cursor, empty on the last page
//	}
//
// Callers loop until HasMore reports false, feeding NextCursor back into the
// next request's Cursor field. Cursors are opaque values and must be passed
// back verbatim.
package model
