// Package sdk provides the high-level entry point for calling the Slack Web API.
//
// The SDK ties together configuration, the HTTP transport, and the typed
// method bindings so that callers never deal with form encoding, response
// envelopes, or error-code strings directly.
//
// # Quick Start
//
// Create an SDK instance with configuration, then use the method family
// clients it hands out:
//
//	import (
//		"github.com/shamank/slack-sdk-go/pkg/config"
//		"github.com/shamank/slack-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		cfg := &config.Config{
//			Token: os.Getenv("SLACK_TOKEN"),
//			Debug: true,
//		}
//
//		// Initialize SDK
//		slackSDK := sdk.NewSDK(cfg)
//		defer slackSDK.Close()
//
//		// List public channels
//		resp, err := slackSDK.Conversations().List(&conversations.ListRequest{
//			ExcludeArchived: api.Bool(true),
//			Limit:           api.Uint32(100),
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		for _, ch := range resp.Channels {
//			fmt.Printf("#%s (%s)\n", ch.Name, ch.ID)
//		}
//	}
//
// # Architecture
//
// The SDK coordinates three layers:
//
//   - requests: the HTTP transport, in blocking and asynchronous flavors
//   - api: URL construction, the response envelope, and the error taxonomy
//   - method families: typed request/response bindings per Web API group
//
// # Core Components
//
// SlackSDK interface:
//   - Conversations: client for the conversations.* method family
//   - Auth: client for the auth.* method family
//   - Ping: call api.test to verify connectivity
//   - Close: release idle connections
//
// Conversations interface (returned by Conversations):
//   - List / ListAsync: list channels the token can see
//   - ListAll: follow cursors until every page is collected
//   - History / HistoryAsync: fetch a channel's message history
//   - Info / InfoAsync: fetch a single channel
//   - Members / MembersAsync: list member IDs of a channel
//   - Create / CreateAsync: create a public or private channel
//   - Archive / ArchiveAsync: archive a channel
//
// Auth interface (returned by Auth):
//   - Test / TestAsync: check the token and identify its workspace
//   - Revoke / RevokeAsync: revoke the token, optionally as a dry run
//
// # Sync and Async Calls
//
// Every method exists in two forms. The blocking form returns the decoded
// response directly and is bounded by the configured request timeout. The
// Async form returns immediately with a channel that delivers exactly one
// result and is then closed:
//
//	ch := slackSDK.Conversations().ListAsync(&conversations.ListRequest{})
//	// ... other work ...
//	result := <-ch
//	if result.Err != nil {
//		log.Fatal(result.Err)
//	}
//
// Both forms classify failures identically; see Error Handling below.
//
// # Configuration
//
// Required configuration fields:
//   - Token: the Slack authentication token (xoxb-, xoxp-, ...)
//
// Optional fields:
//   - UserAgent: custom User-Agent header for outgoing requests
//   - Debug: enable verbose logging
//   - Timeouts: custom timeout configuration
//
// # Error Handling
//
// Failed calls return one of three error types from the api package:
//
//   - *api.Error: the platform rejected the call (ok was false); Code holds
//     the typed error code and Raw the verbatim string from the wire
//   - *api.MalformedResponseError: the body could not be decoded as JSON
//   - *api.TransportError: the HTTP exchange itself failed
//
// Example with proper error handling:
//
//	resp, err := slackSDK.Conversations().List(req)
//	if err != nil {
//		var apiErr *api.Error
//		if errors.As(err, &apiErr) && apiErr.Code == api.CodeInvalidAuth {
//			return fmt.Errorf("token rejected: %w", err)
//		}
//		return fmt.Errorf("conversations.list failed: %w", err)
//	}
//
// # Thread Safety
//
// The SDK Core and the method family clients are safe for concurrent use.
// You can share a single SDK instance across goroutines and make parallel
// calls through it.
//
// # Resource Management
//
// Always call Close() on the SDK instance to release idle HTTP connections:
//
//	slackSDK := sdk.NewSDK(cfg)
//	defer slackSDK.Close()
//
// # See Also
//
// For runnable examples, see the examples/ directory in the repository:
//   - examples/list-conversations: basic channel listing
//   - examples/channel-history: reading messages and their timestamps
//   - examples/async-list: the non-blocking call form
package sdk
