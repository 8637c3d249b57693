// Package conversations binds the conversations.* family of Web API methods.
//
// This package covers the channel-like objects of a workspace:
//   - List: page through the conversations a token can see
//   - History: read a conversation's messages
//   - Info: describe a single conversation
//   - Members: page through a conversation's membership
//   - Create: make a new public or private channel
//   - Archive: freeze a conversation
//
// # The binding pattern
//
// Every method follows the same shape. A request struct holds the method's
// arguments: required ones as plain fields, optional ones as pointers so
// that unset means "omit" rather than "send the zero value". The binding
// turns the struct into an ordered parameter list, with the token always
// first, and hands it to a requests.Sender:
//
//	resp, err := conversations.List(ctx, client, token, &conversations.ListRequest{
//		ExcludeArchived: api.Bool(true),
//		Limit:           api.Uint32(200),
//	})
//
// Booleans travel as "1" and "0", numbers in decimal form. Strings and
// cursors are sent verbatim. A nil request, where the method allows one,
// sends the token alone.
//
// # Pagination
//
// List, History and Members are cursor paginated. Each response trails a
// ResponseMetadata; feed its NextCursor back as the Cursor of the next
// request until HasMore reports false:
//
//	req := &conversations.ListRequest{}
//	for {
//		resp, err := conversations.List(ctx, client, token, req)
//		if err != nil {
//			return err
//		}
//		// consume resp.Channels
//		if !resp.ResponseMetadata.HasMore() {
//			break
//		}
//		req.Cursor = api.String(resp.ResponseMetadata.NextCursor)
//	}
//
// # Errors
//
// A binding returns exactly one of the api package's three failure types:
// *api.TransportError when the sender failed, *api.MalformedResponseError
// when the body did not decode, and *api.Error when the platform reported a
// failed envelope. See the api package for how to branch on them.
//
// # Async calls
//
// Every method has an Async twin that takes a requests.AsyncSender and
// returns a result channel instead of blocking:
//
//	ch := conversations.ListAsync(ctx, asyncClient, token, req)
//	// ... other work ...
//	res := <-ch
//	if res.Err != nil {
//		return res.Err
//	}
//
// The channel delivers exactly one result and is then closed. Both twins
// build the same parameters and classify failures identically, so callers
// can switch between them without changing their error handling.
package conversations
