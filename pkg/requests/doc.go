// Package requests provides the transport layer of the SDK: the contract
// every method binding dispatches through, and default implementations of it
// over net/http.
//
// # Contract
//
// A method call is a URL plus an ordered set of name/value parameters. Two
// shapes of the capability exist with identical semantics:
//
//   - Sender: blocking; Send returns the raw response body directly
//   - AsyncSender: non-blocking; SendAsync returns a channel resolving once
//
// Both report transport failures through their error result and never retry.
// Neither interprets HTTP status codes or response content: a 500 with an
// HTML body is returned as that body, and the envelope validation downstream
// classifies it.
//
// # Default implementations
//
// Client implements Sender:
//
//	sender := requests.NewClient(30*time.Second, "")
//	body, err := sender.Send(ctx, api.MethodURL("conversations.list"), params)
//
// AsyncClient implements AsyncSender. It encodes the parameter set into the
// URL query itself and drives the raw HTTP client from a per-call goroutine:
//
//	async := requests.NewAsyncClient(30*time.Second, "")
//	res := <-async.SendAsync(ctx, url, params)
//
// # Custom transports
//
// Anything satisfying Sender can be plugged into the bindings, a recording
// fake in tests as much as an instrumented production client. The error
// value a custom transport returns is preserved verbatim inside the
// taxonomy's transport variant and can be recovered with errors.As.
//
// # Errors
//
// Default-sender failures are *Error values tagged with the request phase
// (ParseURL, NewRequest, Do, Read) and the bare method URL. The underlying
// cause is reachable through Unwrap, so context cancellation still matches
// errors.Is(err, context.Canceled).
//
// # Ordering
//
// EncodeParams preserves parameter order on the wire. The remote API does not
// require it, but deterministic queries keep transports trivially testable.
package requests
