// Package requests defines the transport capability used by every Web API
// method binding: an ordered parameter set, a blocking Sender, a non-blocking
// AsyncSender, and default implementations of both over net/http.
package requests

import (
	"context"
	"net/url"
	"strings"
)

// defaultUserAgent is sent on every request unless overridden on the client.
const defaultUserAgent = "slack-sdk-go/1.0"

// Param is one name/value pair of a method call's outgoing query. Parameter
// sets are ordered; bindings always place the token first.
type Param struct {
	Name  string
	Value string
}

// Sender dispatches a single Web API method call and returns the raw
// response body. The url is the fully qualified method endpoint; params are
// appended as the request query. Implementations must be safe for concurrent
// use and must not retry: a failed call surfaces as an error exactly once.
type Sender interface {
	Send(ctx context.Context, url string, params []Param) (string, error)
}

// AsyncResult is the single resolution value of an AsyncSender call. Exactly
// one of Body and Err is meaningful.
type AsyncResult struct {
	Body string
	Err  error
}

// AsyncSender dispatches a single method call without blocking the caller.
// The returned channel resolves exactly once with the same body-or-error
// outcome Sender.Send would produce, then is closed.
type AsyncSender interface {
	SendAsync(ctx context.Context, url string, params []Param) <-chan AsyncResult
}

// EncodeParams serializes params into application/x-www-form-urlencoded form
// preserving the given order. url.Values is not used because its Encode sorts
// keys; the token-first ordering of parameter sets is kept on the wire.
func EncodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
