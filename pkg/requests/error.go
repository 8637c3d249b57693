package requests

import "fmt"

// Request phases an Error may be tagged with. Callers rarely branch on these;
// they exist so transport failures carry where in the request lifecycle they
// happened.
const (
	// DomainParseURL marks a failure parsing the method URL before dispatch
	// (async path only; the blocking path hands the URL straight to net/http).
	DomainParseURL = "ParseURL"

	// DomainNewRequest marks a failure constructing the outgoing request.
	DomainNewRequest = "NewRequest"

	// DomainDo marks a failure executing the request (connection, TLS,
	// context cancellation).
	DomainDo = "Do"

	// DomainRead marks a failure draining the response body.
	DomainRead = "Read"
)

// Error is the failure type of the default senders. It tags the underlying
// cause with the request phase and method URL it occurred at.
type Error struct {
	// Domain is the request phase, one of the Domain constants above.
	Domain string

	// URL is the method endpoint the call was addressed to, without query.
	URL string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Domain, e.URL, e.Err)
}

// Unwrap returns the underlying cause, so callers can reach wrapped
// net/http and context errors via errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}
