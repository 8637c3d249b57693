// Package api carries the parts of the Web API contract that every method
// binding shares: resolving method names to URLs, decoding the response
// envelope, and classifying failures into a stable error taxonomy.
//
// # Envelope
//
// Every Web API response is a JSON object with a boolean "ok" field, and on
// failure a string "error" code alongside it. Method response types embed
// Envelope and pass through ParseResponse, so a binding never inspects the
// two fields itself:
//
//	type ListResponse struct {
//		api.Envelope
//		Channels []model.Conversation `json:"channels,omitempty"`
//	}
//
//	resp := &ListResponse{}
//	if err := api.ParseResponse(body, resp); err != nil {
//		return nil, err
//	}
//
// # Error taxonomy
//
// A call fails in exactly one of three ways, and each way has its own type:
//
//   - *TransportError: the sender failed and no body was obtained. The
//     sender's error is wrapped, never replaced.
//   - *MalformedResponseError: a body arrived but did not decode as the
//     expected envelope shape.
//   - *Error: the envelope decoded and reported ok=false. Code carries the
//     classified identity, Raw the exact string the platform sent.
//
// Codes the platform shares across every method have constants; a code
// without one classifies as CodeUnknown and keeps the raw string, so new
// platform codes degrade to an inspectable value rather than an invented
// one. Callers branch with errors.As:
//
//	var apiErr *api.Error
//	if errors.As(err, &apiErr) && apiErr.Code == api.CodeInvalidAuth {
//		// re-authenticate
//	}
//
// # Optional arguments
//
// Request structs model optional method arguments as pointers, so the zero
// value means "omit" rather than "send the default". Bool, String and
// Uint32 build those pointers inline:
//
//	req := &conversations.ListRequest{
//		ExcludeArchived: api.Bool(true),
//		Limit:           api.Uint32(200),
//	}
//
// # api.test
//
// The package also binds api.test, the one method that requires no
// authentication. Test and TestAsync are the smallest complete examples of
// the binding pattern the method packages follow.
package api
