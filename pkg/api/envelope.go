package api

import "encoding/json"

// Envelope is the portion of every Web API response that signals success or
// failure. Method response types embed it so envelope handling stays uniform
// across bindings.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Validate turns a failed envelope into its typed error. A response with ok
// set yields nil; anything else is classified through FromCode, including a
// response that carries no error code at all.
func (e *Envelope) Validate() error {
	if e.OK {
		return nil
	}
	return FromCode(e.Error)
}

// Validator is satisfied by method response types that can report whether
// the call they describe succeeded.
type Validator interface {
	Validate() error
}

// ParseResponse decodes a raw response body into out and validates its
// envelope. A body that does not decode yields *MalformedResponseError; a
// decoded envelope with ok unset yields the *Error for its code. A body that
// fails to decode is never reported as success, and the envelope is not
// consulted for it.
func ParseResponse(raw string, out Validator) error {
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &MalformedResponseError{Err: err}
	}
	return out.Validate()
}
