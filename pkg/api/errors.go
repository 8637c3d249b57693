package api

import "fmt"

// Code identifies a Web API failure reported inside a response envelope.
// Codes the platform shares across methods get their own constant; anything
// else classifies as CodeUnknown with the raw string preserved.
type Code string

const (
	// CodeNotAuthed means no authentication token was provided.
	CodeNotAuthed Code = "not_authed"
	// CodeInvalidAuth means the authentication token was invalid.
	CodeInvalidAuth Code = "invalid_auth"
	// CodeAccountInactive means the token belongs to a deleted user or team.
	CodeAccountInactive Code = "account_inactive"
	// CodeInvalidArgName means an argument name was malformed.
	CodeInvalidArgName Code = "invalid_arg_name"
	// CodeInvalidArrayArg means a PHP-style array argument was passed.
	CodeInvalidArrayArg Code = "invalid_array_arg"
	// CodeInvalidCharset means the request charset was not accepted.
	CodeInvalidCharset Code = "invalid_charset"
	// CodeInvalidFormData means the POST form data was missing or invalid.
	CodeInvalidFormData Code = "invalid_form_data"
	// CodeInvalidPostType means the request Content-Type was not accepted.
	CodeInvalidPostType Code = "invalid_post_type"
	// CodeMissingPostType means the request carried no Content-Type header.
	CodeMissingPostType Code = "missing_post_type"
	// CodeTeamAddedToOrg means the team is migrating to an Enterprise
	// Organization and the Web API is intermittently unavailable for it.
	CodeTeamAddedToOrg Code = "team_added_to_org"
	// CodeRequestTimeout means the POST data was missing or truncated.
	CodeRequestTimeout Code = "request_timeout"

	// CodeUnknown covers every code without a constant of its own. The
	// verbatim string the platform sent is kept in Error.Raw.
	CodeUnknown Code = "unknown"
)

var codeDescriptions = map[Code]string{
	CodeNotAuthed:       "No authentication token provided.",
	CodeInvalidAuth:     "Invalid authentication token.",
	CodeAccountInactive: "Authentication token is for a deleted user or team.",
	CodeInvalidArgName:  "The method was passed an argument whose name falls outside the bounds of common decency. This includes very long names and names with non-alphanumeric characters other than _. If you get this error, it is typically an indication that you have made a very malformed API call.",
	CodeInvalidArrayArg: "The method was passed a PHP-style array argument (e.g. with a name like foo[7]). These are never valid with the Slack API.",
	CodeInvalidCharset:  "The method was called via a POST request, but the charset specified in the Content-Type header was invalid. Valid charset names are: utf-8 iso-8859-1.",
	CodeInvalidFormData: "The method was called via a POST request with Content-Type application/x-www-form-urlencoded or multipart/form-data, but the form data was either missing or syntactically invalid.",
	CodeInvalidPostType: "The method was called via a POST request, but the specified Content-Type was invalid. Valid types are: application/x-www-form-urlencoded multipart/form-data text/plain.",
	CodeMissingPostType: "The method was called via a POST request and included a data payload, but the request did not include a Content-Type header.",
	CodeTeamAddedToOrg:  "The team associated with your request is currently undergoing migration to an Enterprise Organization. Web API and other platform operations will be intermittently unavailable until the transition is complete.",
	CodeRequestTimeout:  "The method was called via a POST request, but the POST data was either missing or truncated.",
}

// Error is a failure the Web API reported inside a well-formed envelope.
// Code is the classified identity callers branch on; Raw holds the exact
// string the platform sent, which for CodeUnknown is the only record of
// what came back.
type Error struct {
	Code Code
	Raw  string
}

func (e *Error) Error() string {
	if d, ok := codeDescriptions[e.Code]; ok {
		return string(e.Code) + ": " + d
	}
	return fmt.Sprintf("unknown error code %q", e.Raw)
}

// FromCode classifies an error code string from a response envelope. Every
// input maps to an *Error: recognized codes to their constant, everything
// else, the empty string included, to CodeUnknown with the input kept
// verbatim in Raw.
func FromCode(s string) *Error {
	c := Code(s)
	if _, ok := codeDescriptions[c]; !ok {
		c = CodeUnknown
	}
	return &Error{Code: c, Raw: s}
}

// TransportError reports that the sender failed before a response body was
// obtained. The sender's error is preserved and reachable through Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a response body that could not be decoded
// as the expected envelope. The decode failure is preserved in Err.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
