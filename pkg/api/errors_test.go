package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestFromCode_KnownCodes(t *testing.T) {
	cases := []struct {
		raw  string
		want Code
	}{
		{raw: "not_authed", want: CodeNotAuthed},
		{raw: "invalid_auth", want: CodeInvalidAuth},
		{raw: "account_inactive", want: CodeAccountInactive},
		{raw: "invalid_arg_name", want: CodeInvalidArgName},
		{raw: "invalid_array_arg", want: CodeInvalidArrayArg},
		{raw: "invalid_charset", want: CodeInvalidCharset},
		{raw: "invalid_form_data", want: CodeInvalidFormData},
		{raw: "invalid_post_type", want: CodeInvalidPostType},
		{raw: "missing_post_type", want: CodeMissingPostType},
		{raw: "team_added_to_org", want: CodeTeamAddedToOrg},
		{raw: "request_timeout", want: CodeRequestTimeout},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			err := FromCode(tc.raw)
			if err.Code != tc.want {
				t.Errorf("FromCode(%q).Code = %q, want %q", tc.raw, err.Code, tc.want)
			}
			if err.Raw != tc.raw {
				t.Errorf("FromCode(%q).Raw = %q, want the input back", tc.raw, err.Raw)
			}
		})
	}
}

func TestFromCode_UnknownKeepsRawVerbatim(t *testing.T) {
	for _, raw := range []string{"some_future_code", "channel_not_found", "unknown"} {
		err := FromCode(raw)
		if err.Code != CodeUnknown {
			t.Errorf("FromCode(%q).Code = %q, want %q", raw, err.Code, CodeUnknown)
		}
		if err.Raw != raw {
			t.Errorf("FromCode(%q).Raw = %q, want the input back", raw, err.Raw)
		}
	}
}

func TestFromCode_EmptyString(t *testing.T) {
	err := FromCode("")
	if err.Code != CodeUnknown {
		t.Fatalf("FromCode(\"\").Code = %q, want %q", err.Code, CodeUnknown)
	}
	if err.Raw != "" {
		t.Fatalf("FromCode(\"\").Raw = %q, want empty", err.Raw)
	}
}

func TestErrorMessage(t *testing.T) {
	known := &Error{Code: CodeNotAuthed, Raw: "not_authed"}
	if got, want := known.Error(), "not_authed: No authentication token provided."; got != want {
		t.Errorf("known message = %q, want %q", got, want)
	}

	unknown := FromCode("some_future_code")
	if got, want := unknown.Error(), `unknown error code "some_future_code"`; got != want {
		t.Errorf("unknown message = %q, want %q", got, want)
	}
}

func TestTransportErrorWrapsSenderError(t *testing.T) {
	inner := errors.New("connection refused")
	err := error(&TransportError{Err: inner})

	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the sender error through TransportError")
	}

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatal("errors.As failed to match *TransportError")
	}
	if want := fmt.Sprintf("transport: %v", inner); te.Error() != want {
		t.Errorf("message = %q, want %q", te.Error(), want)
	}
}

func TestMalformedResponseErrorWrapsDecodeError(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := error(&MalformedResponseError{Err: inner})

	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the decode error through MalformedResponseError")
	}

	var me *MalformedResponseError
	if !errors.As(err, &me) {
		t.Fatal("errors.As failed to match *MalformedResponseError")
	}
}
