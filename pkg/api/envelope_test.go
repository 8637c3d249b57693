package api

import (
	"errors"
	"testing"
)

func TestParseResponse_Success(t *testing.T) {
	resp := &TestResponse{}
	if err := ParseResponse(`{"ok":true,"args":{"foo":"bar"}}`, resp); err != nil {
		t.Fatalf("ParseResponse returned %v, want nil", err)
	}
	if !resp.OK {
		t.Error("envelope OK not decoded")
	}
	if resp.Args["foo"] != "bar" {
		t.Errorf("Args = %v, want foo=bar", resp.Args)
	}
}

func TestParseResponse_SuccessWithoutOptionalFields(t *testing.T) {
	resp := &TestResponse{}
	if err := ParseResponse(`{"ok":true}`, resp); err != nil {
		t.Fatalf("ParseResponse returned %v, want nil", err)
	}
	if resp.Args != nil {
		t.Errorf("Args = %v, want nil for an absent field", resp.Args)
	}
}

func TestParseResponse_ErrorEnvelope(t *testing.T) {
	cases := []struct {
		name string
		body string
		code Code
		raw  string
	}{
		{name: "known code", body: `{"ok":false,"error":"invalid_auth"}`, code: CodeInvalidAuth, raw: "invalid_auth"},
		{name: "future code", body: `{"ok":false,"error":"some_future_code"}`, code: CodeUnknown, raw: "some_future_code"},
		{name: "missing code", body: `{"ok":false}`, code: CodeUnknown, raw: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ParseResponse(tc.body, &TestResponse{})
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("ParseResponse returned %T (%v), want *Error", err, err)
			}
			if apiErr.Code != tc.code {
				t.Errorf("Code = %q, want %q", apiErr.Code, tc.code)
			}
			if apiErr.Raw != tc.raw {
				t.Errorf("Raw = %q, want %q", apiErr.Raw, tc.raw)
			}
		})
	}
}

func TestParseResponse_MalformedBody(t *testing.T) {
	bodies := []struct {
		name string
		body string
	}{
		{name: "html error page", body: "<html>502 Bad Gateway</html>"},
		{name: "empty body", body: ""},
		{name: "truncated json", body: `{"ok":true,"channels":[`},
	}

	for _, tc := range bodies {
		t.Run(tc.name, func(t *testing.T) {
			err := ParseResponse(tc.body, &TestResponse{})
			var me *MalformedResponseError
			if !errors.As(err, &me) {
				t.Fatalf("ParseResponse returned %T (%v), want *MalformedResponseError", err, err)
			}
			if me.Err == nil {
				t.Error("decode error not preserved")
			}
			var apiErr *Error
			if errors.As(err, &apiErr) {
				t.Error("a malformed body must not classify as an API error")
			}
		})
	}
}

func TestEnvelopeValidate(t *testing.T) {
	ok := &Envelope{OK: true}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate on ok envelope = %v, want nil", err)
	}

	failed := &Envelope{OK: false, Error: "account_inactive"}
	var apiErr *Error
	if err := failed.Validate(); !errors.As(err, &apiErr) || apiErr.Code != CodeAccountInactive {
		t.Errorf("Validate on failed envelope = %v, want account_inactive", err)
	}
}
