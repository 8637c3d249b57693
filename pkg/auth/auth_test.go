package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

type senderFunc func(ctx context.Context, url string, params []requests.Param) (string, error)

func (f senderFunc) Send(ctx context.Context, url string, params []requests.Param) (string, error) {
	return f(ctx, url, params)
}

type asyncSenderFunc func(ctx context.Context, url string, params []requests.Param) <-chan requests.AsyncResult

func (f asyncSenderFunc) SendAsync(ctx context.Context, url string, params []requests.Param) <-chan requests.AsyncResult {
	return f(ctx, url, params)
}

func asyncFixed(body string, err error) asyncSenderFunc {
	return func(ctx context.Context, url string, params []requests.Param) <-chan requests.AsyncResult {
		ch := make(chan requests.AsyncResult, 1)
		ch <- requests.AsyncResult{Body: body, Err: err}
		close(ch)
		return ch
	}
}

func TestTest_SendsTokenOnly(t *testing.T) {
	var gotURL string
	var gotParams []requests.Param
	sender := senderFunc(func(ctx context.Context, url string, params []requests.Param) (string, error) {
		gotURL = url
		gotParams = params
		return `{"ok":true,"url":"https://subarachnoid.slack.com/","team":"Subarachnoid Workspace","user":"grace","team_id":"T12345678","user_id":"W12345678"}`, nil
	})

	resp, err := Test(context.Background(), sender, "xoxb-1234")
	if err != nil {
		t.Fatalf("Test() error = %v", err)
	}
	if gotURL != "https://slack.com/api/auth.test" {
		t.Errorf("url = %q", gotURL)
	}
	if len(gotParams) != 1 || gotParams[0] != (requests.Param{Name: "token", Value: "xoxb-1234"}) {
		t.Errorf("params = %v, want the token alone", gotParams)
	}
	if resp.Team != "Subarachnoid Workspace" || resp.UserID != "W12345678" {
		t.Errorf("response = %+v", resp)
	}
}

func TestTest_InvalidAuth(t *testing.T) {
	sender := senderFunc(func(ctx context.Context, url string, params []requests.Param) (string, error) {
		return `{"ok":false,"error":"invalid_auth"}`, nil
	})

	resp, err := Test(context.Background(), sender, "xoxb-bad")
	if resp != nil {
		t.Error("response must be nil on failure")
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Code != api.CodeInvalidAuth {
		t.Fatalf("err = %v, want invalid_auth", err)
	}
}

func TestTestAsync_DeliversOneResultThenCloses(t *testing.T) {
	ch := TestAsync(context.Background(), asyncFixed(`{"ok":true,"user_id":"W12345678"}`, nil), "xoxb-1234")

	res, ok := <-ch
	if !ok {
		t.Fatal("channel closed before delivering a result")
	}
	if res.Err != nil || res.Response.UserID != "W12345678" {
		t.Fatalf("res = %+v", res)
	}
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after the single result")
	}
}

func TestRevokeParams(t *testing.T) {
	tests := []struct {
		name string
		req  *RevokeRequest
		want []requests.Param
	}{
		{
			name: "Nil request",
			req:  nil,
			want: []requests.Param{{Name: "token", Value: "xoxb-t"}},
		},
		{
			name: "Dry run",
			req:  &RevokeRequest{Test: api.Bool(true)},
			want: []requests.Param{
				{Name: "token", Value: "xoxb-t"},
				{Name: "test", Value: "1"},
			},
		},
		{
			name: "Explicit false",
			req:  &RevokeRequest{Test: api.Bool(false)},
			want: []requests.Param{
				{Name: "token", Value: "xoxb-t"},
				{Name: "test", Value: "0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := revokeParams("xoxb-t", tt.req)
			if len(got) != len(tt.want) {
				t.Fatalf("params = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("params[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRevoke_Success(t *testing.T) {
	sender := senderFunc(func(ctx context.Context, url string, params []requests.Param) (string, error) {
		return `{"ok":true,"revoked":true}`, nil
	})

	resp, err := Revoke(context.Background(), sender, "xoxb-1234", nil)
	if err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	if !resp.Revoked {
		t.Error("Revoked not decoded")
	}
}

func TestRevokeAsync_TransportFailure(t *testing.T) {
	inner := errors.New("connection reset by peer")
	res := <-RevokeAsync(context.Background(), asyncFixed("", inner), "xoxb-1234", nil)

	var te *api.TransportError
	if !errors.As(res.Err, &te) {
		t.Fatalf("res.Err = %T (%v), want *api.TransportError", res.Err, res.Err)
	}
	if !errors.Is(res.Err, inner) {
		t.Error("sender error not preserved")
	}
}
