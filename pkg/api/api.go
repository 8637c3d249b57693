package api

import (
	"context"

	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// TestRequest carries the optional arguments of the api.test method. The
// method echoes its arguments back, and fails with Error as the envelope
// code when Error is set.
type TestRequest struct {
	// Error, when set, makes the call fail with this string as its code.
	Error *string
	// Foo is an arbitrary argument echoed back in the response args.
	Foo *string
}

func testParams(req *TestRequest) []requests.Param {
	if req == nil {
		return nil
	}
	params := make([]requests.Param, 0, 2)
	if req.Error != nil {
		params = append(params, requests.Param{Name: "error", Value: *req.Error})
	}
	if req.Foo != nil {
		params = append(params, requests.Param{Name: "foo", Value: *req.Foo})
	}
	return params
}

// TestResponse is the api.test payload: the call's arguments echoed back,
// envelope included.
type TestResponse struct {
	Envelope
	Args map[string]string `json:"args,omitempty"`
}

// Test calls api.test, the one Web API method that needs no authentication.
// It is the cheapest way to confirm the API is reachable. A nil request
// sends no arguments.
func Test(ctx context.Context, client requests.Sender, req *TestRequest) (*TestResponse, error) {
	body, err := client.Send(ctx, MethodURL("api.test"), testParams(req))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	resp := &TestResponse{}
	if err := ParseResponse(body, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// TestResult delivers the outcome of TestAsync. Exactly one of Response and
// Err is set.
type TestResult struct {
	Response *TestResponse
	Err      error
}

// TestAsync is Test over an AsyncSender. The returned channel delivers one
// TestResult and is then closed; failures classify exactly as they do for
// Test.
func TestAsync(ctx context.Context, client requests.AsyncSender, req *TestRequest) <-chan TestResult {
	out := make(chan TestResult, 1)
	go func() {
		defer close(out)
		res := <-client.SendAsync(ctx, MethodURL("api.test"), testParams(req))
		if res.Err != nil {
			out <- TestResult{Err: &TransportError{Err: res.Err}}
			return
		}
		resp := &TestResponse{}
		if err := ParseResponse(res.Body, resp); err != nil {
			out <- TestResult{Err: err}
			return
		}
		out <- TestResult{Response: resp}
	}()
	return out
}
