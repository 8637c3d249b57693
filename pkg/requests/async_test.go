package requests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAsyncClientSendAsync_ResolvesOnceThenCloses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"channels":[]}`))
	}))
	defer srv.Close()

	c := NewAsyncClient(5*time.Second, "")
	ch := c.SendAsync(context.Background(), srv.URL+"/api/conversations.list", []Param{
		{Name: "token", Value: "xoxb-abc"},
	})

	res, ok := <-ch
	if !ok {
		t.Fatal("channel closed before resolving")
	}
	if res.Err != nil {
		t.Fatalf("SendAsync resolved with error: %v", res.Err)
	}
	if res.Body != `{"ok":true,"channels":[]}` {
		t.Fatalf("unexpected body: %q", res.Body)
	}

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed after single resolution")
	}
}

func TestAsyncClientSendAsync_EncodesQueryIntoURL(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewAsyncClient(5*time.Second, "")
	res := <-c.SendAsync(context.Background(), srv.URL, []Param{
		{Name: "token", Value: "xoxb-abc"},
		{Name: "exclude_archived", Value: "0"},
	})
	if res.Err != nil {
		t.Fatalf("SendAsync resolved with error: %v", res.Err)
	}
	if gotQuery != "token=xoxb-abc&exclude_archived=0" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
}

func TestAsyncClientSendAsync_BadURLTaggedParseURL(t *testing.T) {
	c := NewAsyncClient(time.Second, "")
	res := <-c.SendAsync(context.Background(), "://not-a-url", nil)
	if res.Err == nil {
		t.Fatal("expected error for malformed URL")
	}

	var terr *Error
	if !errors.As(res.Err, &terr) {
		t.Fatalf("error is %T, want *Error", res.Err)
	}
	if terr.Domain != DomainParseURL {
		t.Fatalf("unexpected domain: %s", terr.Domain)
	}
}

func TestAsyncClientSendAsync_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c := NewAsyncClient(time.Second, "")
	res := <-c.SendAsync(context.Background(), addr, nil)
	if res.Err == nil {
		t.Fatal("expected error for closed server")
	}

	var terr *Error
	if !errors.As(res.Err, &terr) {
		t.Fatalf("error is %T, want *Error", res.Err)
	}
	if terr.Domain != DomainDo {
		t.Fatalf("unexpected domain: %s", terr.Domain)
	}
}

// The async sender must not block even when the result is never received:
// the buffered channel lets the goroutine resolve and exit on its own.
func TestAsyncClientSendAsync_AbandonedResultDoesNotBlock(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer close(done)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewAsyncClient(5*time.Second, "")
	_ = c.SendAsync(context.Background(), srv.URL, nil) // result intentionally dropped

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the server")
	}
}
