package requests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientSend_SendsOrderedQueryAndUserAgent(t *testing.T) {
	var gotQuery, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "test-agent/0.1")
	body, err := c.Send(context.Background(), srv.URL+"/api/conversations.list", []Param{
		{Name: "token", Value: "xoxb-abc"},
		{Name: "limit", Value: "100"},
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if body != `{"ok":true}` {
		t.Fatalf("unexpected body: %q", body)
	}
	if gotQuery != "token=xoxb-abc&limit=100" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
	if gotUA != "test-agent/0.1" {
		t.Fatalf("unexpected user agent: %q", gotUA)
	}
}

// TestClientSend_ReturnsBodyRegardlessOfStatus pins the sender contract: no
// HTTP status interpretation happens at the transport level, so an error page
// still comes back as body text for the envelope validation to classify.
func TestClientSend_ReturnsBodyRegardlessOfStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, "")
	body, err := c.Send(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if body != "upstream exploded" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestClientSend_ConnectionFailureTaggedDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c := NewClient(time.Second, "")
	_, err := c.Send(context.Background(), addr, nil)
	if err == nil {
		t.Fatal("expected error for closed server")
	}

	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if terr.Domain != DomainDo {
		t.Fatalf("unexpected domain: %s", terr.Domain)
	}
	if terr.URL != addr {
		t.Fatalf("unexpected URL on error: %s", terr.URL)
	}
}

func TestClientSend_BadURLTaggedNewRequest(t *testing.T) {
	c := NewClient(time.Second, "")
	_, err := c.Send(context.Background(), "://not-a-url", nil)
	if err == nil {
		t.Fatal("expected error for malformed URL")
	}

	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if terr.Domain != DomainNewRequest {
		t.Fatalf("unexpected domain: %s", terr.Domain)
	}
}

func TestClientSend_ContextCancellationSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(5*time.Second, "")
	_, err := c.Send(ctx, srv.URL, nil)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cause not reachable via errors.Is: %v", err)
	}
}

func TestClientSend_NilHTTPClientFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := &Client{}
	body, err := c.Send(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if body != "ok" {
		t.Fatalf("unexpected body: %q", body)
	}
}
