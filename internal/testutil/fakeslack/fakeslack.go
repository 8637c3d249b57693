// Package fakeslack provides an in-memory stand-in for the Web API host,
// for tests that want to drive the whole SDK stack over real HTTP without
// touching slack.com.
package fakeslack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/shamank/slack-sdk-go/pkg/api"
	"github.com/shamank/slack-sdk-go/pkg/requests"
)

// Call records one request the fake received.
type Call struct {
	// Method is the Web API method name, e.g. "conversations.list".
	Method string
	// Query holds the decoded query parameters.
	Query url.Values
	// RawQuery is the query string exactly as it arrived, order included.
	RawQuery string
	// UserAgent is the request's User-Agent header.
	UserAgent string
}

type response struct {
	status int
	body   string
}

// Server is an httptest-backed Web API double. Canned bodies are registered
// per method with Respond; everything the fake receives is recorded and can
// be inspected with Calls and LastCall. Safe for concurrent use.
type Server struct {
	srv    *httptest.Server
	router *mux.Router

	mu        sync.Mutex
	responses map[string]response
	queued    map[string][]response
	calls     []Call
}

// StartServer spins up the double. Methods without a canned response answer
// with an unknown_method envelope, which is what the real host does for
// method names it has never heard of.
func StartServer() *Server {
	s := &Server{
		router:    mux.NewRouter(),
		responses: make(map[string]response),
		queued:    make(map[string][]response),
	}
	s.router.HandleFunc("/api/{method}", s.handle)
	s.srv = httptest.NewServer(s.router)
	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	method := mux.Vars(r)["method"]

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method:    method,
		Query:     r.URL.Query(),
		RawQuery:  r.URL.RawQuery,
		UserAgent: r.UserAgent(),
	})
	resp, ok := s.responses[method]
	if q := s.queued[method]; len(q) > 0 {
		resp, ok = q[0], true
		s.queued[method] = q[1:]
	}
	s.mu.Unlock()

	if !ok {
		resp = response{status: http.StatusOK, body: `{"ok":false,"error":"unknown_method"}`}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

// Respond sets the body a method answers with, under HTTP 200.
func (s *Server) Respond(method, body string) {
	s.RespondStatus(method, http.StatusOK, body)
}

// RespondOnce queues a body a method answers with exactly once. Queued
// bodies are served in order before any sticky Respond body; tests use this
// to script multi-page listings.
func (s *Server) RespondOnce(method, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued[method] = append(s.queued[method], response{status: http.StatusOK, body: body})
}

// RespondStatus sets the body and HTTP status a method answers with. The API
// reports failures inside the envelope rather than through status codes, but
// intermediaries do serve error pages; tests can simulate those here.
func (s *Server) RespondStatus(method string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[method] = response{status: status, body: body}
}

// Calls returns the recorded calls for a method, in arrival order.
func (s *Server) Calls(method string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Call
	for _, c := range s.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// LastCall returns the most recent call for a method, or nil when the
// method was never hit.
func (s *Server) LastCall(method string) *Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.calls) - 1; i >= 0; i-- {
		if s.calls[i].Method == method {
			c := s.calls[i]
			return &c
		}
	}
	return nil
}

// URL returns the fake's base URL, ending in "/api/".
func (s *Server) URL() string {
	return s.srv.URL + "/api/"
}

// Close shuts the underlying test server down.
func (s *Server) Close() {
	s.srv.Close()
}

// Sender returns a blocking sender whose calls to the public API host land
// on this fake instead. URLs not aimed at the public host pass through
// untouched.
func (s *Server) Sender() requests.Sender {
	return &rebasingSender{base: s.URL(), next: requests.NewClient(0, "")}
}

// AsyncSender is Sender for the non-blocking path.
func (s *Server) AsyncSender() requests.AsyncSender {
	return &rebasingAsyncSender{base: s.URL(), next: requests.NewAsyncClient(0, "")}
}

type rebasingSender struct {
	base string
	next requests.Sender
}

func (r *rebasingSender) Send(ctx context.Context, u string, params []requests.Param) (string, error) {
	return r.next.Send(ctx, rebase(r.base, u), params)
}

type rebasingAsyncSender struct {
	base string
	next requests.AsyncSender
}

func (r *rebasingAsyncSender) SendAsync(ctx context.Context, u string, params []requests.Param) <-chan requests.AsyncResult {
	return r.next.SendAsync(ctx, rebase(r.base, u), params)
}

func rebase(base, u string) string {
	if rest, ok := strings.CutPrefix(u, api.APIURL); ok {
		return base + rest
	}
	return u
}
