package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// EchoPayload is what the echo server reflects back for each request, and
// what it records for later inspection by the test.
type EchoPayload struct {
	Method  string              `json:"method"`
	Path    string              `json:"path"`
	Query   map[string][]string `json:"query"`
	Headers map[string][]string `json:"headers"`
	Body    json.RawMessage     `json:"body,omitempty"`
}

// EchoServer reflects every request back as JSON so tests can assert the
// shape of what the SDK sends without a live backend.
type EchoServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []EchoPayload
}

// NewEchoServer starts an echo server that is shut down when the test ends.
func NewEchoServer(t *testing.T) *EchoServer {
	t.Helper()

	srv := &EchoServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(srv.handle))
	t.Cleanup(srv.Close)
	return srv
}

func (s *EchoServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	payload := EchoPayload{
		Method:  r.Method,
		Path:    r.URL.Path,
		Query:   r.URL.Query(),
		Headers: r.Header,
	}
	if len(body) > 0 {
		payload.Body = json.RawMessage(body)
	}

	s.mu.Lock()
	s.requests = append(s.requests, payload)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// Requests returns a copy of everything received so far.
func (s *EchoServer) Requests() []EchoPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]EchoPayload(nil), s.requests...)
}

// Last returns the most recent request received.
func (s *EchoServer) Last(t *testing.T) EchoPayload {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatal("echo server received no requests")
	}
	return s.requests[len(s.requests)-1]
}
