package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/philologus/philologus-desktop/internal/model"
)

// uiLoop stands in for the UI thread: dispatched functions run only when the test pulls them
type uiLoop chan func()

func newUILoop() uiLoop {
	return make(uiLoop, 64)
}

func (u uiLoop) dispatch(fn func()) {
	u <- fn
}

func (u uiLoop) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-u:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a UI callback")
	}
}

// stubSearcher answers lookups immediately from a fixed table
type stubSearcher struct {
	mu        sync.Mutex
	responses map[string]model.ResultSet
	err       error
	queries   []string

	endpoint string
	lexicon  string
	timeout  time.Duration
}

func newStubSearcher() *stubSearcher {
	return &stubSearcher{responses: make(map[string]model.ResultSet)}
}

func (s *stubSearcher) Lookup(ctx context.Context, query string) (model.ResultSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	return s.responses[query], nil
}

func (s *stubSearcher) SetEndpoint(endpoint string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endpoint = endpoint
}

func (s *stubSearcher) SetLexicon(lexicon string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lexicon = lexicon
}

func (s *stubSearcher) SetTimeout(timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = timeout
}

func (s *stubSearcher) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubSearcher) config() (string, string, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endpoint, s.lexicon, s.timeout
}

func (s *stubSearcher) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}
