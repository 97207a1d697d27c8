package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joestump/joe-marketer/internal/api"
	"github.com/joestump/joe-marketer/internal/copywriter"
	"github.com/joestump/joe-marketer/internal/llm"
)

// stubCompleter answers every prompt with reply, or fails with err.
type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Model() string { return "stub-model" }

func (s *stubCompleter) Complete(context.Context, llm.Prompt) (string, error) {
	s.calls++
	return s.reply, s.err
}

// testEnv holds the router and the stub behind it.
type testEnv struct {
	Router http.Handler
	Stub   *stubCompleter
}

func newTestEnv(t *testing.T, stub *stubCompleter) *testEnv {
	t.Helper()
	ctrl := copywriter.NewController(stub, nil)
	return &testEnv{
		Router: api.NewAPIRouter(api.Deps{Controller: ctrl}),
		Stub:   stub,
	}
}

func (e *testEnv) post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}
