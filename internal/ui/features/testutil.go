// Package features provides shared test utilities for UI feature tests.
package features

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/session"
	"github.com/leapstack-labs/lustre/internal/state"
	"github.com/leapstack-labs/lustre/internal/testutil"
	"github.com/leapstack-labs/lustre/internal/ui/notifier"
)

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Registry     *session.Registry
	Intro        *state.SQLiteStore
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
	Logger       *slog.Logger
}

// SetupTestFixture creates a fixture whose workspaces start from defaults.
// The intro store is an in-memory SQLite database.
func SetupTestFixture(t *testing.T, defaults nav.Defaults) *TestFixture {
	t.Helper()

	intro, err := state.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = intro.Close()
	})

	return &TestFixture{
		Registry:     session.NewRegistry(defaults),
		Intro:        intro,
		Notifier:     notifier.New(),
		SessionStore: NewTestSessionStore(),
		Logger:       testutil.NewTestLogger(t),
	}
}

// Client sends requests to a handler and replays the cookies it receives,
// like a browser tab.
type Client struct {
	handler http.Handler
	cookies map[string]*http.Cookie
}

// NewClient creates a client without cookies.
func NewClient(handler http.Handler) *Client {
	return &Client{handler: handler, cookies: make(map[string]*http.Cookie)}
}

// Do sends a request and records the cookies set by the response.
func (c *Client) Do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.Send(req)
}

// Send sends a prepared request with the client's cookies.
func (c *Client) Send(req *http.Request) *httptest.ResponseRecorder {
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return rec
}

// Cookies returns the cookies the client currently sends.
func (c *Client) Cookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(c.cookies))
	for _, cookie := range c.cookies {
		out = append(out, cookie)
	}
	return out
}

// Fork returns a client sharing the current cookies, like a second tab.
func (c *Client) Fork() *Client {
	other := NewClient(c.handler)
	for name, cookie := range c.cookies {
		other.cookies[name] = cookie
	}
	return other
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}
