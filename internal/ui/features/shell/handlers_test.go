package shell

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/leapstack-labs/lustre/internal/session"
	"github.com/leapstack-labs/lustre/internal/state"
	"github.com/leapstack-labs/lustre/internal/ui/features"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func newRouter(t *testing.T, fixture *features.TestFixture, intro state.IntroStore) http.Handler {
	t.Helper()
	r := chi.NewMux()
	require.NoError(t, SetupRoutes(r, fixture.Registry, pages.Default, intro,
		fixture.SessionStore, fixture.Notifier, fixture.Logger, true))
	return r
}

func setupTestClient(t *testing.T, defaults nav.Defaults) (*features.Client, *features.TestFixture) {
	t.Helper()
	fixture := features.SetupTestFixture(t, defaults)
	client := features.NewClient(newRouter(t, fixture, fixture.Intro))
	return client, fixture
}

// visitorOf decodes the visitor ID from the client's session cookie.
func visitorOf(t *testing.T, fixture *features.TestFixture, client *features.Client) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range client.Cookies() {
		req.AddCookie(c)
	}
	sess, err := fixture.SessionStore.Get(req, SessionName)
	require.NoError(t, err)
	id, _ := sess.Values[visitorKey].(string)
	require.NotEmpty(t, id)
	return id
}

func workspaceOf(t *testing.T, fixture *features.TestFixture, client *features.Client) *session.Workspace {
	t.Helper()
	ws, ok := fixture.Registry.Get(visitorOf(t, fixture, client))
	require.True(t, ok)
	return ws
}

// =============================================================================
// ShellPage Tests - full HTML page
// =============================================================================

func TestShellPage(t *testing.T) {
	tests := []struct {
		name     string
		defaults nav.Defaults
		wantBody []string
	}{
		{
			name: "defaults to home",
			wantBody: []string{
				"<!doctype html>",
				"<title>Home - Lustre</title>",
				"data-init",
				"/updates",
				`data-page="HomePage"`,
				"Showing All Teams",
				`id="intro"`,
				"home-metal-prices",
			},
		},
		{
			name:     "configured initial category and team",
			defaults: nav.Defaults{Category: nav.CategoryCRM, Team: "Atelier"},
			wantBody: []string{`data-page="DepartmentAgentPage"`, "CRM Assistant", `<option value="Atelier" selected>`},
		},
		{
			name:     "unknown initial category falls back to generic page",
			defaults: nav.Defaults{Category: "Vault"},
			wantBody: []string{"<title>Vault - Lustre</title>", `data-page="GenericCategoryPage"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, fixture := setupTestClient(t, tt.defaults)

			rec := client.Do(http.MethodGet, "/", "")

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want, "response should contain %q", want)
			}
			assert.NotEmpty(t, rec.Result().Cookies(), "new visitors get a session cookie")
			assert.Equal(t, 1, fixture.Registry.Len())
		})
	}
}

func TestShellPage_SameVisitorKeepsWorkspace(t *testing.T) {
	client, fixture := setupTestClient(t, nav.Defaults{})

	client.Do(http.MethodGet, "/", "")
	client.Do(http.MethodPost, "/api/nav/category/Orders", "")
	rec := client.Do(http.MethodGet, "/", "")

	assert.Contains(t, rec.Body.String(), "<title>Orders Overview - Lustre</title>")
	assert.Equal(t, 1, fixture.Registry.Len())
}

func TestShellPage_VisitorsAreIsolated(t *testing.T) {
	client, fixture := setupTestClient(t, nav.Defaults{})
	other := features.NewClient(newRouter(t, fixture, fixture.Intro))

	client.Do(http.MethodPost, "/api/nav/category/Reports", "")
	rec := other.Do(http.MethodGet, "/", "")

	assert.Contains(t, rec.Body.String(), `data-page="HomePage"`)
	assert.Equal(t, 2, fixture.Registry.Len())
}

// =============================================================================
// Navigation action tests - SSE responses
// =============================================================================

func TestNavigationActions(t *testing.T) {
	tests := []struct {
		name      string
		steps     []string
		wantPage  pages.PageID
		wantState func(t *testing.T, st nav.State)
	}{
		{
			name:     "category lands on overview",
			steps:    []string{"/api/nav/category/Orders"},
			wantPage: pages.OrderMainPage,
			wantState: func(t *testing.T, st nav.State) {
				assert.Equal(t, nav.ItemOverview, st.SidebarItem)
			},
		},
		{
			name:     "item drills in",
			steps:    []string{"/api/nav/category/Orders", "/api/nav/item/Pre-Orders"},
			wantPage: pages.PreOrderBoardPage,
		},
		{
			name:     "item with spaces",
			steps:    []string{"/api/nav/category/Workspace", "/api/nav/item/My%20Work%20Space"},
			wantPage: pages.MyWorkspacePage,
		},
		{
			name:     "shipping collapses the sidebar",
			steps:    []string{"/api/nav/category/Logistics", "/api/nav/item/Shipping"},
			wantPage: pages.ShippingBoard,
			wantState: func(t *testing.T, st nav.State) {
				assert.True(t, st.SidebarCollapsed)
				assert.False(t, st.SidebarCollapsedByAutomation)
			},
		},
		{
			name:     "team and dark mode",
			steps:    []string{"/api/nav/team/Flagship%20Boutique", "/api/nav/darkmode"},
			wantPage: pages.HomePage,
			wantState: func(t *testing.T, st nav.State) {
				assert.Equal(t, "Flagship Boutique", st.Team)
				assert.True(t, st.DarkMode)
			},
		},
		{
			name:     "manual collapse",
			steps:    []string{"/api/nav/collapse"},
			wantPage: pages.HomePage,
			wantState: func(t *testing.T, st nav.State) {
				assert.True(t, st.SidebarCollapsed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, fixture := setupTestClient(t, nav.Defaults{})

			var rec *httptest.ResponseRecorder
			for _, step := range tt.steps {
				rec = client.Do(http.MethodPost, step, "")
				require.Equal(t, http.StatusOK, rec.Code)
			}

			body := rec.Body.String()
			assert.Contains(t, body, "event: datastar-patch-elements")
			assert.Contains(t, body, `data-page="`+string(tt.wantPage)+`"`)

			if tt.wantState != nil {
				tt.wantState(t, workspaceOf(t, fixture, client).Nav.Snapshot())
			}
		})
	}
}

func TestToggleAssistant_RoundTrip(t *testing.T) {
	client, fixture := setupTestClient(t, nav.Defaults{})

	rec := client.Do(http.MethodPost, "/api/nav/ai", `{"aiOpen":true}`)
	body := rec.Body.String()
	assert.Contains(t, body, `class="shell ai-open"`)
	assert.Contains(t, body, `class="sidebar collapsed"`)
	assert.Contains(t, body, "event: datastar-patch-signals")
	assert.Contains(t, body, `"aiOpen":true`)

	st := workspaceOf(t, fixture, client).Nav.Snapshot()
	assert.True(t, st.SidebarCollapsedByAutomation)

	rec = client.Do(http.MethodPost, "/api/nav/ai", `{"aiOpen":false}`)
	assert.Contains(t, rec.Body.String(), `class="sidebar"`)
	assert.Contains(t, rec.Body.String(), `"aiOpen":false`)

	st = workspaceOf(t, fixture, client).Nav.Snapshot()
	assert.False(t, st.SidebarCollapsed)
	assert.False(t, st.SidebarCollapsedByAutomation)
}

func TestToggleAssistant_ManualOverrideWins(t *testing.T) {
	client, fixture := setupTestClient(t, nav.Defaults{})

	client.Do(http.MethodPost, "/api/nav/ai", `{"aiOpen":true}`)
	client.Do(http.MethodPost, "/api/nav/collapse", "")
	client.Do(http.MethodPost, "/api/nav/ai", `{"aiOpen":false}`)

	st := workspaceOf(t, fixture, client).Nav.Snapshot()
	assert.False(t, st.SidebarCollapsed)
	assert.False(t, st.AIAssistantOpen)
}

func TestToggleAssistant_WithoutSignalsFlips(t *testing.T) {
	client, fixture := setupTestClient(t, nav.Defaults{})

	client.Do(http.MethodPost, "/api/nav/ai", "")
	assert.True(t, workspaceOf(t, fixture, client).Nav.Snapshot().AIAssistantOpen)

	client.Do(http.MethodPost, "/api/nav/ai", "")
	assert.False(t, workspaceOf(t, fixture, client).Nav.Snapshot().AIAssistantOpen)
}

// =============================================================================
// Intro and notices
// =============================================================================

// getWithCookies sends a GET / to handler as a browser holding cookies would.
func getWithCookies(handler http.Handler, cookies []*http.Cookie) string {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Body.String()
}

func TestDismissIntro_PersistsInStore(t *testing.T) {
	client, fixture := setupTestClient(t, nav.Defaults{})
	client.Do(http.MethodGet, "/", "")
	// Cookies from before the dismissal carry the visitor ID only.
	visitorOnly := client.Cookies()

	rec := client.Do(http.MethodPost, "/api/intro/dismiss", "")
	assert.NotContains(t, rec.Body.String(), `id="intro"`)

	count, err := fixture.Intro.CountDismissed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// A restarted server has an empty registry but the same database.
	fixture.Registry = session.NewRegistry(nav.Defaults{})
	assert.NotContains(t, getWithCookies(newRouter(t, fixture, fixture.Intro), visitorOnly), `id="intro"`)
}

func TestDismissIntro_CookieOnly(t *testing.T) {
	fixture := features.SetupTestFixture(t, nav.Defaults{})
	client := features.NewClient(newRouter(t, fixture, nil))
	client.Do(http.MethodGet, "/", "")
	visitorOnly := client.Cookies()

	client.Do(http.MethodPost, "/api/intro/dismiss", "")

	count, err := fixture.Intro.CountDismissed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "nothing reaches the database without an intro store")

	fixture.Registry = session.NewRegistry(nav.Defaults{})
	restarted := newRouter(t, fixture, nil)
	assert.NotContains(t, getWithCookies(restarted, client.Cookies()), `id="intro"`, "the cookie remembers")

	fixture.Registry = session.NewRegistry(nav.Defaults{})
	restarted = newRouter(t, fixture, nil)
	assert.Contains(t, getWithCookies(restarted, visitorOnly), `id="intro"`, "an older cookie does not")
}

func TestDismissNotice(t *testing.T) {
	client, fixture := setupTestClient(t, nav.Defaults{})
	client.Do(http.MethodPost, "/api/nav/category/Logistics", "")
	client.Do(http.MethodPost, "/api/nav/item/Shipping", "")

	rec := client.Do(http.MethodPost, "/api/notices/shipping-pickup/dismiss", "")
	body := rec.Body.String()
	assert.NotContains(t, body, "notice-shipping-pickup")
	assert.Contains(t, body, "notice-shipping-customs")

	ws := workspaceOf(t, fixture, client)
	assert.Len(t, ws.Notices.List(pages.ShippingBoard), 1)

	// Unknown IDs re-render without error.
	rec = client.Do(http.MethodPost, "/api/notices/nope/dismiss", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

// =============================================================================
// ShellUpdates Tests - SSE endpoint for live updates only
// =============================================================================

func TestShellUpdates_NoInitialState(t *testing.T) {
	client, _ := setupTestClient(t, nav.Defaults{})
	client.Do(http.MethodGet, "/", "")

	req := httptest.NewRequest(http.MethodGet, "/updates", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 50*time.Millisecond)
	defer cancel()

	rec := client.Send(req.WithContext(ctx))

	assert.Equal(t, 0, strings.Count(rec.Body.String(), "event:"), "should have no SSE events without changes")
}

func TestShellUpdates_OtherTabSeesChange(t *testing.T) {
	client, fixture := setupTestClient(t, nav.Defaults{})
	client.Do(http.MethodGet, "/", "")
	visitor := visitorOf(t, fixture, client)
	tab := client.Fork()

	req := httptest.NewRequest(http.MethodGet, "/updates", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 500*time.Millisecond)
	defer cancel()

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- tab.Send(req.WithContext(ctx))
	}()

	require.Eventually(t, func() bool {
		return fixture.Notifier.Listeners(visitor) == 1
	}, time.Second, 5*time.Millisecond)

	client.Do(http.MethodPost, "/api/nav/category/Fulfilment", "")

	rec := <-done
	body := rec.Body.String()
	assert.GreaterOrEqual(t, strings.Count(body, "event:"), 1)
	assert.Contains(t, body, `data-page="FulfilmentMainPage"`)
	assert.Equal(t, 0, fixture.Notifier.Listeners(visitor), "listener is released when the tab closes")
}
