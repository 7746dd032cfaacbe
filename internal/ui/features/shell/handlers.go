package shell

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/leapstack-labs/lustre/internal/session"
	"github.com/leapstack-labs/lustre/internal/state"
	"github.com/leapstack-labs/lustre/internal/ui/components"
	"github.com/leapstack-labs/lustre/internal/ui/notifier"
)

// Handlers provides HTTP handlers for the shell feature.
type Handlers struct {
	registry     *session.Registry
	resolver     *pages.Resolver
	intro        state.IntroStore
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	logger       *slog.Logger
	isDev        bool
}

// NewHandlers creates a new Handlers instance. A nil intro store keeps the
// intro flag in the session cookie only.
func NewHandlers(
	registry *session.Registry,
	resolver *pages.Resolver,
	intro state.IntroStore,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	logger *slog.Logger,
	isDev bool,
) *Handlers {
	if resolver == nil {
		resolver = pages.Default
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		registry:     registry,
		resolver:     resolver,
		intro:        intro,
		sessionStore: sessionStore,
		notifier:     notify,
		logger:       logger,
		isDev:        isDev,
	}
}

// ShellPage renders the full page for the visitor's current state.
func (h *Handlers) ShellPage(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r)
	props := h.props(ws)

	page := components.Layout(props.Page.Title, h.isDev, components.Shell(props))
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ShellUpdates is the long-lived SSE endpoint of a tab. It re-renders the
// shell whenever the visitor's workspace changes, from this tab or another.
// The initial state is rendered by ShellPage.
func (h *Handlers) ShellUpdates(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r)
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe(ws.ID)
	defer h.notifier.Unsubscribe(ws.ID, updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			// The workspace may have been swept and recreated meanwhile.
			ws = h.workspace(r)
			if err := h.sendShell(sse, ws); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

// SelectCategory switches the top-level category.
func (h *Handlers) SelectCategory(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r)
	st := ws.Nav.SetCategory(pathParam(r, "category"))
	h.logger.Debug("category selected", "visitor", ws.ID, "category", st.Category, "item", st.SidebarItem)
	h.respond(w, r, ws)
}

// SelectItem switches the sidebar item.
func (h *Handlers) SelectItem(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r)
	st := ws.Nav.SetSidebarItem(pathParam(r, "item"))
	h.logger.Debug("item selected", "visitor", ws.ID, "category", st.Category, "item", st.SidebarItem)
	h.respond(w, r, ws)
}

// SelectTeam switches the team filter.
func (h *Handlers) SelectTeam(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r)
	ws.Nav.SetTeam(pathParam(r, "team"))
	h.respond(w, r, ws)
}

// ToggleAssistant opens or closes the AI assistant. The aiOpen signal gives
// the requested state; without it the current state flips.
func (h *Handlers) ToggleAssistant(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals NavSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.logger.Debug("no assistant signal, toggling", "error", err)
	}

	ws := h.workspace(r)
	open := !ws.Nav.Snapshot().AIAssistantOpen
	if signals.AIOpen != nil {
		open = *signals.AIOpen
	}
	st := ws.Nav.ToggleAIAssistant(open)
	h.logger.Debug("assistant toggled", "visitor", ws.ID, "open", st.AIAssistantOpen, "collapsed", st.SidebarCollapsed)

	sse := datastar.NewSSE(w, r)
	if err := h.sendShell(sse, ws); err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.MarshalAndPatchSignals(map[string]any{"aiOpen": st.AIAssistantOpen}); err != nil {
		_ = sse.ConsoleError(err)
	}
	h.notifier.Broadcast(ws.ID)
}

// ToggleCollapse flips the sidebar by hand.
func (h *Handlers) ToggleCollapse(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r)
	ws.Nav.ToggleSidebarCollapse()
	h.respond(w, r, ws)
}

// ToggleDarkMode flips the theme.
func (h *Handlers) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r)
	ws.Nav.ToggleDarkMode()
	h.respond(w, r, ws)
}

// DismissIntro hides the intro overlay for good. The flag is written to the
// session cookie and, when configured, to the intro store.
func (h *Handlers) DismissIntro(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r)
	if !ws.IntroDismissed() {
		if err := h.saveIntroCookie(w, r); err != nil {
			h.logger.Warn("failed to save intro cookie", "visitor", ws.ID, "error", err)
		}
		if h.intro != nil {
			if err := h.intro.DismissIntro(r.Context(), ws.ID); err != nil {
				h.logger.Warn("failed to persist intro dismissal", "visitor", ws.ID, "error", err)
			}
		}
		ws.SetIntroDismissed(true)
	}
	h.respond(w, r, ws)
}

// DismissNotice removes a notice from whichever page shows it.
func (h *Handlers) DismissNotice(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r)
	id := pathParam(r, "id")
	if page, ok := ws.Notices.DismissAny(id); ok {
		h.logger.Debug("notice dismissed", "visitor", ws.ID, "page", page, "notice", id)
	}
	h.respond(w, r, ws)
}

// workspace returns the visitor's workspace, loading the intro flag when it
// is created.
func (h *Handlers) workspace(r *http.Request) *session.Workspace {
	ws, created := h.registry.Ensure(VisitorID(r.Context()))
	if created {
		ws.SetIntroDismissed(h.introDismissed(r, ws.ID))
	}
	return ws
}

func (h *Handlers) introDismissed(r *http.Request, visitor string) bool {
	if h.cookieIntroDismissed(r) {
		return true
	}
	if h.intro == nil {
		return false
	}
	dismissed, err := h.intro.IntroDismissed(r.Context(), visitor)
	if err != nil {
		h.logger.Warn("failed to read intro flag", "visitor", visitor, "error", err)
		return false
	}
	return dismissed
}

func (h *Handlers) props(ws *session.Workspace) components.ShellProps {
	return components.NewShellProps(ws.Nav.Snapshot(), h.resolver, ws.Notices, !ws.IntroDismissed())
}

// respond patches the shell into the calling tab and pings the visitor's
// other tabs.
func (h *Handlers) respond(w http.ResponseWriter, r *http.Request, ws *session.Workspace) {
	sse := datastar.NewSSE(w, r)
	if err := h.sendShell(sse, ws); err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	h.notifier.Broadcast(ws.ID)
}

func (h *Handlers) sendShell(sse *datastar.ServerSentEventGenerator, ws *session.Workspace) error {
	return sse.PatchElementTempl(components.Shell(h.props(ws)))
}

// pathParam returns a decoded chi URL parameter.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

