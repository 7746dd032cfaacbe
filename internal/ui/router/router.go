// Package router sets up HTTP routes for the UI server.
package router

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/leapstack-labs/lustre/internal/session"
	"github.com/leapstack-labs/lustre/internal/state"
	shellFeature "github.com/leapstack-labs/lustre/internal/ui/features/shell"
	"github.com/leapstack-labs/lustre/internal/ui/notifier"
	"github.com/leapstack-labs/lustre/internal/ui/resources"
)

// Deps are the services the routes share.
type Deps struct {
	Registry     *session.Registry
	Resolver     *pages.Resolver
	Intro        state.IntroStore
	SessionStore sessions.Store
	Notifier     *notifier.Notifier
	Reloader     *Reloader
	Logger       *slog.Logger
	IsDev        bool
}

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(router chi.Router, deps Deps) error {
	// Hot reload endpoint for dev mode
	if deps.IsDev {
		if deps.Reloader == nil {
			deps.Reloader = NewReloader()
		}
		deps.Reloader.setup(router)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	return shellFeature.SetupRoutes(
		router,
		deps.Registry,
		deps.Resolver,
		deps.Intro,
		deps.SessionStore,
		deps.Notifier,
		deps.Logger,
		deps.IsDev,
	)
}

// Reloader tells dev-mode browsers to reload the page.
type Reloader struct {
	ch   chan struct{}
	once sync.Once
}

// NewReloader creates a Reloader.
func NewReloader() *Reloader {
	return &Reloader{ch: make(chan struct{}, 1)}
}

// Trigger asks one waiting browser to reload. It never blocks.
func (rl *Reloader) Trigger() {
	select {
	case rl.ch <- struct{}{}:
	default:
	}
}

func (rl *Reloader) setup(router chi.Router) {
	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		// The first connection after a server restart reloads right away.
		rl.once.Do(reload)
		select {
		case <-rl.ch:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		rl.Trigger()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
