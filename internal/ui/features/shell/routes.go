package shell

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/leapstack-labs/lustre/internal/session"
	"github.com/leapstack-labs/lustre/internal/state"
	"github.com/leapstack-labs/lustre/internal/ui/notifier"
)

// SetupRoutes configures routes for the shell feature.
func SetupRoutes(
	router chi.Router,
	registry *session.Registry,
	resolver *pages.Resolver,
	intro state.IntroStore,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	logger *slog.Logger,
	isDev bool,
) error {
	handlers := NewHandlers(registry, resolver, intro, sessionStore, notify, logger, isDev)

	router.Group(func(r chi.Router) {
		r.Use(handlers.Visitor)

		r.Get("/", handlers.ShellPage)
		r.Get("/updates", handlers.ShellUpdates)

		r.Route("/api", func(r chi.Router) {
			r.Post("/nav/category/{category}", handlers.SelectCategory)
			r.Post("/nav/item/{item}", handlers.SelectItem)
			r.Post("/nav/ai", handlers.ToggleAssistant)
			r.Post("/nav/collapse", handlers.ToggleCollapse)
			r.Post("/nav/darkmode", handlers.ToggleDarkMode)
			r.Post("/nav/team/{team}", handlers.SelectTeam)
			r.Post("/intro/dismiss", handlers.DismissIntro)
			r.Post("/notices/{id}/dismiss", handlers.DismissNotice)
		})
	})

	return nil
}
