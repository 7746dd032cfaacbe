// Package ui serves the Lustre dashboard shell over HTTP.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/leapstack-labs/lustre/internal/session"
	"github.com/leapstack-labs/lustre/internal/state"
	"github.com/leapstack-labs/lustre/internal/ui/notifier"
	"github.com/leapstack-labs/lustre/internal/ui/resources"
	"github.com/leapstack-labs/lustre/internal/ui/router"
)

// Server is the main UI server.
type Server struct {
	registry     *session.Registry
	intro        state.IntroStore
	sessionStore *sessions.CookieStore
	notifier     *notifier.Notifier
	reloader     *router.Reloader
	logger       *slog.Logger

	port           int
	watch          bool
	dev            bool
	idleTimeout    time.Duration
	configFile     string
	reloadDefaults func() (nav.Defaults, error)
}

// Config holds configuration for the UI server.
type Config struct {
	// Defaults seed every new visitor's navigation state.
	Defaults nav.Defaults
	// Intro persists intro dismissals. Nil keeps them in the cookie only.
	Intro state.IntroStore
	Port  int
	Watch bool
	Dev   bool
	// SessionSecret signs the visitor cookie. Empty generates a random key,
	// which logs every visitor out on restart.
	SessionSecret string
	IdleTimeout   time.Duration
	Logger        *slog.Logger

	// ConfigFile is watched when Watch is set; changes re-run ReloadDefaults
	// and apply to visitors arriving afterwards.
	ConfigFile     string
	ReloadDefaults func() (nav.Defaults, error)
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		secret = securecookie.GenerateRandomKey(32)
	}
	sessionStore := sessions.NewCookieStore(secret)
	sessionStore.MaxAge(86400 * 365)
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		registry:       session.NewRegistry(cfg.Defaults),
		intro:          cfg.Intro,
		sessionStore:   sessionStore,
		notifier:       notifier.New(),
		reloader:       router.NewReloader(),
		logger:         logger,
		port:           cfg.Port,
		watch:          cfg.Watch,
		dev:            cfg.Dev,
		idleTimeout:    cfg.IdleTimeout,
		configFile:     cfg.ConfigFile,
		reloadDefaults: cfg.ReloadDefaults,
	}
}

// Handler builds the server's HTTP handler.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	err := router.SetupRoutes(r, router.Deps{
		Registry:     s.registry,
		Resolver:     pages.Default,
		Intro:        s.intro,
		SessionStore: s.sessionStore,
		Notifier:     s.notifier,
		Reloader:     s.reloader,
		Logger:       s.logger,
		IsDev:        s.dev,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting UI server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	if s.idleTimeout > 0 {
		eg.Go(func() error {
			s.sweepIdle(egctx)
			return nil
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Registry returns the visitor workspaces.
func (s *Server) Registry() *session.Registry {
	return s.registry
}

const debounceDelay = 100 * time.Millisecond

// sweepInterval checks four times per idle period, between one second and
// one minute apart.
func sweepInterval(idle time.Duration) time.Duration {
	return min(max(idle/4, time.Second), time.Minute)
}

// sweepIdle drops idle workspaces until ctx is done.
func (s *Server) sweepIdle(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval(s.idleTimeout))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dropped := s.registry.Sweep(s.idleTimeout); len(dropped) > 0 {
				s.logger.Debug("dropped idle workspaces", "count", len(dropped), "live", s.registry.Len())
			}
		}
	}
}

// watchFiles watches the config file and, in dev builds, the static assets.
// Config changes re-seed new workspaces; asset changes reload open browsers.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	staticDir := resources.Dir()
	if staticDir != "" {
		if err := watcher.Add(staticDir); err != nil {
			s.logger.Error("failed to watch static assets", "error", err)
		}
	}
	configFile := ""
	if s.configFile != "" && s.reloadDefaults != nil {
		configFile, _ = filepath.Abs(s.configFile)
		// Editors replace files on save, so watch the directory.
		if err := watcher.Add(filepath.Dir(configFile)); err != nil {
			s.logger.Error("failed to watch config file", "error", err)
		}
	}

	// One timer per kind, so an asset save never swallows a config reload.
	var configTimer, assetTimer *time.Timer
	defer func() {
		for _, t := range []*time.Timer{configTimer, assetTimer} {
			if t != nil {
				t.Stop()
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			switch {
			case configFile != "" && filepath.Clean(event.Name) == configFile:
				configTimer = s.debounce(configTimer, event.Name, s.applyConfigChange)
			case staticDir != "" && filepath.Dir(event.Name) == staticDir:
				assetTimer = s.debounce(assetTimer, event.Name, s.applyAssetChange)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// debounce restarts timer so apply runs once changes to name settle.
func (s *Server) debounce(timer *time.Timer, name string, apply func()) *time.Timer {
	if timer != nil {
		timer.Stop()
	}
	return time.AfterFunc(debounceDelay, func() {
		s.logger.Debug("file changed", "file", name)
		apply()
	})
}

func (s *Server) applyConfigChange() {
	d, err := s.reloadDefaults()
	if err != nil {
		s.logger.Error("config reload failed, keeping previous defaults", "error", err)
		return
	}
	s.registry.SetDefaults(d)
	s.logger.Info("config reloaded", "category", d.Category, "team", d.Team)
}

func (s *Server) applyAssetChange() {
	s.reloader.Trigger()
	s.notifier.BroadcastAll()
}
