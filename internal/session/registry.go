// Package session keeps the in-memory workspace of every connected visitor.
//
// A workspace bundles the visitor's navigation store and notice board. It
// lives as long as the visitor keeps interacting and is dropped after an idle
// timeout; nothing in it is persisted.
package session

import (
	"sync"
	"time"

	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/notice"
)

// Workspace is one visitor's shell state.
type Workspace struct {
	ID      string
	Nav     *nav.Store
	Notices *notice.Board

	mu       sync.Mutex
	lastSeen time.Time
	intro    bool
}

// LastSeen returns when the workspace was last touched.
func (w *Workspace) LastSeen() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// IntroDismissed reports whether the visitor dismissed the intro.
func (w *Workspace) IntroDismissed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.intro
}

// SetIntroDismissed records the intro flag loaded or written for the visitor.
func (w *Workspace) SetIntroDismissed(v bool) {
	w.mu.Lock()
	w.intro = v
	w.mu.Unlock()
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

// Registry maps visitor IDs to workspaces. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	workspaces map[string]*Workspace
	defaults   nav.Defaults
	seeds      func() *notice.Board
	now        func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the registry's time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithNotices overrides how new notice boards are built.
func WithNotices(newBoard func() *notice.Board) Option {
	return func(r *Registry) { r.seeds = newBoard }
}

// NewRegistry creates a registry whose new workspaces start from defaults.
func NewRegistry(defaults nav.Defaults, opts ...Option) *Registry {
	r := &Registry{
		workspaces: make(map[string]*Workspace),
		defaults:   defaults,
		seeds:      func() *notice.Board { return notice.NewBoard(notice.Defaults) },
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ensure returns the visitor's workspace, creating it on first use.
// created reports whether the workspace is new.
func (r *Registry) Ensure(id string) (ws *Workspace, created bool) {
	now := r.now()

	r.mu.RLock()
	ws, ok := r.workspaces[id]
	r.mu.RUnlock()
	if ok {
		ws.touch(now)
		return ws, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ws, ok := r.workspaces[id]; ok {
		ws.touch(now)
		return ws, false
	}
	ws = &Workspace{
		ID:       id,
		Nav:      nav.NewStore(r.defaults),
		Notices:  r.seeds(),
		lastSeen: now,
	}
	r.workspaces[id] = ws
	return ws, true
}

// SetDefaults changes the seed of workspaces created from now on.
// Existing workspaces keep their state.
func (r *Registry) SetDefaults(d nav.Defaults) {
	r.mu.Lock()
	r.defaults = d
	r.mu.Unlock()
}

// Defaults returns the seed of new workspaces.
func (r *Registry) Defaults() nav.Defaults {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults
}

// Get returns the visitor's workspace without creating it.
func (r *Registry) Get(id string) (*Workspace, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.workspaces[id]
	return ws, ok
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workspaces)
}

// Sweep drops workspaces idle for longer than idle and returns their IDs.
func (r *Registry) Sweep(idle time.Duration) []string {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	var dropped []string
	for id, ws := range r.workspaces {
		if ws.LastSeen().Before(cutoff) {
			delete(r.workspaces, id)
			dropped = append(dropped, id)
		}
	}
	return dropped
}
