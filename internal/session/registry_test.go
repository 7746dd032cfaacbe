package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/notice"
	"github.com/leapstack-labs/lustre/internal/pages"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestRegistry_Ensure(t *testing.T) {
	r := NewRegistry(nav.Defaults{Category: nav.CategoryCRM, Team: "Atelier"})

	ws, created := r.Ensure("v1")
	require.True(t, created)
	assert.Equal(t, "v1", ws.ID)
	assert.Equal(t, nav.CategoryCRM, ws.Nav.Snapshot().Category)
	assert.Equal(t, "Atelier", ws.Nav.Snapshot().Team)
	assert.Len(t, ws.Notices.List(pages.ShippingBoard), 2)

	again, created := r.Ensure("v1")
	assert.False(t, created)
	assert.Same(t, ws, again)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_WorkspacesAreIsolated(t *testing.T) {
	r := NewRegistry(nav.Defaults{})
	a, _ := r.Ensure("a")
	b, _ := r.Ensure("b")

	a.Nav.SetCategory(nav.CategoryOrders)
	a.Notices.Dismiss(pages.HomePage, "home-metal-prices")

	assert.Equal(t, nav.DefaultCategory, b.Nav.Snapshot().Category)
	assert.Len(t, b.Notices.List(pages.HomePage), 1)
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry(nav.Defaults{})
	_, ok := r.Get("missing")
	assert.False(t, ok)

	r.Ensure("present")
	ws, ok := r.Get("present")
	require.True(t, ok)
	assert.Equal(t, "present", ws.ID)
}

func TestRegistry_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	r := NewRegistry(nav.Defaults{}, WithClock(clock.Now))

	r.Ensure("stale")
	clock.Advance(20 * time.Minute)
	r.Ensure("fresh")
	clock.Advance(15 * time.Minute)

	dropped := r.Sweep(30 * time.Minute)
	assert.Equal(t, []string{"stale"}, dropped)

	_, ok := r.Get("fresh")
	assert.True(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_EnsureRefreshesLastSeen(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	r := NewRegistry(nav.Defaults{}, WithClock(clock.Now))

	ws, _ := r.Ensure("v1")
	clock.Advance(time.Hour)
	r.Ensure("v1")

	assert.Equal(t, clock.Now(), ws.LastSeen())
	assert.Empty(t, r.Sweep(30*time.Minute))
}

func TestRegistry_WithNotices(t *testing.T) {
	r := NewRegistry(nav.Defaults{}, WithNotices(func() *notice.Board { return notice.NewBoard(nil) }))
	ws, _ := r.Ensure("v1")
	assert.Empty(t, ws.Notices.List(pages.ShippingBoard))
}

func TestWorkspace_IntroFlag(t *testing.T) {
	r := NewRegistry(nav.Defaults{})
	ws, _ := r.Ensure("v1")

	assert.False(t, ws.IntroDismissed())
	ws.SetIntroDismissed(true)
	assert.True(t, ws.IntroDismissed())
}

func TestRegistry_ConcurrentEnsure(t *testing.T) {
	r := NewRegistry(nav.Defaults{})

	var wg sync.WaitGroup
	results := make([]*Workspace, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = r.Ensure("shared")
		}(i)
	}
	wg.Wait()

	for _, ws := range results {
		assert.Same(t, results[0], ws)
	}
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SetDefaults(t *testing.T) {
	r := NewRegistry(nav.Defaults{Category: nav.CategoryOrders})
	before, _ := r.Ensure("before")

	r.SetDefaults(nav.Defaults{Category: nav.CategoryReports, Team: "Wholesale"})
	after, _ := r.Ensure("after")

	assert.Equal(t, nav.CategoryOrders, before.Nav.Snapshot().Category)
	assert.Equal(t, nav.CategoryReports, after.Nav.Snapshot().Category)
	assert.Equal(t, "Wholesale", r.Defaults().Team)
}
