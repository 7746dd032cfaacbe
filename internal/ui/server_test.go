package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/state"
	"github.com/leapstack-labs/lustre/internal/testutil"
)

func TestServer_Handler(t *testing.T) {
	s := NewServer(Config{
		Defaults: nav.Defaults{Category: nav.CategoryOrders},
		Intro:    state.NewMemoryStore(),
		Logger:   testutil.NewTestLogger(t),
	})
	h, err := s.Handler()
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, s.Registry().Len())

	css, err := http.Get(srv.URL + "/static/app.css")
	require.NoError(t, err)
	_ = css.Body.Close()
	assert.Equal(t, http.StatusOK, css.StatusCode)
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	s := NewServer(Config{Port: 0, IdleTimeout: time.Minute, Logger: testutil.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestSweepInterval(t *testing.T) {
	assert.Equal(t, time.Second, sweepInterval(time.Second))
	assert.Equal(t, 30*time.Second, sweepInterval(2*time.Minute))
	assert.Equal(t, time.Minute, sweepInterval(time.Hour))
}

func TestServer_ApplyConfigChange(t *testing.T) {
	next := nav.Defaults{Category: nav.CategoryReports}
	var reloadErr error
	logger, logs := testutil.NewCaptureLogger()
	s := NewServer(Config{
		Defaults:       nav.Defaults{Category: nav.CategoryHome},
		ReloadDefaults: func() (nav.Defaults, error) { return next, reloadErr },
		Logger:         logger,
	})

	s.applyConfigChange()
	assert.Equal(t, nav.CategoryReports, s.Registry().Defaults().Category)

	next = nav.Defaults{Category: nav.CategoryCRM}
	reloadErr = errors.New("bad yaml")
	s.applyConfigChange()
	assert.Equal(t, nav.CategoryReports, s.Registry().Defaults().Category, "failed reloads keep the previous defaults")
	assert.Contains(t, logs.String(), "config reload failed")
	assert.Contains(t, logs.String(), "bad yaml")
}

func TestServer_WatchConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lustre.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_category: Home\n"), 0600))

	s := NewServer(Config{
		ConfigFile: path,
		ReloadDefaults: func() (nav.Defaults, error) {
			return nav.Defaults{Category: nav.CategoryLogistics}, nil
		},
		Logger: testutil.NewTestLogger(t),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watchFiles(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	// Keep writing until the watcher has registered and picked a change up.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("initial_category: Logistics\n"), 0600)
		return s.Registry().Defaults().Category == nav.CategoryLogistics
	}, 3*time.Second, 150*time.Millisecond)
}

func TestServer_DebounceKeepsKindsApart(t *testing.T) {
	s := NewServer(Config{Logger: testutil.NewTestLogger(t)})

	var configRuns, assetRuns atomic.Int32
	var configTimer, assetTimer *time.Timer
	configTimer = s.debounce(configTimer, "lustre.yaml", func() { configRuns.Add(1) })
	assetTimer = s.debounce(assetTimer, "app.css", func() { assetRuns.Add(1) })
	// A second asset save restarts only the asset timer.
	assetTimer = s.debounce(assetTimer, "app.css", func() { assetRuns.Add(1) })
	defer configTimer.Stop()
	defer assetTimer.Stop()

	require.Eventually(t, func() bool {
		return configRuns.Load() == 1 && assetRuns.Load() == 1
	}, time.Second, 10*time.Millisecond)
	time.Sleep(2 * debounceDelay)
	assert.Equal(t, int32(1), configRuns.Load())
	assert.Equal(t, int32(1), assetRuns.Load())
}
