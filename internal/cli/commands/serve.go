package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/leapstack-labs/lustre/internal/cli/config"
	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/ui"
	"github.com/spf13/cobra"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
	Dev       bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"ui"},
		Short:   "Start the dashboard shell web server",
		Long: `Start a local web server serving the dashboard shell.

Every browser gets its own navigation workspace, keyed by a session cookie.
Tabs of the same browser share the workspace and stay in sync over SSE.
With --watch, edits to lustre.yaml change the defaults for visitors that
arrive afterwards.`,
		Example: `  # Start on the default port
  lustre serve

  # Start on a custom port without opening a browser
  lustre serve --port 3000 --no-browser

  # Land new visitors on the orders overview
  lustre serve --category Orders`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch the config file for changes")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "Reload browsers when static assets change")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cc := NewCommandContext(cmd)
	uiCfg := cc.Cfg.GetUIConfig()

	// CLI flags override config file
	port := uiCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := uiCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := uiCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	intro, err := openIntroStore(cc.Cfg)
	if err != nil {
		return err
	}
	defer func() { _ = intro.Close() }()

	server := ui.NewServer(ui.Config{
		Defaults:       cc.NavDefaults(),
		Intro:          intro,
		Port:           port,
		Watch:          watch,
		Dev:            opts.Dev,
		SessionSecret:  uiCfg.SessionSecret,
		IdleTimeout:    uiCfg.IdleTimeout,
		Logger:         cc.Logger,
		ConfigFile:     config.GetConfigFileUsed(),
		ReloadDefaults: reloadDefaults,
	})

	if autoOpen {
		go openBrowser(fmt.Sprintf("http://localhost:%d", port))
	}

	cc.Renderer.Printf("Starting UI server on http://localhost:%d\n", port)
	cc.Renderer.Muted("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// reloadDefaults re-reads the config file the server was started with.
// Flags are not re-applied, so file edits win over the startup flags.
func reloadDefaults() (nav.Defaults, error) {
	cfg, err := config.LoadConfig(config.GetConfigFileUsed(), nil)
	if err != nil {
		return nav.Defaults{}, err
	}
	return navDefaults(cfg), nil
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
