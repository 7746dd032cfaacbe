// Package config provides configuration management for the Lustre CLI.
//
// Values come from, lowest to highest precedence: built-in defaults, the
// lustre.yaml project file, LUSTRE_* environment variables and CLI flags.
package config

import (
	"time"

	sharedcfg "github.com/leapstack-labs/lustre/internal/config"
)

// UIConfig holds configuration for the UI server.
type UIConfig struct {
	Port          int           `koanf:"port" yaml:"port"`
	AutoOpen      bool          `koanf:"auto_open" yaml:"auto_open"`
	Watch         bool          `koanf:"watch" yaml:"watch"`
	SessionSecret string        `koanf:"session_secret" yaml:"session_secret,omitempty"`
	IdleTimeout   time.Duration `koanf:"idle_timeout" yaml:"idle_timeout"`
	DarkMode      bool          `koanf:"dark_mode" yaml:"dark_mode"`
}

// DefaultUIConfig returns a UIConfig with default values.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Port:        sharedcfg.DefaultPort,
		AutoOpen:    true,
		Watch:       true,
		IdleTimeout: sharedcfg.DefaultIdleTimeout,
	}
}

// GetUIConfig returns the UI config with defaults applied for any unset values.
func (c *Config) GetUIConfig() *UIConfig {
	if c.UI == nil {
		return DefaultUIConfig()
	}
	ui := c.UI
	if ui.Port == 0 {
		ui.Port = sharedcfg.DefaultPort
	}
	if ui.IdleTimeout == 0 {
		ui.IdleTimeout = sharedcfg.DefaultIdleTimeout
	}
	return ui
}

// Config holds all CLI configuration options.
type Config struct {
	// InitialCategory and InitialTeam seed every new navigation store.
	// They are taken verbatim.
	InitialCategory string    `koanf:"initial_category" yaml:"initial_category"`
	InitialTeam     string    `koanf:"initial_team" yaml:"initial_team"`
	StatePath       string    `koanf:"state_path" yaml:"state_path"`
	IntroStore      string    `koanf:"intro_store" yaml:"intro_store"`
	Verbose         bool      `koanf:"verbose" yaml:"verbose"`
	OutputFormat    string    `koanf:"output" yaml:"output"`
	UI              *UIConfig `koanf:"ui" yaml:"ui,omitempty"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-" yaml:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultCategory   = sharedcfg.DefaultCategory
	DefaultTeam       = sharedcfg.DefaultTeam
	DefaultStateFile  = sharedcfg.DefaultStateFile
	DefaultIntroStore = sharedcfg.IntroStoreSQLite
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
