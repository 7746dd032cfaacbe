// Package config provides shared configuration defaults for Lustre.
// It is decoupled from CLI concerns so the server and the terminal shells
// agree on the same values.
package config

import (
	"time"

	"github.com/leapstack-labs/lustre/internal/nav"
)

// Default configuration values.
const (
	DefaultCategory    = nav.DefaultCategory
	DefaultTeam        = nav.DefaultTeam
	DefaultStateFile   = ".lustre/state.db"
	DefaultPort        = 8765
	DefaultIdleTimeout = 30 * time.Minute
)

// Intro store backends.
const (
	IntroStoreSQLite = "sqlite"
	IntroStoreMemory = "memory"
)

// IntroStores lists the accepted intro_store values.
var IntroStores = []string{IntroStoreSQLite, IntroStoreMemory}

// NavDefaults builds the seed for new navigation stores. Values are used
// verbatim; empty ones fall back to the nav defaults.
func NavDefaults(category, team string, darkMode bool) nav.Defaults {
	return nav.Defaults{Category: category, Team: team, DarkMode: darkMode}
}
