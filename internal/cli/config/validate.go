package config

import (
	"fmt"
	"slices"
	"strings"

	sharedcfg "github.com/leapstack-labs/lustre/internal/config"
)

// OutputFormats lists the accepted values of the output setting.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
// Category and team are free-form and never rejected.
func (c *Config) Validate() error {
	if !slices.Contains(sharedcfg.IntroStores, c.IntroStore) {
		return fmt.Errorf("invalid intro_store %q (expected one of: %s)",
			c.IntroStore, strings.Join(sharedcfg.IntroStores, ", "))
	}
	if c.OutputFormat != "" && !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output %q (expected one of: %s)",
			c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if c.IntroStore == sharedcfg.IntroStoreSQLite && c.StatePath == "" {
		return fmt.Errorf("state_path is required when intro_store is %q", sharedcfg.IntroStoreSQLite)
	}
	if c.UI != nil && (c.UI.Port < 0 || c.UI.Port > 65535) {
		return fmt.Errorf("invalid ui.port %d", c.UI.Port)
	}
	return nil
}
