package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/lustre/internal/cli/config"
	"github.com/leapstack-labs/lustre/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/lustre/internal/config"
	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/state"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(ctx),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// NavDefaults returns the seed for new navigation stores.
func (c *CommandContext) NavDefaults() nav.Defaults {
	return navDefaults(c.Cfg)
}

func navDefaults(cfg *config.Config) nav.Defaults {
	return sharedcfg.NavDefaults(cfg.InitialCategory, cfg.InitialTeam, cfg.GetUIConfig().DarkMode)
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		InitialCategory: getEnvOrDefault(config.EnvPrefix+"INITIAL_CATEGORY", config.DefaultCategory),
		InitialTeam:     getEnvOrDefault(config.EnvPrefix+"INITIAL_TEAM", config.DefaultTeam),
		StatePath:       getEnvOrDefault(config.EnvPrefix+"STATE_PATH", config.DefaultStateFile),
		IntroStore:      getEnvOrDefault(config.EnvPrefix+"INTRO_STORE", config.DefaultIntroStore),
		Verbose:         os.Getenv(config.EnvPrefix+"VERBOSE") == "true",
		OutputFormat:    os.Getenv(config.EnvPrefix + "OUTPUT"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// openIntroStore opens the configured intro store.
func openIntroStore(cfg *config.Config) (state.IntroStore, error) {
	if cfg.IntroStore == sharedcfg.IntroStoreMemory {
		return state.NewMemoryStore(), nil
	}

	stateDir := filepath.Dir(cfg.StatePath)
	if stateDir != "." && stateDir != "" {
		if err := os.MkdirAll(stateDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	store, err := state.OpenSQLite(cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	return store, nil
}

// stateOutput is the printable form of a navigation state.
func stateOutput(st nav.State, page string) output.StateOutput {
	return output.StateOutput{
		Category:                     st.Category,
		SidebarItem:                  st.SidebarItem,
		Team:                         st.Team,
		SidebarCollapsed:             st.SidebarCollapsed,
		SidebarCollapsedByAutomation: st.SidebarCollapsedByAutomation,
		AIAssistantOpen:              st.AIAssistantOpen,
		DarkMode:                     st.DarkMode,
		Page:                         page,
	}
}
