package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/tui"
	"github.com/spf13/cobra"
)

// NewTUICommand creates the tui command.
func NewTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the dashboard shell in the terminal",
		Long: `Open the dashboard shell as a full-screen terminal UI.

Arrow keys switch categories and move through the sidebar, enter opens an
item, "a" toggles the AI assistant and "s" toggles the sidebar. Press ? for
the full key list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			cc.Logger.Debug("starting tui", "category", cc.Cfg.InitialCategory, "team", cc.Cfg.InitialTeam)
			return tui.Run(nav.NewStore(cc.NavDefaults()), tea.WithContext(cmd.Context()))
		},
	}
}
