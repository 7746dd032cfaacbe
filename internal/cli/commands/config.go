package commands

import (
	"fmt"

	"github.com/leapstack-labs/lustre/internal/cli/config"
	"github.com/leapstack-labs/lustre/internal/cli/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after defaults, lustre.yaml, LUSTRE_* environment
variables and flags have been merged. The session secret is redacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(NewCommandContext(cmd))
		},
	}
}

func runConfig(cc *CommandContext) error {
	effective := *cc.Cfg
	ui := *effective.GetUIConfig()
	if ui.SessionSecret != "" {
		ui.SessionSecret = "********"
	}
	effective.UI = &ui

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(effective)
	}

	data, err := yaml.Marshal(effective)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if file := config.GetConfigFileUsed(); file != "" {
		r.Muted("# " + file)
	} else {
		r.Muted("# no config file, using defaults")
	}
	r.Printf("%s", data)
	return nil
}
