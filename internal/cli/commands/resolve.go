package commands

import (
	"github.com/leapstack-labs/lustre/internal/cli/output"
	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <category> [item]",
		Short: "Show which page a category and sidebar item resolve to",
		Long: `Resolve a navigation pair to its page and print the rule that selected it.
Omitting the item resolves the category with no sidebar item selected.
Unknown values are accepted and fall through to the generic category page.`,
		Example: `  lustre resolve Orders Overview
  lustre resolve Logistics
  lustre resolve Reports "Sales Reports" -o json`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return pages.Categories(), cobra.ShellCompDirectiveNoFileComp
			case 1:
				return pages.ItemsFor(args[0]), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			category, item := args[0], ""
			if len(args) > 1 {
				item = args[1]
			}
			return runResolve(NewCommandContext(cmd), pages.Default, category, item)
		},
	}
}

func runResolve(cc *CommandContext, resolver *pages.Resolver, category, item string) error {
	d := resolver.Resolve(category, item)
	out := output.ResolveOutput{
		Category:    category,
		Item:        item,
		Page:        string(d.ID),
		Title:       d.Title,
		Description: d.Description,
		Rule:        d.Rule,
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	rule := out.Rule
	if rule == "" {
		rule = "(fallback)"
	}
	r.Header(2, out.Title)
	r.KeyValue("page", out.Page)
	r.KeyValue("rule", rule)
	if out.Description != "" {
		r.KeyValue("description", out.Description)
	}
	return nil
}
