package commands

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/lustre/internal/cli/output"
	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/spf13/cobra"
)

// NewPagesCommand creates the pages command.
func NewPagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the page rule table and the sidebar",
		Long: `List the ordered rules that map a category and sidebar item to a page,
followed by the sidebar catalog. Rules are evaluated top to bottom and the
first match wins; pairs no rule matches get the generic category page.`,
		Example: `  lustre pages
  lustre pages -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPages(NewCommandContext(cmd), pages.Default)
		},
	}
}

func runPages(cc *CommandContext, resolver *pages.Resolver) error {
	out := pagesOutput(resolver.Table(), pages.Sidebar())
	r := cc.Renderer

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	r.Header(1, "Rules")
	rows := make([][]string, len(out.Rules))
	for i, rule := range out.Rules {
		rows[i] = []string{strconv.Itoa(rule.Index), rule.Name, rule.Page, rule.Title}
	}
	r.Table([]string{"#", "Rule", "Page", "Title"}, rows)
	r.Println()

	r.Header(1, "Sidebar")
	rows = make([][]string, len(out.Sidebar))
	for i, s := range out.Sidebar {
		rows[i] = []string{s.Category, strings.Join(s.Items, ", ")}
	}
	r.Table([]string{"Category", "Items"}, rows)
	return nil
}

func pagesOutput(table pages.Table, sidebar []pages.Section) output.PagesOutput {
	out := output.PagesOutput{
		Rules:   make([]output.RuleInfo, len(table)),
		Sidebar: make([]output.SectionInfo, len(sidebar)),
	}
	for i, rule := range table {
		meta, _ := pages.Lookup(rule.Page)
		out.Rules[i] = output.RuleInfo{
			Index: i + 1,
			Name:  rule.Name,
			Page:  string(rule.Page),
			Title: meta.Title,
		}
	}
	for i, s := range sidebar {
		items := s.Items
		if items == nil {
			items = []string{}
		}
		out.Sidebar[i] = output.SectionInfo{Category: s.Category, Items: items}
	}
	return out
}
