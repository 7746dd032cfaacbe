package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/lustre/internal/cli/output"
	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the page rule table for ambiguous or unreachable rules",
		Long: `Probe the page rule table with every category and sidebar item pair from
the sidebar catalog, each category with no item, and a few unknown values.

A probe matched by rules that resolve to different pages is ambiguous: only
rule order decides the outcome. A rule that never wins is unreachable.
Exits non-zero when any finding is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(NewCommandContext(cmd), pages.Default.Table(), pages.Probes())
		},
	}
}

func runCheck(cc *CommandContext, table pages.Table, probes []pages.Key) error {
	findings := table.Findings(probes)
	out := output.CheckOutput{
		Rules:    len(table),
		Probes:   len(probes),
		Findings: make([]output.FindingInfo, len(findings)),
	}
	for i, f := range findings {
		out.Findings[i] = findingInfo(f)
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
	} else {
		r.Header(1, "Page rules")
		r.KeyValue("rules", fmt.Sprint(out.Rules))
		r.KeyValue("probes", fmt.Sprint(out.Probes))
		r.Println()

		if len(findings) == 0 {
			r.Success("no ambiguous or unreachable rules")
			return nil
		}

		rows := make([][]string, len(out.Findings))
		for i, f := range out.Findings {
			rows[i] = []string{f.Kind, probeLabel(f), strings.Join(f.Rules, ", "), strings.Join(f.Pages, ", ")}
		}
		r.Table([]string{"Kind", "Probe", "Rules", "Pages"}, rows)
	}

	if len(findings) > 0 {
		return fmt.Errorf("%d rule table finding(s)", len(findings))
	}
	return nil
}

func findingInfo(f pages.Finding) output.FindingInfo {
	kind := "ambiguous"
	if errors.Is(f, pages.ErrUnreachable) {
		kind = "unreachable"
	}
	ids := make([]string, len(f.Pages))
	for i, p := range f.Pages {
		ids[i] = string(p)
	}
	return output.FindingInfo{
		Kind:     kind,
		Category: f.Key.Category,
		Item:     f.Key.Item,
		Rules:    f.Rules,
		Pages:    ids,
		Message:  f.Error(),
	}
}

func probeLabel(f output.FindingInfo) string {
	if f.Kind == "unreachable" {
		return "-"
	}
	if f.Item == "" {
		return f.Category
	}
	return f.Category + " / " + f.Item
}
