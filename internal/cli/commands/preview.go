package commands

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/leapstack-labs/lustre/internal/notice"
	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/leapstack-labs/lustre/internal/ui/components"
	"github.com/spf13/cobra"
)

// PreviewOptions holds options for the preview command.
type PreviewOptions struct {
	Team string
	HTML bool
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	opts := &PreviewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <category> [item]",
		Short: "Render the page a navigation pair resolves to",
		Long: `Render the page content and notices the shell would show for a category
and sidebar item. Output is converted to Markdown unless --html is given.`,
		Example: `  lustre preview Home --team Atelier
  lustre preview Logistics Shipping
  lustre preview Orders Overview --html`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, item := args[0], ""
			if len(args) > 1 {
				item = args[1]
			}
			cc := NewCommandContext(cmd)
			team := opts.Team
			if team == "" {
				team = cc.NavDefaults().Team
			}
			return runPreview(cmd.Context(), cc, category, item, team, opts.HTML)
		},
	}

	cmd.Flags().StringVar(&opts.Team, "team", "", "Team shown on the home page (default: initial_team)")
	cmd.Flags().BoolVar(&opts.HTML, "html", false, "Print the rendered HTML instead of Markdown")

	return cmd
}

func runPreview(ctx context.Context, cc *CommandContext, category, item, team string, rawHTML bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	html, err := renderPreview(ctx, category, item, team)
	if err != nil {
		return err
	}
	if rawHTML {
		cc.Renderer.Println(html)
		return nil
	}

	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return fmt.Errorf("failed to convert page to markdown: %w", err)
	}
	cc.Renderer.Println(strings.TrimSpace(md))
	return nil
}

// renderPreview renders the page and its default notices.
func renderPreview(ctx context.Context, category, item, team string) (string, error) {
	d := pages.Resolve(category, item)

	var buf bytes.Buffer
	if err := components.Notices(d.ID, notice.Defaults(d.ID)).Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("failed to render notices: %w", err)
	}
	if err := components.Page(d, team).Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}
