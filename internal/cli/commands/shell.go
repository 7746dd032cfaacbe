package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/pages"
	"github.com/spf13/cobra"
)

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Drive the navigation state from a line-based shell",
		Long: `Start an interactive shell over a single navigation store.

Each command applies one transition and prints the resulting page, so the
assistant and sidebar coordination can be followed step by step.
Type .help inside the shell for the command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, NewCommandContext(cmd))
		},
	}
}

func runShell(cmd *cobra.Command, cc *CommandContext) error {
	store := nav.NewStore(cc.NavDefaults())

	historyFile := ""
	if dir := filepath.Dir(cc.Cfg.StatePath); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			historyFile = filepath.Join(dir, "shell_history")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt(store.Snapshot()),
		HistoryFile:     historyFile,
		AutoComplete:    newShellCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "Lustre navigation shell")
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := execShellLine(store, pages.Default, line, out)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		if quit {
			return nil
		}
		rl.SetPrompt(shellPrompt(store.Snapshot()))
	}
}

func shellPrompt(st nav.State) string {
	if st.HasSidebarItem() {
		return fmt.Sprintf("lustre[%s/%s]> ", st.Category, st.SidebarItem)
	}
	return fmt.Sprintf("lustre[%s]> ", st.Category)
}

// execShellLine applies one shell line to store and writes the result to w.
// Names may contain spaces; everything after the command word is the argument.
func execShellLine(store *nav.Store, resolver *pages.Resolver, line string, w io.Writer) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	var st nav.State
	switch strings.ToLower(command) {
	case ".quit", ".exit":
		return true, nil
	case ".help":
		printShellHelp(w)
		return false, nil
	case "categories":
		for _, c := range pages.Categories() {
			_, _ = fmt.Fprintln(w, c)
		}
		return false, nil
	case "items":
		category := arg
		if category == "" {
			category = store.Snapshot().Category
		}
		for _, it := range pages.ItemsFor(category) {
			_, _ = fmt.Fprintln(w, it)
		}
		return false, nil
	case "category":
		if arg == "" {
			return false, errors.New("usage: category <name>")
		}
		st = store.SetCategory(arg)
	case "item":
		if arg == "" {
			return false, errors.New("usage: item <name>")
		}
		st = store.SetSidebarItem(arg)
	case "go":
		category, item, ok := strings.Cut(arg, "/")
		if !ok || strings.TrimSpace(category) == "" {
			return false, errors.New("usage: go <category>/<item>")
		}
		st = store.Navigate(strings.TrimSpace(category), strings.TrimSpace(item))
	case "team":
		if arg == "" {
			return false, errors.New("usage: team <name>")
		}
		st = store.SetTeam(arg)
	case "ai":
		switch strings.ToLower(arg) {
		case "on", "open":
			st = store.ToggleAIAssistant(true)
		case "off", "close":
			st = store.ToggleAIAssistant(false)
		case "", "toggle":
			st = store.ToggleAIAssistant(!store.Snapshot().AIAssistantOpen)
		default:
			return false, errors.New("usage: ai [on|off]")
		}
	case "collapse":
		st = store.ToggleSidebarCollapse()
	case "dark":
		st = store.ToggleDarkMode()
	case "state":
		printShellState(w, store.Snapshot(), resolver)
		return false, nil
	case "page":
		st = store.Snapshot()
	default:
		return false, fmt.Errorf("unknown command: %s (type .help for commands)", command)
	}

	printShellPage(w, st, resolver)
	return false, nil
}

func printShellPage(w io.Writer, st nav.State, resolver *pages.Resolver) {
	d := resolver.Resolve(st.Category, st.SidebarItem)
	_, _ = fmt.Fprintf(w, "-> %s (%s)\n", d.Title, d.ID)
}

func printShellState(w io.Writer, st nav.State, resolver *pages.Resolver) {
	d := resolver.Resolve(st.Category, st.SidebarItem)
	item := st.SidebarItem
	if item == "" {
		item = "-"
	}
	_, _ = fmt.Fprintf(w, "category:   %s\n", st.Category)
	_, _ = fmt.Fprintf(w, "item:       %s\n", item)
	_, _ = fmt.Fprintf(w, "team:       %s\n", st.Team)
	_, _ = fmt.Fprintf(w, "assistant:  %s\n", onOff(st.AIAssistantOpen))
	_, _ = fmt.Fprintf(w, "sidebar:    %s\n", sidebarLabel(st))
	_, _ = fmt.Fprintf(w, "dark mode:  %s\n", onOff(st.DarkMode))
	_, _ = fmt.Fprintf(w, "page:       %s\n", d.ID)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func sidebarLabel(st nav.State) string {
	switch {
	case st.SidebarCollapsedByAutomation:
		return "collapsed (automatic)"
	case st.SidebarCollapsed:
		return "collapsed"
	default:
		return "expanded"
	}
}

func printShellHelp(w io.Writer) {
	help := `
Commands:
  category <name>        Select a category
  item <name>            Select a sidebar item
  go <category>/<item>   Select both at once
  team <name>            Select the team filter
  ai [on|off]            Open, close or toggle the AI assistant
  collapse               Toggle the sidebar
  dark                   Toggle dark mode
  categories             List categories
  items [category]       List sidebar items
  state                  Show the full navigation state
  page                   Show the current page
  .help                  Show this help message
  .quit / .exit          Exit the shell
`
	_, _ = fmt.Fprintln(w, help)
}

// newShellCompleter completes command words, categories and items.
func newShellCompleter() *readline.PrefixCompleter {
	categories := func(string) []string { return pages.Categories() }
	items := func(string) []string {
		var all []string
		for _, s := range pages.Sidebar() {
			all = append(all, s.Items...)
		}
		return all
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("category", readline.PcItemDynamic(categories)),
		readline.PcItem("item", readline.PcItemDynamic(items)),
		readline.PcItem("items", readline.PcItemDynamic(categories)),
		readline.PcItem("go"),
		readline.PcItem("team", readline.PcItemDynamic(func(string) []string { return nav.Teams })),
		readline.PcItem("ai", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("collapse"),
		readline.PcItem("dark"),
		readline.PcItem("categories"),
		readline.PcItem("state"),
		readline.PcItem("page"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
