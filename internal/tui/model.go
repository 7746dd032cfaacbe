// Package tui is a terminal front end for the navigation store.
//
// It renders the same shell as the web UI: category tabs, the sidebar of the
// selected category, the resolved page and the assistant panel. Every key
// press maps to one store transition.
package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/notice"
	"github.com/leapstack-labs/lustre/internal/pages"
)

// Model is the bubbletea model of the terminal shell.
type Model struct {
	store    *nav.Store
	resolver *pages.Resolver
	board    *notice.Board
	keys     keyMap
	help     help.Model

	// cursor is the highlighted sidebar row; it follows the selected item.
	cursor int
	width  int
	height int
}

// New creates a model over store.
func New(store *nav.Store, resolver *pages.Resolver) Model {
	if resolver == nil {
		resolver = pages.Default
	}
	m := Model{
		store:    store,
		resolver: resolver,
		board:    notice.NewBoard(notice.Defaults),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.syncCursor()
	return m
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(store *nav.Store, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(store, nil), opts...).Run()
	return err
}

// State returns the current navigation state.
func (m Model) State() nav.State {
	return m.store.Snapshot()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.store.Snapshot()
	items := pages.ItemsFor(st.Category)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.PrevCategory):
		m.store.SetCategory(m.categoryAt(st.Category, -1))
		m.syncCursor()

	case key.Matches(msg, m.keys.NextCategory):
		m.store.SetCategory(m.categoryAt(st.Category, 1))
		m.syncCursor()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.cursor >= 0 && m.cursor < len(items) {
			m.store.SetSidebarItem(items[m.cursor])
		}

	case key.Matches(msg, m.keys.Clear):
		m.store.SetSidebarItem("")

	case key.Matches(msg, m.keys.Assistant):
		m.store.ToggleAIAssistant(!st.AIAssistantOpen)

	case key.Matches(msg, m.keys.Collapse):
		m.store.ToggleSidebarCollapse()

	case key.Matches(msg, m.keys.Dark):
		m.store.ToggleDarkMode()

	case key.Matches(msg, m.keys.Team):
		m.store.SetTeam(nextTeam(st.Team))
	}
	return m, nil
}

// categoryAt steps through the tab order. Categories outside the catalog
// step from the first tab.
func (m Model) categoryAt(current string, step int) string {
	cats := pages.Categories()
	i := slices.Index(cats, current)
	if i < 0 {
		return cats[0]
	}
	return cats[(i+step+len(cats))%len(cats)]
}

func nextTeam(current string) string {
	i := slices.Index(nav.Teams, current)
	return nav.Teams[(i+1)%len(nav.Teams)]
}

// syncCursor moves the cursor onto the selected sidebar item.
func (m *Model) syncCursor() {
	st := m.store.Snapshot()
	m.cursor = max(slices.Index(pages.ItemsFor(st.Category), st.SidebarItem), 0)
}

// View implements tea.Model.
func (m Model) View() string {
	st := m.store.Snapshot()
	s := newStyles(st.DarkMode)

	var b strings.Builder
	b.WriteString(m.tabs(s, st))
	b.WriteString("\n\n")

	var cols []string
	if !st.SidebarCollapsed {
		cols = append(cols, m.sidebar(s, st))
	}
	cols = append(cols, m.page(s, st))
	if st.AIAssistantOpen {
		cols = append(cols, s.Assistant.Render(s.Title.Render(st.Category+" Assistant")+"\n"+
			s.Muted.Render("Ask about "+strings.ToLower(st.Category)+"…")))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n\n")
	b.WriteString(s.Status.Render(statusLine(st)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) tabs(s styles, st nav.State) string {
	cats := pages.Categories()
	tabs := make([]string, 0, len(cats))
	for _, c := range cats {
		if c == st.Category {
			tabs = append(tabs, s.ActiveTab.Render(c))
		} else {
			tabs = append(tabs, s.Tab.Render(c))
		}
	}
	if !slices.Contains(cats, st.Category) {
		tabs = append(tabs, s.ActiveTab.Render(st.Category))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) sidebar(s styles, st nav.State) string {
	items := pages.ItemsFor(st.Category)
	if len(items) == 0 {
		return s.Sidebar.Render(s.Muted.Render("no sidebar items"))
	}
	lines := make([]string, len(items))
	for i, it := range items {
		prefix := "  "
		if i == m.cursor {
			prefix = s.Cursor.Render("> ")
		}
		label := s.Item.Render(it)
		if it == st.SidebarItem {
			label = s.Selected.Render(it)
		}
		lines[i] = prefix + label
	}
	return s.Sidebar.Render(strings.Join(lines, "\n"))
}

func (m Model) page(s styles, st nav.State) string {
	d := m.resolver.Resolve(st.Category, st.SidebarItem)

	var b strings.Builder
	for _, n := range m.board.List(d.ID) {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(n.Color)).
			Background(lipgloss.Color(n.BackgroundColor)).
			Render(" "+n.Message+" "))
		b.WriteString("\n")
	}

	title := d.Title
	if d.ID == pages.DepartmentAgentPage {
		title = d.Department + " Assistant"
	}
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")
	if d.ID == pages.HomePage {
		b.WriteString("Showing " + st.Team + "\n")
	}
	if d.Description != "" {
		b.WriteString(s.Muted.Render(d.Description))
		b.WriteString("\n")
	}
	if len(d.Links) > 0 {
		b.WriteString("\n" + s.Muted.Render("Related: "+strings.Join(d.Links, ", ")))
	}
	return s.Main.Render(b.String())
}

func statusLine(st nav.State) string {
	sidebar := "expanded"
	switch {
	case st.SidebarCollapsedByAutomation:
		sidebar = "collapsed (auto)"
	case st.SidebarCollapsed:
		sidebar = "collapsed"
	}
	theme := "light"
	if st.DarkMode {
		theme = "dark"
	}
	return "team: " + st.Team + " · sidebar: " + sidebar + " · theme: " + theme
}
