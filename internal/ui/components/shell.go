package components

import (
	"context"
	"slices"

	"github.com/a-h/templ"

	"github.com/leapstack-labs/lustre/internal/nav"
	"github.com/leapstack-labs/lustre/internal/notice"
	"github.com/leapstack-labs/lustre/internal/pages"
)

// ShellID is the element id SSE patches replace.
const ShellID = "app-shell"

// ShellProps is everything the shell needs for one render.
type ShellProps struct {
	State     nav.State
	Page      pages.Descriptor
	Notices   []notice.Notice
	ShowIntro bool
	Sidebar   []pages.Section
	Teams     []string
}

// NewShellProps resolves the page for st and collects what the shell shows.
func NewShellProps(st nav.State, resolver *pages.Resolver, board *notice.Board, showIntro bool) ShellProps {
	if resolver == nil {
		resolver = pages.Default
	}
	d := resolver.Resolve(st.Category, st.SidebarItem)
	var notices []notice.Notice
	if board != nil {
		notices = board.List(d.ID)
	}
	return ShellProps{
		State:     st,
		Page:      d,
		Notices:   notices,
		ShowIntro: showIntro,
		Sidebar:   pages.Sidebar(),
		Teams:     nav.Teams,
	}
}

// Shell renders the whole application frame: top navigation, sidebar, page,
// assistant panel and intro overlay.
func Shell(p ShellProps) templ.Component {
	return build(func(ctx context.Context, h *html) {
		st := p.State
		h.rawf(`<div id="%s" class="`, ShellID)
		h.text(classes("shell", map[string]bool{"dark": st.DarkMode, "ai-open": st.AIAssistantOpen}))
		h.raw(`">`)
		h.render(ctx, Header(p))
		h.raw(`<div class="body">`)
		h.render(ctx, Sidebar(p))
		h.raw(`<main id="page-content">`)
		h.render(ctx, Notices(p.Page.ID, p.Notices))
		h.render(ctx, Page(p.Page, st.Team))
		h.raw(`</main>`)
		if st.AIAssistantOpen {
			h.render(ctx, Assistant(st.Category))
		}
		h.raw(`</div>`)
		if p.ShowIntro {
			h.render(ctx, Intro())
		}
		h.raw(`</div>`)
	})
}

// Header renders the category bar, team filter and toggles.
func Header(p ShellProps) templ.Component {
	return build(func(_ context.Context, h *html) {
		st := p.State
		h.raw(`<header class="topbar"><nav class="categories">`)
		for _, s := range p.Sidebar {
			h.raw(`<button class="`)
			h.text(classes("category", map[string]bool{"active": s.Category == st.Category}))
			h.raw(`" data-on:click="`)
			h.text(NavigateCategory(s.Category))
			h.raw(`">`)
			h.text(s.Category)
			h.raw(`</button>`)
		}
		h.raw(`</nav>`)

		h.raw(`<select class="team" data-on:change="@post('/api/nav/team/' + encodeURIComponent(evt.target.value))">`)
		teams := p.Teams
		if !slices.Contains(teams, st.Team) {
			teams = append([]string{st.Team}, teams...)
		}
		for _, team := range teams {
			h.raw(`<option value="`)
			h.text(team)
			h.raw(`"`)
			if team == st.Team {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(team)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)

		h.raw(`<button class="darkmode" data-on:click="@post('/api/nav/darkmode')">`)
		if st.DarkMode {
			h.raw(`Light`)
		} else {
			h.raw(`Dark`)
		}
		h.raw(`</button>`)
		h.raw(`<button class="ai-toggle" data-on:click="$aiOpen = !$aiOpen; @post('/api/nav/ai')">Assistant</button>`)
		h.raw(`</header>`)
	})
}

// Sidebar renders the items of the selected category.
func Sidebar(p ShellProps) templ.Component {
	return build(func(_ context.Context, h *html) {
		st := p.State
		h.raw(`<aside id="sidebar" class="`)
		h.text(classes("sidebar", map[string]bool{"collapsed": st.SidebarCollapsed}))
		h.raw(`"><button class="collapse" data-on:click="@post('/api/nav/collapse')">`)
		if st.SidebarCollapsed {
			h.raw(`&raquo;`)
		} else {
			h.raw(`&laquo;`)
		}
		h.raw(`</button><ul>`)
		for _, s := range p.Sidebar {
			if s.Category != st.Category {
				continue
			}
			for _, item := range s.Items {
				h.raw(`<li><button class="`)
				h.text(classes("item", map[string]bool{"active": item == st.SidebarItem}))
				h.raw(`" data-on:click="`)
				h.text(NavigateItem(item))
				h.raw(`">`)
				h.text(item)
				h.raw(`</button></li>`)
			}
		}
		h.raw(`</ul></aside>`)
	})
}

// Assistant renders the AI assistant panel for a department.
func Assistant(department string) templ.Component {
	return build(func(_ context.Context, h *html) {
		h.raw(`<aside id="ai-assistant" class="assistant"><h2>Assistant</h2><p>Ask anything about `)
		h.text(department)
		h.raw(`.</p><button data-on:click="$aiOpen = false; @post('/api/nav/ai')">Close</button></aside>`)
	})
}

// Intro renders the first-visit overlay.
func Intro() templ.Component {
	return build(func(_ context.Context, h *html) {
		h.raw(`<div id="intro" class="intro" role="dialog"><div class="intro-card">`)
		h.raw(`<h2>Welcome to Lustre</h2>`)
		h.raw(`<p>Pick a department above, drill in from the sidebar and open the assistant whenever you need a hand.</p>`)
		h.raw(`<button data-on:click="@post('/api/intro/dismiss')">Get started</button>`)
		h.raw(`</div></div>`)
	})
}
