package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/leapstack-labs/lustre/internal/notice"
	"github.com/leapstack-labs/lustre/internal/pages"
)

// Page renders the content of a resolved page. Home receives the selected
// team, the department agent page receives the department name; every other
// page renders from its catalog description and links.
func Page(d pages.Descriptor, team string) templ.Component {
	return build(func(_ context.Context, h *html) {
		h.raw(`<section class="page" data-page="`)
		h.text(string(d.ID))
		h.raw(`">`)

		switch d.ID {
		case pages.HomePage:
			h.raw(`<h1>`)
			h.text(d.Title)
			h.raw(`</h1><p class="team">Showing `)
			h.text(team)
			h.raw(`</p>`)
		case pages.DepartmentAgentPage:
			h.raw(`<h1>`)
			h.text(d.Department)
			h.raw(` Assistant</h1>`)
		default:
			h.raw(`<h1>`)
			h.text(d.Title)
			h.raw(`</h1>`)
		}

		if d.Description != "" {
			h.raw(`<p class="description">`)
			h.text(d.Description)
			h.raw(`</p>`)
		}

		if len(d.Links) > 0 {
			h.raw(`<nav class="links">`)
			for _, item := range d.Links {
				h.raw(`<button data-on:click="`)
				h.text(NavigateItem(item))
				h.raw(`">`)
				h.text(item)
				h.raw(`</button>`)
			}
			h.raw(`</nav>`)
		}
		h.raw(`</section>`)
	})
}

// Notices renders the banners of a page. Nothing is written when the list
// is empty.
func Notices(page pages.PageID, list []notice.Notice) templ.Component {
	return build(func(_ context.Context, h *html) {
		if len(list) == 0 {
			return
		}
		h.raw(`<div class="notices" data-page="`)
		h.text(string(page))
		h.raw(`">`)
		for _, n := range list {
			h.raw(`<div class="notice" id="notice-`)
			h.text(n.ID)
			h.raw(`" style="color: `)
			h.text(n.Color)
			h.raw(`; background-color: `)
			h.text(n.BackgroundColor)
			h.raw(`"><span>`)
			h.text(n.Message)
			h.raw(`</span><button aria-label="Dismiss" data-on:click="`)
			h.text(post("notices", n.ID, "dismiss"))
			h.raw(`">&times;</button></div>`)
		}
		h.raw(`</div>`)
	})
}
