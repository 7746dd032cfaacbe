// Package components renders the dashboard shell as templ components.
//
// Components are plain templ.ComponentFunc values so they can be streamed by
// templ.Handler, patched over SSE with PatchElementTempl, or rendered to a
// buffer for the CLI preview.
package components

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// html accumulates writes and keeps the first error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

// text writes s escaped for element content and attribute values.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// build wraps a write sequence into a component.
func build(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}

// post returns the datastar action posting to path segments joined under /api.
func post(segments ...string) string {
	p := "/api"
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return "@post('" + p + "')"
}

// NavigateItem is the action a page link runs to select a sidebar item.
func NavigateItem(item string) string { return post("nav", "item", item) }

// NavigateCategory is the action a top navigation button runs.
func NavigateCategory(category string) string { return post("nav", "category", category) }

func classes(base string, extra map[string]bool) string {
	out := base
	for _, name := range []string{"active", "collapsed", "dark", "ai-open"} {
		if extra[name] {
			out += " " + name
		}
	}
	return out
}
