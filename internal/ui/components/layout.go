package components

import (
	"context"

	"github.com/a-h/templ"
)

// DatastarScript is the client bundle the shell loads.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// Layout renders a full HTML document around body. The body element opens
// the /updates stream so server pushes reach the page; in dev mode it also
// listens on /reload.
func Layout(title string, isDev bool, body templ.Component) templ.Component {
	return build(func(ctx context.Context, h *html) {
		h.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` - Lustre</title>`)
		h.raw(`<link rel="stylesheet" href="/static/app.css">`)
		h.raw(`<script type="module" src="` + DatastarScript + `"></script>`)
		h.raw(`</head><body data-signals="{aiOpen: false}" data-init="@get('/updates')">`)
		h.render(ctx, body)
		if isDev {
			h.raw(`<div hidden data-init="@get('/reload')"></div>`)
		}
		h.raw(`</body></html>`)
	})
}
