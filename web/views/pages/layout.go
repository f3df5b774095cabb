package pages

import (
	"github.com/sebicas/site/internal/navbar"
	"github.com/sebicas/site/pkg/content"
	"github.com/sebicas/site/web/views/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	Year        int
	Navbar      navbar.Snapshot
	// Live adds the script that streams navbar events over the websocket.
	Live bool
	// TargetMenu swaps the query string toggle for one driven by the URL
	// fragment. Exported pages set it since static hosts ignore ?menu=open.
	TargetMenu bool
}

// Layout is the page shell: navbar, routed main content, footer.
func Layout(cfg PageConfig, main g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(cfg.Description)),
				h.TitleEl(g.Text(cfg.Title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
				g.If(cfg.Live, h.Script(h.Src("/static/live.js"), h.Defer())),
			),
			h.Body(h.Class("min-h-screen bg-dark text-white selection:bg-primary selection:text-white"),
				navbarFor(cfg),
				Main(main),
				components.Footer(cfg.Year),
			),
		),
	)
}

func navbarFor(cfg PageConfig) g.Node {
	if cfg.TargetMenu {
		return components.TargetNavbar()
	}
	return components.Navbar(cfg.Navbar)
}

// Main wraps routed content. Partial responses consist of this element only.
func Main(children ...g.Node) g.Node {
	return h.Main(h.ID("main"), g.Group(children))
}

func title(page string) string {
	if page == "" {
		return content.Owner + " | " + content.Handle
	}
	return page + " | " + content.Domain
}
