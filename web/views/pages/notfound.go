package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func NotFoundTitle() string { return title("Not found") }

func NotFound(path string) g.Node {
	return h.Section(h.Class("py-40 bg-dark"), h.Data("placeholder", "not-found"),
		h.Div(h.Class("container mx-auto px-6 text-center"),
			h.H1(h.Class("text-4xl font-bold text-white mb-4"), g.Text("Page not found")),
			h.P(h.Class("text-graytext mb-8"),
				g.Text("There is nothing at "), h.Code(g.Text(path)), g.Text(" yet. This page is not implemented."),
			),
			h.A(h.Href("/"), h.Data("route", ""), h.Class("text-primary font-semibold hover:underline"), g.Text("Back home")),
		),
	)
}
