package components

import (
	"github.com/sebicas/site/pkg/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Ventures() g.Node {
	return h.Section(h.ID("ventures"), h.Class("py-20 bg-dark"),
		h.Div(h.Class("container mx-auto px-6 text-center"),
			h.H2(h.Class("text-3xl font-bold text-white mb-8"), g.Text("Ventures & Investments")),
			h.P(h.Class("text-graytext max-w-2xl mx-auto"),
				g.Text("As a serial entrepreneur, I'm constantly exploring new opportunities in the tech space. Check out my LinkedIn for the latest updates on my projects."),
			),
			h.A(h.Href(content.LinkedIn), h.Target("_blank"), h.Rel("noopener noreferrer"), h.Class("inline-block mt-8 text-primary font-semibold hover:underline"),
				g.Text("View on LinkedIn →"),
			),
		),
	)
}

// BlogPlaceholder gives the #blog nav anchor a target until posts exist.
func BlogPlaceholder() g.Node {
	return h.Section(h.ID("blog"), h.Class("py-20 bg-darker"), h.Data("placeholder", "blog"),
		h.Div(h.Class("container mx-auto px-6 text-center"),
			h.H2(h.Class("text-3xl font-bold text-white mb-4"), g.Text("Blog")),
			h.P(h.Class("text-graytext"), g.Text("Coming soon. Not yet implemented.")),
		),
	)
}
