package components

import (
	"github.com/sebicas/site/pkg/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	roles := content.Roles()

	return h.Section(h.ID("home"), h.Class("relative min-h-screen flex items-center pt-20 overflow-hidden"),
		h.Div(h.Class("absolute top-1/2 left-1/2 -translate-x-1/2 -translate-y-1/2 select-none pointer-events-none z-0"), h.Aria("hidden", "true"),
			h.H1(h.Class("text-[15vw] font-bold watermark opacity-20 whitespace-nowrap"), g.Text(content.Handle)),
		),

		h.Div(h.Class("container mx-auto px-6 relative z-10 flex flex-col items-center justify-center text-center"),
			h.Div(h.Class("max-w-4xl space-y-8"),
				h.Div(h.Class("flex justify-center space-x-4"), h.Data("social", "hero"),
					g.Map(content.SocialLinks(), func(link content.SocialLink) g.Node {
						return SocialAnchor(link, 18,
							"w-10 h-10 flex items-center justify-center rounded-full border border-gray-700 text-gray-400 hover:border-primary hover:text-primary hover:bg-primary/10 transition-all duration-300")
					}),
				),

				h.Div(h.Class("space-y-6"),
					h.H2(h.Class("text-5xl md:text-8xl font-bold leading-tight"),
						g.Text("I am "), h.Span(h.Class("text-white"), g.Text(content.Handle)),
					),

					h.Div(h.Class("flex flex-wrap justify-center gap-2 text-primary font-semibold uppercase tracking-wider text-sm md:text-base"), h.Data("roles", ""),
						g.Group(roleNodes(roles)),
					),

					h.P(h.Class("text-graytext text-lg max-w-2xl mx-auto leading-relaxed"),
						g.Text("I am a serial internet entrepreneur, married to an amazing woman and have 2 beautifull kids. Currently living in "),
						h.Span(h.Class("text-white font-medium"), g.Text("Costa Rica")),
						g.Text(". Originally Argentinean, but lived in USA, Canada, and UAE for many years."),
					),
				),

				h.Div(h.Class("flex justify-center items-center space-x-6 pt-4"),
					h.A(h.Href(content.LinkedIn), h.Target("_blank"), h.Rel("noopener noreferrer"), h.Class("flex items-center group cursor-pointer"),
						h.Div(h.Class("w-12 h-12 bg-primary rounded-full flex items-center justify-center shadow-lg shadow-primary/30 group-hover:scale-110 transition-transform duration-300"),
							Icon(content.IconPlay, 20, h.Class("ml-1 text-white")),
						),
						h.Span(h.Class("ml-4 font-semibold text-white group-hover:text-primary transition-colors"), g.Text("Learn More")),
					),
				),
			),
		),
	)
}

// roleNodes puts a separator after every role but the last.
func roleNodes(roles []content.Role) []g.Node {
	nodes := make([]g.Node, 0, len(roles))
	for i, role := range roles {
		nodes = append(nodes, h.Span(h.Data("role", role.Title),
			g.Text(role.Title),
			g.If(i < len(roles)-1, h.Span(h.Class("text-gray-600 mx-2"), h.Data("separator", ""), g.Text("/"))),
		))
	}
	return nodes
}

// SocialAnchor is the outbound link used by both the hero and the footer.
func SocialAnchor(link content.SocialLink, size int, class string) g.Node {
	return h.A(
		h.Href(link.URL),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		h.Class(class),
		h.Aria("label", link.Platform),
		h.Data("platform", link.Platform),
		Icon(link.Icon, size),
	)
}
