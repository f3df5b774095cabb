package components

import (
	"fmt"

	"github.com/sebicas/site/pkg/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Footer(year int) g.Node {
	return h.Footer(h.Class("bg-darker py-12 border-t border-gray-800"),
		h.Div(h.Class("container mx-auto px-6 text-center"),
			h.H2(h.Class("text-2xl font-bold mb-6"),
				g.Text("sebicas"), h.Span(h.Class("text-primary"), g.Text(".com")),
			),

			h.Div(h.Class("flex justify-center space-x-6 mb-8"), h.Data("social", "footer"),
				g.Map(content.SocialLinks(), func(link content.SocialLink) g.Node {
					return SocialAnchor(link, 24, "text-gray-400 hover:text-primary transition-colors")
				}),
			),

			h.P(h.Class("text-gray-600 text-sm"),
				g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, content.Owner)),
			),
			h.P(h.Class("text-gray-600 text-xs mt-4 space-x-4"),
				h.A(h.Href("/terms-of-service"), h.Data("route", ""), h.Class("hover:text-primary"), g.Text("Terms of Service")),
				h.A(h.Href("/privacy-policy"), h.Data("route", ""), h.Class("hover:text-primary"), g.Text("Privacy Policy")),
			),
		),
	)
}
