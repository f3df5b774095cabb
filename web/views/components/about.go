package components

import (
	"github.com/sebicas/site/pkg/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func About() g.Node {
	return h.Section(h.ID("about"), h.Class("py-20 bg-darker"),
		h.Div(h.Class("container mx-auto px-6"),
			h.Div(h.Class("flex flex-col items-center mb-16"),
				h.Span(h.Class("text-primary font-bold tracking-widest uppercase text-sm mb-2"), g.Text("My Story")),
				h.H2(h.Class("text-4xl font-bold text-white"), g.Text("About Me")),
				h.Div(h.Class("w-16 h-1 bg-primary mt-4 rounded-full")),
			),

			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
				aboutCard(content.IconGlobe, "Global Citizen",
					"Born in Argentina. Experienced life in the USA, Canada, and UAE. A true citizen of the world with a diverse cultural perspective."),
				aboutCard(content.IconMapPin, "Costa Rica",
					`Currently enjoying the "Pura Vida" lifestyle in San Jose, Costa Rica. Building businesses and memories in paradise.`),
				aboutCard(content.IconPlane, "Pilot",
					"Aviation enthusiast and pilot. Seeing the world from above gives me a unique perspective on life and business."),
				aboutCard(content.IconHeart, "Family First",
					"Happily married to an amazing woman and proud father of two wonderful kids. They are my greatest investment."),
			),
		),
	)
}

func aboutCard(icon content.Icon, title, text string) g.Node {
	return h.Div(h.Class("bg-dark p-8 rounded-2xl border border-gray-800 hover:border-primary/50 transition-colors group"), h.Data("card", title),
		h.Div(h.Class("w-14 h-14 bg-darker rounded-full flex items-center justify-center mb-6 group-hover:bg-primary transition-colors duration-300"),
			Icon(icon, 28, h.Class("text-primary group-hover:text-white")),
		),
		h.H3(h.Class("text-xl font-bold text-white mb-3"), g.Text(title)),
		h.P(h.Class("text-graytext leading-relaxed"), g.Text(text)),
	)
}
