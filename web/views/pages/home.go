package pages

import (
	"github.com/sebicas/site/web/views/components"
	g "maragu.dev/gomponents"
)

func HomeTitle() string { return title("") }

const homeDescription = "Sebastian Castro (@sebicas): serial internet entrepreneur, investor and pilot living in Costa Rica."

func HomeDescription() string { return homeDescription }

func Home() g.Node {
	return g.Group{
		components.Hero(),
		components.About(),
		components.Ventures(),
		components.BlogPlaceholder(),
	}
}
