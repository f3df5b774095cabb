package components

import (
	"github.com/sebicas/site/internal/navbar"
	"github.com/sebicas/site/pkg/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	navBase          = "fixed w-full z-50 transition-all duration-300"
	navScrolledClass = "bg-darker/95 backdrop-blur-sm shadow-lg py-4"
	navTopClass      = "bg-transparent py-6"
)

func NavbarClass(p navbar.Presentation) string {
	if p == navbar.Scrolled {
		return navBase + " " + navScrolledClass
	}
	return navBase + " " + navTopClass
}

// MenuID is the fragment the exported pages use to open the mobile menu.
const MenuID = "nav-menu"

// menuClosedID matches no element, so targeting it clears :target without
// scrolling the page.
const menuClosedID = "menu-closed"

// Navbar renders the fixed top bar for the given state. The live script
// replaces the whole element with a fresh render after every event.
func Navbar(s navbar.Snapshot) g.Node {
	items := content.NavItems()
	return navShell(s.Presentation(), items, menuToggle(s.MenuOpen), g.If(s.MenuOpen, mobileMenu(items)))
}

// TargetNavbar renders a navbar whose mobile menu opens on #nav-menu and
// closes when the fragment moves elsewhere. It needs neither the query
// string nor a script, so it works on plain static hosts.
func TargetNavbar() g.Node {
	items := content.NavItems()
	toggle := h.A(
		h.Href("#"+MenuID),
		h.Class("md:hidden text-gray-300 hover:text-white"),
		h.Aria("label", "Open menu"),
		h.Aria("controls", MenuID),
		h.Data("nav-open", ""),
		Icon(content.IconMenu, 28),
	)
	menu := h.Div(
		h.ID(MenuID),
		h.Class("md:hidden absolute top-full left-0 w-full bg-darker border-t border-gray-800"),
		h.Data("nav-menu", "target"),
		h.Div(h.Class("flex justify-end px-6 pt-4"),
			h.A(h.Href("#"+menuClosedID), h.Class("text-gray-300 hover:text-white"), h.Aria("label", "Close menu"), h.Data("nav-close", ""),
				Icon(content.IconClose, 28),
			),
		),
		menuItems(items),
	)
	return navShell(navbar.Top, items, toggle, menu)
}

func navShell(p navbar.Presentation, items []content.NavItem, toggle, menu g.Node) g.Node {
	return h.Nav(
		h.ID("navbar"),
		h.Class(NavbarClass(p)),
		h.Data("navbar", p.String()),
		h.Div(h.Class("container mx-auto px-6 flex justify-between items-center"),
			h.A(h.Href("/"), h.Class("text-2xl font-bold tracking-tighter"), h.Data("route", ""),
				g.Text("sebicas"), h.Span(h.Class("text-primary"), g.Text(".com")),
			),

			h.Div(h.Class("hidden md:flex space-x-8 items-center"),
				g.Map(items, func(item content.NavItem) g.Node {
					return h.A(
						h.Href(item.Href),
						h.Class("text-gray-300 hover:text-primary transition-colors font-medium text-sm uppercase tracking-wide"),
						g.Text(item.Label),
					)
				}),
				h.A(
					h.Href(content.LinkedIn),
					h.Target("_blank"),
					h.Rel("noopener noreferrer"),
					h.Class("px-5 py-2 border border-primary text-primary hover:bg-primary hover:text-white transition-all rounded-full text-sm font-semibold"),
					g.Text("Connect"),
				),
			),

			toggle,
		),

		menu,
	)
}

// menuToggle works without scripts as a GET form carrying the next state.
func menuToggle(open bool) g.Node {
	next, icon, label := "open", content.IconMenu, "Open menu"
	if open {
		next, icon, label = "closed", content.IconClose, "Close menu"
	}

	return h.FormEl(h.Method("get"), h.Class("md:hidden"),
		h.Input(h.Type("hidden"), h.Name("menu"), h.Value(next)),
		h.Button(
			h.Type("submit"),
			h.Class("text-gray-300 hover:text-white"),
			h.Aria("label", label),
			h.Aria("expanded", boolAttr(open)),
			h.Data("nav-toggle", ""),
			Icon(icon, 28),
		),
	)
}

func mobileMenu(items []content.NavItem) g.Node {
	return h.Div(h.Class("md:hidden absolute top-full left-0 w-full bg-darker border-t border-gray-800"), h.Data("nav-menu", ""),
		menuItems(items),
	)
}

func menuItems(items []content.NavItem) g.Node {
	return h.Div(h.Class("flex flex-col p-6 space-y-4"),
		g.Map(items, func(item content.NavItem) g.Node {
			return h.A(
				h.Href(MenuHref(item)),
				h.Class("text-gray-300 hover:text-primary text-lg"),
				h.Data("nav-item", item.Label),
				g.Text(item.Label),
			)
		}),
	)
}

// MenuHref points a dropdown entry at its home page anchor. The path drops
// any ?menu=open query and #nav-menu fragment, so following it closes the
// menu with or without scripts.
func MenuHref(item content.NavItem) string {
	return "/" + item.Href
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
