// Package router maps request paths to the site's pages. It is the single
// source of truth for the HTTP routes and the static export.
package router

import (
	"errors"
	"path"
	"strings"

	"github.com/sebicas/site/web/views/pages"
	g "maragu.dev/gomponents"
)

type Page int

const (
	NotFound Page = iota
	Home
	Terms
	Privacy
)

var ErrUnknownPage = errors.New("unknown page")

type Route struct {
	Path string
	Page Page
}

var routes = []Route{
	{Path: "/", Page: Home},
	{Path: "/terms-of-service", Page: Terms},
	{Path: "/privacy-policy", Page: Privacy},
}

func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Resolve selects the page for p. Trailing slashes and dot segments are
// ignored; anything else unknown resolves to NotFound.
func Resolve(p string) (Page, bool) {
	clean := normalize(p)
	for _, r := range routes {
		if r.Path == clean {
			return r.Page, true
		}
	}
	return NotFound, false
}

func normalize(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func (p Page) String() string {
	switch p {
	case Home:
		return "home"
	case Terms:
		return "terms-of-service"
	case Privacy:
		return "privacy-policy"
	default:
		return "not-found"
	}
}

func (p Page) Title() string {
	switch p {
	case Home:
		return pages.HomeTitle()
	case Terms:
		return pages.TermsTitle()
	case Privacy:
		return pages.PrivacyTitle()
	default:
		return pages.NotFoundTitle()
	}
}

// View returns the main content of the page. requested is only used by the
// not-found placeholder.
func (p Page) View(requested string) g.Node {
	switch p {
	case Home:
		return pages.Home()
	case Terms:
		return pages.Terms()
	case Privacy:
		return pages.Privacy()
	default:
		return pages.NotFound(requested)
	}
}

// Lookup is Resolve for callers that want an error instead of a flag.
func Lookup(p string) (Page, error) {
	page, ok := Resolve(p)
	if !ok {
		return NotFound, ErrUnknownPage
	}
	return page, nil
}
