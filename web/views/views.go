// Package views adapts gomponents trees to templ components, which is what the
// gin renderer and the static exporter consume. templ.Component stays the
// render contract so server.TemplRender and export.Run take any templ source,
// generated .templ files included, while the pages are written in Go.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if n == nil {
			return nil
		}
		return n.Render(w)
	})
}
