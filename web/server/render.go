package server

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/sebicas/site/web/views"
	"github.com/sebicas/site/web/views/pages"
	g "maragu.dev/gomponents"
)

// PartialHeader asks for the routed main element only. The live script sends
// it when following internal links so navbar and footer stay in place.
const PartialHeader = "X-Partial"

// TemplRender lets c.HTML take a templ.Component as its data argument.
type TemplRender struct {
	Fallback render.HTMLRender
}

func (r *TemplRender) Instance(name string, data any) render.Render {
	component, ok := data.(templ.Component)
	if !ok && r.Fallback != nil {
		return r.Fallback.Instance(name, data)
	}
	return &Renderer{Ctx: context.Background(), Status: -1, Component: component}
}

type Renderer struct {
	Ctx       context.Context
	Status    int
	Component templ.Component
}

func (t Renderer) Render(w http.ResponseWriter) error {
	t.WriteContentType(w)
	if t.Status != -1 {
		w.WriteHeader(t.Status)
	}
	if t.Component != nil {
		return t.Component.Render(t.Ctx, w)
	}
	return nil
}

func (t Renderer) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func IsPartial(c *gin.Context) bool {
	return c.GetHeader(PartialHeader) == "main"
}

// WithBase wraps main in the page shell, or returns main alone for partial
// requests.
func WithBase(c *gin.Context, main g.Node, cfg pages.PageConfig) templ.Component {
	if IsPartial(c) {
		c.Header("X-Page-Title", cfg.Title)
		return views.Component(pages.Main(main))
	}
	return views.Component(pages.Layout(cfg, main))
}
