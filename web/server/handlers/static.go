package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sebicas/site/internal/config"
	"github.com/sebicas/site/internal/navbar"
	"github.com/sebicas/site/web/router"
	"github.com/sebicas/site/web/server"
	"github.com/sebicas/site/web/views/pages"
)

type Static struct {
	conf *config.Config
	now  func() time.Time
}

func NewStatic(conf *config.Config) *Static {
	return &Static{conf: conf, now: time.Now}
}

// Page renders whatever the request path resolves to, including the
// not-found placeholder.
func (s *Static) Page(c *gin.Context) {
	requested := c.Request.URL.Path
	page, ok := router.Resolve(requested)

	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
	}

	cfg := pages.PageConfig{
		Title:       page.Title(),
		Description: pages.HomeDescription(),
		Year:        s.conf.FooterYear(s.now()),
		Navbar:      initialNavbar(c),
		Live:        s.conf.Server.Live,
	}

	c.HTML(status, "", server.WithBase(c, page.View(requested), cfg))
}

// initialNavbar applies the no-script menu form: ?menu=open renders the
// dropdown as if the toggle had been pressed once.
func initialNavbar(c *gin.Context) navbar.Snapshot {
	state := navbar.New()
	if c.Query("menu") == "open" {
		state.Toggle()
	}
	return state.Snapshot()
}

func (*Static) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Static) Register(r gin.IRouter) {
	for _, route := range router.Routes() {
		r.GET(route.Path, s.Page)
	}
	r.GET("/healthz", s.Healthz)
}
