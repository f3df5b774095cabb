package handlers

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/sebicas/site/internal/config"
	"github.com/sebicas/site/internal/logger"
	"github.com/sebicas/site/web/live"
	"github.com/sebicas/site/web/server"
	"github.com/sebicas/site/web/static"
	"go.uber.org/zap"
)

// New builds the gin engine serving every page, the static assets and the
// live navbar socket.
func New(conf *config.Config, log *zap.Logger) *gin.Engine {
	gin.SetMode(conf.Server.Mode)

	r := gin.New()
	r.HTMLRender = &server.TemplRender{}
	r.Use(logger.Middleware(log), logger.Recovery(log))

	if conf.Server.Gzip {
		r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/live"})))
	}

	r.StaticFS("/static", http.FS(static.FS))

	s := NewStatic(conf)
	s.Register(r)
	r.NoRoute(s.Page)

	if conf.Server.Live {
		hub := live.NewHub(log)
		r.GET("/live", hub.Handler)
	}

	return r
}
