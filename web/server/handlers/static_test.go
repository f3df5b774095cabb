package handlers

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sebicas/site/internal/config"
	"github.com/sebicas/site/pkg/content"
	"github.com/sebicas/site/web/server"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Addr: ":0", Mode: "test", Live: true},
		Log:    config.Log{Level: "info"},
		Site:   config.Site{Year: 2025},
		Export: config.Export{Dir: "dist"},
	}
}

func get(t *testing.T, h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHome(t *testing.T) {
	r := New(testConfig(), zap.NewNop())

	w := get(t, r, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	require.Contains(t, body, "I am <span class=\"text-white\">@sebicas</span>")
	heroEnd := strings.Index(body, `id="about"`)
	require.Equal(t, 6, strings.Count(body[:heroEnd], `data-platform="`))
	require.Equal(t, 6, strings.Count(body, `data-role="`))
	require.Equal(t, 5, strings.Count(body, `data-separator=""`))
	require.Equal(t, 4, strings.Count(body, `data-card="`))
	for _, card := range []string{"Global Citizen", "Costa Rica", "Pilot", "Family First"} {
		require.Contains(t, body, `data-card="`+card+`"`)
	}
	require.Contains(t, body, "© 2025 Sebastian Castro")
	require.NotContains(t, body, "data-nav-menu")
}

func TestLegalPagesShareShell(t *testing.T) {
	r := New(testConfig(), zap.NewNop())

	terms := get(t, r, "/terms-of-service", nil)
	privacy := get(t, r, "/privacy-policy", nil)
	require.Equal(t, http.StatusOK, terms.Code)
	require.Equal(t, http.StatusOK, privacy.Code)

	tb, pb := terms.Body.String(), privacy.Body.String()
	require.Contains(t, tb, "<title>Terms of Service | sebicas.com</title>")
	require.Contains(t, pb, "<title>Privacy Policy | sebicas.com</title>")

	shell := func(s string) (string, string) {
		return s[strings.Index(s, "<nav"):strings.Index(s, "<main")], s[strings.Index(s, "<footer"):]
	}
	tn, tf := shell(tb)
	pn, pf := shell(pb)
	require.Equal(t, tn, pn)
	require.Equal(t, tf, pf)

	tm := tb[strings.Index(tb, "<main"):strings.Index(tb, "<footer")]
	pm := pb[strings.Index(pb, "<main"):strings.Index(pb, "<footer")]
	require.NotEqual(t, tm, pm)
}

func TestPartial(t *testing.T) {
	r := New(testConfig(), zap.NewNop())

	w := get(t, r, "/privacy-policy", http.Header{server.PartialHeader: {"main"}})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.True(t, strings.HasPrefix(body, `<main id="main">`))
	require.NotContains(t, body, "<nav")
	require.NotContains(t, body, "<footer")
	require.Equal(t, "Privacy Policy | sebicas.com", w.Header().Get("X-Page-Title"))
}

func TestNotFound(t *testing.T) {
	r := New(testConfig(), zap.NewNop())

	w := get(t, r, "/blog", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), `data-placeholder="not-found"`)
	require.Contains(t, w.Body.String(), "<nav")
}

func TestMenuQuery(t *testing.T) {
	r := New(testConfig(), zap.NewNop())

	w := get(t, r, "/?menu=open", nil)
	require.Contains(t, w.Body.String(), "data-nav-menu")
	require.Contains(t, w.Body.String(), `name="menu" value="closed"`)
}

func TestMenuItemClosesMenu(t *testing.T) {
	conf := testConfig()
	conf.Server.Live = false
	r := New(conf, zap.NewNop())

	base, err := url.Parse("/?menu=open")
	require.NoError(t, err)
	open := get(t, r, base.RequestURI(), nil).Body.String()

	for _, item := range content.NavItems() {
		t.Run(item.Label, func(t *testing.T) {
			m := regexp.MustCompile(`href="([^"]*)"[^>]*data-nav-item="` + item.Label + `"`).FindStringSubmatch(open)
			require.Len(t, m, 2)

			ref, err := url.Parse(m[1])
			require.NoError(t, err)
			next := base.ResolveReference(ref)
			require.Empty(t, next.Query().Get("menu"))
			require.Equal(t, strings.TrimPrefix(item.Href, "#"), next.Fragment)

			w := get(t, r, next.RequestURI(), nil)
			require.Equal(t, http.StatusOK, w.Code)
			require.NotContains(t, w.Body.String(), "data-nav-menu")
		})
	}
}

func TestHealthAndStatic(t *testing.T) {
	r := New(testConfig(), zap.NewNop())

	w := get(t, r, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())

	w = get(t, r, "/static/live.js", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "/live")
}

func TestGzip(t *testing.T) {
	conf := testConfig()
	conf.Server.Gzip = true
	r := New(conf, zap.NewNop())

	w := get(t, r, "/", http.Header{"Accept-Encoding": {"gzip"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	b, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.Contains(t, string(b), "@sebicas")
}

func TestFooterYearDefaultsToNow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	conf := testConfig()
	conf.Site.Year = 0

	s := NewStatic(conf)
	s.now = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.HTMLRender = &server.TemplRender{}
	s.Register(r)

	w := get(t, r, "/", nil)
	require.Contains(t, w.Body.String(), "© 2030 Sebastian Castro")
}
