package pages

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sebicas/site/internal/navbar"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestLegalPages(t *testing.T) {
	t.Parallel()

	terms := render(t, Terms())
	privacy := render(t, Privacy())

	require.Contains(t, terms, "<h1 class=\"text-4xl font-bold text-white mb-8\">Terms of Service</h1>")
	require.Contains(t, terms, "<h2>Acceptance of terms</h2>")
	require.Contains(t, privacy, "Privacy Policy")
	require.Contains(t, privacy, "<h2>Cookies</h2>")
	require.NotEqual(t, terms, privacy)
}

func TestConvertLegal(t *testing.T) {
	t.Parallel()

	for _, doc := range []legalDoc{termsDoc, privacyDoc} {
		require.NotEmpty(t, legalHTML[doc.file], doc.file)
	}

	fsys := fstest.MapFS{
		"legal/terms-of-service.md": {Data: []byte("## Heading\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")},
	}

	out, err := convertLegal(fsys, termsDoc)
	require.NoError(t, err)
	require.Contains(t, out[termsDoc.file], "<h2>Heading</h2>")
	require.Contains(t, out[termsDoc.file], "<table>")

	_, err = convertLegal(fsys, termsDoc, privacyDoc)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorContains(t, err, privacyDoc.file)

	require.Panics(t, func() { mustConvertLegal(fsys) })
}

func TestLayoutShell(t *testing.T) {
	t.Parallel()

	out := render(t, Layout(PageConfig{Title: HomeTitle(), Year: 2025, Live: true}, Home()))

	require.True(t, strings.HasPrefix(out, "<!doctype html>"))
	require.Contains(t, out, `<nav id="navbar"`)
	require.Contains(t, out, `<main id="main">`)
	require.Contains(t, out, "<footer")
	require.Contains(t, out, `src="/static/live.js"`)
	require.Less(t, strings.Index(out, "<nav"), strings.Index(out, "<main"))
	require.Less(t, strings.Index(out, "</main>"), strings.Index(out, "<footer"))
}

func TestLayoutWithoutLive(t *testing.T) {
	t.Parallel()

	out := render(t, Layout(PageConfig{Title: TermsTitle(), Navbar: navbar.Snapshot{MenuOpen: true}}, Terms()))
	require.NotContains(t, out, "live.js")
	require.Contains(t, out, "data-nav-menu")
}

func TestLayoutTargetMenu(t *testing.T) {
	t.Parallel()

	out := render(t, Layout(PageConfig{Title: HomeTitle(), Navbar: navbar.Snapshot{MenuOpen: true}, TargetMenu: true}, Home()))
	require.NotContains(t, out, `name="menu"`)
	require.Contains(t, out, `data-nav-menu="target"`)
	require.Contains(t, out, `href="#nav-menu"`)
}

func TestHomeSections(t *testing.T) {
	t.Parallel()

	out := render(t, Home())
	for _, id := range []string{"home", "about", "ventures", "blog"} {
		require.Contains(t, out, `id="`+id+`"`)
	}
}
