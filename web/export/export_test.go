package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	res, err := Run(context.Background(), Options{Dir: dir, Year: 2025})
	require.NoError(t, err)

	var paths []string
	for _, f := range res.Files {
		paths = append(paths, filepath.ToSlash(f.Path))
		require.Positive(t, f.Bytes)
	}
	require.Equal(t, []string{
		"404.html",
		"index.html",
		"privacy-policy/index.html",
		"static/live.js",
		"static/site.css",
		"terms-of-service/index.html",
	}, paths)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), "I am <span class=\"text-white\">@sebicas</span>")
	require.NotContains(t, string(index), "live.js")

	// the dropdown opens on #nav-menu, which a static host serves unchanged
	require.NotContains(t, string(index), `name="menu"`)
	require.Contains(t, string(index), `href="#nav-menu"`)
	require.Contains(t, string(index), `id="nav-menu"`)
	require.Contains(t, string(index), `href="/#about" class="text-gray-300 hover:text-primary text-lg" data-nav-item="About"`)

	css, err := os.ReadFile(filepath.Join(dir, "static", "site.css"))
	require.NoError(t, err)
	require.Contains(t, string(css), `[data-nav-menu="target"]:target { display: block; }`)

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	require.NoError(t, err)
	require.Contains(t, string(notFound), `data-placeholder="not-found"`)

	require.True(t, strings.HasSuffix(res.String(), "B") || strings.HasSuffix(res.String(), "kB"))
	require.True(t, strings.HasPrefix(res.String(), "6 files, "))
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Dir: t.TempDir(), Year: 2025})
	require.Error(t, err)
}
