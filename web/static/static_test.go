package static

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiveScriptFallsBack(t *testing.T) {
	t.Parallel()

	b, err := fs.ReadFile(FS, "live.js")
	require.NoError(t, err)
	src := string(b)

	// the toggle form is only intercepted once the event went out
	require.Regexp(t, regexp.MustCompile(`if \(send\(\{ type: "toggle" \}\)\) \{\s+e\.preventDefault\(\);`), src)
	require.Contains(t, src, "ws.readyState === WebSocket.OPEN")

	// closed sockets reconnect with a capped backoff
	require.Contains(t, src, "ws.onclose")
	require.Contains(t, src, "setTimeout(connect, delay)")
	require.Contains(t, src, "Math.min(maxRetryDelay")

	// nothing buffers events while offline
	require.NotContains(t, src, ".push(")
}

func TestTargetMenuStyles(t *testing.T) {
	t.Parallel()

	b, err := fs.ReadFile(FS, "site.css")
	require.NoError(t, err)
	require.Contains(t, string(b), `#navbar [data-nav-menu="target"] { display: none; }`)
	require.Contains(t, string(b), `#navbar [data-nav-menu="target"]:target { display: block; }`)
}
