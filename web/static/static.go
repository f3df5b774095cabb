package static

import "embed"

//go:embed live.js site.css
var FS embed.FS
