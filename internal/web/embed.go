package web

import "embed"

//go:embed templates/*.tmpl static/*.css
var contentFS embed.FS
