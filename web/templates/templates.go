// Package templates holds the server-rendered HTML pages, embedded so the
// binary is self-contained.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses all page templates.
func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
