// Package web embeds the page templates and static assets served by the site.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed template static
var files embed.FS

// Templates parses every page and admin template with funcs available to all of them.
// Templates are addressed by file name, e.g. "home.html" or "login.html".
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "template/*.html", "template/admin/*.html")
}

// Static returns the static asset tree rooted at web/static.
func Static() (fs.FS, error) {
	return fs.Sub(files, "static")
}
