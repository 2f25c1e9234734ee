// Package views holds the embedded HTML templates and their helpers.
package views

import (
	"embed"
	"html/template"
	"sync"
	"time"

	"netblog/app/models"

	"github.com/dustin/go-humanize"
)

//go:embed layout.html posts/*.html admin/*.html
var files embed.FS

var funcs = template.FuncMap{
	// timeAgo renders a timestamp as a human-relative duration,
	// e.g. "2 days ago".
	"timeAgo": func(t time.Time) string {
		return humanize.Time(t)
	},
	"visible": func(p *models.Post) bool {
		return p.Visible(time.Now())
	},
}

var (
	loadOnce sync.Once
	loaded   map[string]*template.Template
)

// Load returns each page template parsed together with the shared
// layout. The set is parsed once and shared by every controller.
func Load() map[string]*template.Template {
	loadOnce.Do(func() {
		pages := map[string][]string{
			"index":       {"layout.html", "posts/index.html"},
			"show":        {"layout.html", "posts/show.html"},
			"admin_login": {"layout.html", "admin/login.html"},
			"admin_index": {"layout.html", "admin/index.html"},
		}

		loaded = make(map[string]*template.Template, len(pages))
		for name, paths := range pages {
			loaded[name] = template.Must(
				template.New(name).Funcs(funcs).ParseFS(files, paths...))
		}
	})
	return loaded
}
