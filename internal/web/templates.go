// Package web provides the HTML pages of the blog: handlers, page
// templates, and the session-backed flash messages they share.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// baseTemplate is the shared layout every page plugs its blocks into
const baseTemplate = "base.html"

// Templates holds the parsed page templates. Each page is parsed into its
// own set together with the base layout, so the pages' "content" blocks
// don't collide with each other.
type Templates struct {
	pages map[string]*template.Template
}

// NewTemplates parses all embedded page templates against the base layout.
func NewTemplates() (*Templates, error) {
	entries, err := fs.ReadDir(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == baseTemplate {
			continue
		}
		tmpl, err := template.ParseFS(templatesFS, "templates/"+baseTemplate, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Templates{pages: pages}, nil
}

// Render renders a named page template with the provided data to the
// response writer. Returns an error if the template doesn't exist or
// rendering fails.
func (t *Templates) Render(w http.ResponseWriter, name string, data interface{}) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	// Set content type before writing
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := tmpl.ExecuteTemplate(w, baseTemplate, data); err != nil {
		return fmt.Errorf("failed to execute template %q: %w", name, err)
	}
	return nil
}
