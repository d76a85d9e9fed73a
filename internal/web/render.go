package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"rical/internal/page"
)

// Renderer turns a Page into HTML. Templates are parsed once and are safe
// for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(contentFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page to w. Nothing is written if the template fails.
func (r *Renderer) Render(w io.Writer, p *page.Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "index", p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
