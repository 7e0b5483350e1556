// Package views adapts html/template to Echo's Renderer interface.
package views

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer renders named templates parsed from a glob.
type TemplateRenderer struct {
	templates *template.Template
}

// NewRenderer parses every template matching the glob, e.g.
// "web/templates/*.html".
func NewRenderer(glob string) (*TemplateRenderer, error) {
	templates, err := template.ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: templates}, nil
}

// Render implements echo.Renderer.
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
