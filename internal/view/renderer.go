// Package view adapts html/template to Echo's Renderer interface.  All
// templates are parsed once at startup from the embedded filesystem; a
// missing template is a programming error surfaced at boot rather than per
// request.
package view

import (
    "html/template"
    "io"

    "github.com/labstack/echo/v4"

    "github.com/example/meeting-room-web/web"
)

// Renderer executes named page templates.
type Renderer struct {
    templates *template.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
    t, err := template.ParseFS(web.Templates, "templates/*.html")
    if err != nil {
        return nil, err
    }
    return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.  name is the template file name, e.g.
// "rooms.html".
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
    return r.templates.ExecuteTemplate(w, name, data)
}
