package echoServer

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"locallibrary/app/echoServer/jwtx"
	"locallibrary/model"
)

//go:embed views/*.html
var views embed.FS

// Renderer executes one template set per page, each wrapped in layout.html
// and sharing the partials in errors.html.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	// stored text is escaped once on the way in; undo that so html/template
	// escapes it exactly once on the way out
	"plain":     html.UnescapeString,
	"date":      model.FormatDate,
	"inputDate": model.InputDate,
	"statuses":  func() []model.InstanceStatus { return model.Statuses },
}

func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(views, "views/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, n := range names {
		name := strings.TrimSuffix(path.Base(n), ".html")
		if name == "layout" || name == "errors" {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(views, "views/layout.html", "views/errors.html", n)
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

type page struct {
	Title string
	User  jwtx.Identity
	Data  echo.Map
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}
	p := page{User: jwtx.IdentityFromContext(c)}
	if m, ok := data.(echo.Map); ok {
		p.Data = m
		if s, ok := m["Title"].(string); ok {
			p.Title = s
		}
	}
	return t.ExecuteTemplate(w, "layout", p)
}
