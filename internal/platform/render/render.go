// Package render implementa web.Renderer con html/template.
//
// Cada página (home, pet_detail, 404, 500) se parsea junto al layout base.html
// en su propio *template.Template, así los bloques "title"/"content" no chocan
// entre páginas. Las páginas se ejecutan sobre un buffer: si el template falla
// a mitad de camino no se envía HTML parcial.
package render

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"welovepets/internal/web"
)

//go:embed templates/*.html
var embedded embed.FS

var ErrUnknownTemplate = errors.New("unknown template")

const (
	layoutFile  = "base.html"
	contentType = "text/html; charset=utf-8"
)

type Options struct {
	// Dir, si viene, lee templates del disco (dev) en lugar de los embebidos.
	Dir string
	// FS tiene prioridad sobre Dir; pensado para tests.
	FS fs.FS
}

type Renderer struct {
	pages map[string]*template.Template
}

var _ web.Renderer = (*Renderer)(nil)

func New(opts Options) (*Renderer, error) {
	var src fs.FS
	switch {
	case opts.FS != nil:
		src = opts.FS
	case strings.TrimSpace(opts.Dir) != "":
		src = os.DirFS(opts.Dir)
	default:
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, err
		}
		src = sub
	}

	files, err := fs.Glob(src, "*.html")
	if err != nil {
		return nil, fmt.Errorf("render: list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")

		t, err := template.New(layoutFile).Funcs(funcs).ParseFS(src, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("render: parse %s: %w", f, err)
		}
		r.pages[name] = t
	}

	if len(r.pages) == 0 {
		return nil, errors.New("render: no page templates found")
	}
	return r, nil
}

// Render ejecuta la página name con los bindings dados.
func (r *Renderer) Render(ctx context.Context, name string, b web.Bindings) (web.Document, error) {
	if err := ctx.Err(); err != nil {
		return web.Document{}, err
	}

	t, ok := r.pages[name]
	if !ok {
		return web.Document{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutFile, map[string]any(b)); err != nil {
		return web.Document{}, fmt.Errorf("render %s: %w", name, err)
	}

	return web.Document{ContentType: contentType, Body: buf.Bytes()}, nil
}

// Has indica si existe la página name.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Require falla si falta alguna de las páginas; se usa al arrancar para no
// descubrir un render.dir incompleto recién en el primer request.
func (r *Renderer) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if !r.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing pages %s", ErrUnknownTemplate, strings.Join(missing, ", "))
	}
	return nil
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
}
