// Package web define los tipos planos que intercambian las vistas con la capa HTTP:
// Request, Bindings, Document y el Renderer de templates.
// Las vistas no dependen de *http.Request; el adapter de chi arma un Request.
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Request es la parte del request HTTP que una vista puede necesitar.
type Request struct {
	ID         string
	Method     string
	Path       string
	RemoteAddr string

	params map[string]string
}

// NewRequest copia lo necesario de r, incluidos los URL params resueltos por chi.
func NewRequest(r *http.Request) Request {
	req := Request{
		ID:         chimw.GetReqID(r.Context()),
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		req.params = make(map[string]string, len(rctx.URLParams.Keys))
		for i, k := range rctx.URLParams.Keys {
			if i < len(rctx.URLParams.Values) {
				req.params[k] = rctx.URLParams.Values[i]
			}
		}
	}
	return req
}

// WithParam devuelve una copia con el param seteado (útil en tests).
func (r Request) WithParam(key, value string) Request {
	params := make(map[string]string, len(r.params)+1)
	for k, v := range r.params {
		params[k] = v
	}
	params[key] = value
	r.params = params
	return r
}

// Param devuelve "" si el param no existe.
func (r Request) Param(key string) string {
	return r.params[key]
}

// Bindings son los valores con nombre que recibe un template.
type Bindings map[string]any

// Document es la salida opaca de un Renderer.
type Document struct {
	ContentType string
	Body        []byte
}

// Renderer convierte un nombre de template + bindings en un Document.
type Renderer interface {
	Render(ctx context.Context, name string, b Bindings) (Document, error)
}

// ViewFunc es la firma de una vista: request plano in, documento out.
type ViewFunc func(ctx context.Context, req Request) (Document, error)
