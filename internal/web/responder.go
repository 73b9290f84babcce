package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"welovepets/internal/platform/logger"
)

// Responder adapta ViewFuncs a http.HandlerFunc y presenta los errores:
// *HTTPError => página con su status (ej: 404), el resto => 500 genérico.
type Responder struct {
	renderer Renderer
	log      logger.Logger
}

func NewResponder(renderer Renderer, log logger.Logger) *Responder {
	if log == nil {
		log = logger.Nop()
	}
	return &Responder{renderer: renderer, log: log}
}

func (rs *Responder) Handle(fn ViewFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := NewRequest(r)

		doc, err := fn(r.Context(), req)
		if err != nil {
			rs.Error(w, r, err)
			return
		}

		writeDocument(w, http.StatusOK, doc)
	}
}

// NotFound sirve como handler de rutas inexistentes en el router.
func (rs *Responder) NotFound(w http.ResponseWriter, r *http.Request) {
	rs.Error(w, r, NotFound(""))
}

// Error escribe la página de error correspondiente a err.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	// Cliente desconectado: no hay a quién mostrarle la página.
	if errors.Is(err, context.Canceled) {
		rs.log.Debug("request canceled", map[string]any{
			"path":       r.URL.Path,
			"request_id": NewRequest(r).ID,
		})
		return
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		rs.log.Error("unhandled view error", map[string]any{
			"err":        err.Error(),
			"path":       r.URL.Path,
			"request_id": NewRequest(r).ID,
		})
		httpErr = Internal("Server Error (500)")
	}

	rs.writeError(r.Context(), w, httpErr)
}

// ErrorTemplate es el nombre de la página que presenta un status de error.
func ErrorTemplate(status int) string {
	return strconv.Itoa(status)
}

func (rs *Responder) writeError(ctx context.Context, w http.ResponseWriter, e *HTTPError) {
	if rs.renderer != nil {
		doc, err := rs.renderer.Render(ctx, ErrorTemplate(e.Status), Bindings{
			"status":  e.Status,
			"message": e.Message,
		})
		if err == nil {
			writeDocument(w, e.Status, doc)
			return
		}
		rs.log.Warn("error page render failed", map[string]any{
			"err":    err.Error(),
			"status": e.Status,
		})
	}

	http.Error(w, e.Message, e.Status)
}

func writeDocument(w http.ResponseWriter, status int, doc Document) {
	ct := doc.ContentType
	if ct == "" {
		ct = "text/html; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	w.WriteHeader(status)
	_, _ = w.Write(doc.Body)
}
