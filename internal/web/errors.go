package web

import (
	"fmt"
	"net/http"
)

// HTTPError es un fallo terminal esperado que la capa HTTP presenta con su status.
// Cualquier otro error que salga de una vista se trata como 500.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d", e.Status)
	}
	return e.Message
}

// NotFound equivale al 404 con mensaje visible para el usuario.
func NotFound(message string) *HTTPError {
	if message == "" {
		message = http.StatusText(http.StatusNotFound)
	}
	return &HTTPError{Status: http.StatusNotFound, Message: message}
}

func Internal(message string) *HTTPError {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	return &HTTPError{Status: http.StatusInternalServerError, Message: message}
}
