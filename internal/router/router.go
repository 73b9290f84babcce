package router

import (
	"net/http"

	"welovepets/internal/domain/pets"
	"welovepets/internal/middleware"
	"welovepets/internal/platform/logger"
	"welovepets/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Store de mascotas (memory, postgres o sqlite).
	Pets     pets.Repository
	Renderer web.Renderer

	// Logger puede ser nil (no loguea).
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	// HEAD se resuelve con el handler GET de la ruta.
	r.Use(chimw.GetHead)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	rs := web.NewResponder(opts.Renderer, log)
	r.NotFound(rs.NotFound)

	petsSvc := pets.NewService(opts.Pets)
	pets.RegisterRoutes(r, pets.NewViews(petsSvc, opts.Renderer), rs)

	return r
}
