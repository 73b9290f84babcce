package pets

import (
	"context"
	"strconv"

	"welovepets/internal/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, v *Views, rs *web.Responder) {
	r.Get("/", rs.Handle(v.Home))

	// Solo ids numéricos llegan acá; el resto cae en el NotFound del router.
	detail := rs.Handle(detailView(v))
	r.Get("/adoptions/{petID:[0-9]+}/", detail)
	r.Get("/adoptions/{petID:[0-9]+}", detail)
}

func detailView(v *Views) web.ViewFunc {
	return func(ctx context.Context, req web.Request) (web.Document, error) {
		// [0-9]+ puede desbordar int64: se trata igual que un id inexistente.
		id, err := strconv.ParseInt(req.Param("petID"), 10, 64)
		if err != nil {
			return web.Document{}, web.NotFound(NotFoundMessage)
		}
		return v.Detail(ctx, req, id)
	}
}
