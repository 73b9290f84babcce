package pets

import (
	"context"
	"errors"

	"welovepets/internal/web"
)

const (
	TemplateHome   = "home"
	TemplateDetail = "pet_detail"

	NotFoundMessage = "Pet not found!"
)

// Views son las dos páginas públicas del sitio. No guardan estado entre requests.
type Views struct {
	svc      *Service
	renderer web.Renderer
}

func NewViews(svc *Service, renderer web.Renderer) *Views {
	return &Views{svc: svc, renderer: renderer}
}

// Home renderiza "home" con todas las mascotas del store.
func (v *Views) Home(ctx context.Context, _ web.Request) (web.Document, error) {
	items, err := v.svc.List(ctx)
	if err != nil {
		return web.Document{}, err
	}
	return v.renderer.Render(ctx, TemplateHome, web.Bindings{"pets": items})
}

// Detail renderiza "pet_detail" para petID, o web.NotFound si no existe.
// En el caso 404 no se llama al renderer.
func (v *Views) Detail(ctx context.Context, _ web.Request, petID int64) (web.Document, error) {
	p, err := v.svc.Get(ctx, petID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return web.Document{}, web.NotFound(NotFoundMessage)
		}
		return web.Document{}, err
	}
	return v.renderer.Render(ctx, TemplateDetail, web.Bindings{"pet": p})
}
