package pets

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List devuelve todas las mascotas tal como las entrega el store.
// Nunca devuelve un slice nil si no hay error.
func (s *Service) List(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Pet{}
	}
	return items, nil
}

// Get busca una mascota por id. Si el adapter reporta "no existe"
// (aunque venga envuelto) se devuelve ErrNotFound sin más contexto.
func (s *Service) Get(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, err
	}
	return p, nil
}
