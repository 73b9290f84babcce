package pets

import (
	"context"
	"errors"
)

// ErrNotFound es la señal canónica de "no existe" que deben devolver los adapters.
var ErrNotFound = errors.New("pet not found")

// Repository es de solo lectura: las vistas nunca escriben mascotas.
type Repository interface {
	ListAll(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
}
