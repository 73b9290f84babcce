package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"welovepets/internal/domain/pets"
)

// PetRepo es el store en memoria usado en dev y tests.
type PetRepo struct {
	mu   sync.RWMutex
	byID map[int64]pets.Pet
}

// NewPetRepo crea un store en memoria, opcionalmente precargado.
func NewPetRepo(seed ...pets.Pet) (*PetRepo, error) {
	r := &PetRepo{byID: make(map[int64]pets.Pet, len(seed))}
	for _, p := range seed {
		if err := r.put(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// put solo se usa al cargar datos; las vistas no escriben.
func (r *PetRepo) put(p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID <= 0 {
		return errors.New("pet id must be positive")
	}
	if _, exists := r.byID[p.ID]; exists {
		return fmt.Errorf("pet %d already exists", p.ID)
	}
	r.byID[p.ID] = clonePet(p)
	return nil
}

func (r *PetRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		// El listado no incluye vacunas, igual que los adapters SQL.
		p.Vaccinations = nil
		out = append(out, clonePet(p))
	}

	// Orden estable por id (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *PetRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

// clonePet evita que quien llama modifique el estado interno por aliasing.
func clonePet(p pets.Pet) pets.Pet {
	if p.Age != nil {
		age := *p.Age
		p.Age = &age
	}
	if p.Vaccinations != nil {
		p.Vaccinations = append([]pets.Vaccine(nil), p.Vaccinations...)
	}
	return p
}
