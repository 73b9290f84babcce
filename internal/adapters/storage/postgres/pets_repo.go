package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"welovepets/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

var _ pets.Repository = (*PetsRepo)(nil)

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, name, submitter,
	species, breed, description, sex,
	submission_date, age
`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	if id <= 0 {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	p.Vaccinations, err = r.vaccinations(ctx, id)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) vaccinations(ctx context.Context, petID int64) ([]pets.Vaccine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.name
		FROM vaccines v
		JOIN pet_vaccinations pv ON pv.vaccine_id = v.id
		WHERE pv.pet_id = $1
		ORDER BY v.name ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pets.Vaccine
	for rows.Next() {
		var v pets.Vaccine
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var sex string
	var age sql.NullInt64
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Submitter,
		&p.Species,
		&p.Breed,
		&p.Description,
		&sex,
		&p.SubmissionDate,
		&age,
	); err != nil {
		return pets.Pet{}, err
	}

	// CHAR(1) vacío vuelve como " "
	p.Sex = pets.Sex(strings.TrimSpace(sex))
	if age.Valid {
		a := int(age.Int64)
		p.Age = &a
	}
	return p, nil
}
