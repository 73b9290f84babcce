package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"welovepets/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

var _ pets.Repository = (*PetsRepo)(nil)

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const selectPets = `
	SELECT
		id, name, submitter,
		species, breed, description, sex,
		submission_date, age
	FROM pets
`

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, selectPets+` ORDER BY id ASC`)
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
	p, err := scanPet(r.db.QueryRowContext(ctx, selectPets+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.name
		FROM vaccines v
		JOIN pet_vaccinations pv ON pv.vaccine_id = v.id
		WHERE pv.pet_id = ?
		ORDER BY v.name ASC
	`, id)
	if err != nil {
		return pets.Pet{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var v pets.Vaccine
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return pets.Pet{}, err
		}
		p.Vaccinations = append(p.Vaccinations, v)
	}
	if err := rows.Err(); err != nil {
		return pets.Pet{}, err
	}

	return p, nil
}

func scanPet(s interface{ Scan(dest ...any) error }) (pets.Pet, error) {
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

	p.Sex = pets.Sex(sex)
	if age.Valid {
		a := int(age.Int64)
		p.Age = &a
	}
	return p, nil
}
