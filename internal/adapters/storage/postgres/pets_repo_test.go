package postgres

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"welovepets/internal/domain/pets"
)

type fakeRow struct {
	vals []any
	err  error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = f.vals[i].(int64)
		case *string:
			*p = f.vals[i].(string)
		case *time.Time:
			*p = f.vals[i].(time.Time)
		case interface{ Scan(any) error }:
			if err := p.Scan(f.vals[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestScanPet(t *testing.T) {
	at := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	p, err := scanPet(fakeRow{vals: []any{
		int64(1), "Rex", "Ana", "Dog", "Beagle", "Loves walks", "M", at, int64(3),
	}})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if p.ID != 1 || p.Name != "Rex" || p.Sex != pets.SexMale || !p.SubmissionDate.Equal(at) {
		t.Fatalf("unexpected pet %+v", p)
	}
	if p.Age == nil || *p.Age != 3 {
		t.Fatalf("expected age 3, got %v", p.Age)
	}
}

func TestScanPet_BlankSexAndNullAge(t *testing.T) {
	p, err := scanPet(fakeRow{vals: []any{
		int64(2), "Mia", "", "Cat", "", "", " ", time.Now(), nil,
	}})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if p.Sex != "" {
		t.Fatalf("expected padded blank sex to be trimmed, got %q", p.Sex)
	}
	if p.Age != nil {
		t.Fatalf("expected nil age, got %v", *p.Age)
	}
}

func TestScanPet_Error(t *testing.T) {
	boom := errors.New("bad row")
	if _, err := scanPet(fakeRow{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected scan error, got %v", err)
	}
}

func TestMigrations_Embedded(t *testing.T) {
	// LoadMigrations solo lee el FS; no toca la conexión.
	m, err := newMigrator(context.Background(), nil)
	if err != nil {
		t.Fatalf("load migrations: %v", err)
	}
	if len(m.Migrations) != 1 {
		t.Fatalf("expected 1 migration, got %d", len(m.Migrations))
	}

	first := m.Migrations[0]
	if first.Sequence != 1 || !strings.HasPrefix(first.Name, "001_create_pets") {
		t.Fatalf("unexpected first migration %d %q", first.Sequence, first.Name)
	}
	for _, table := range []string{"vaccines", "pets", "pet_vaccinations"} {
		if !strings.Contains(first.UpSQL, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Fatalf("up migration missing table %s", table)
		}
		if !strings.Contains(first.DownSQL, "DROP TABLE IF EXISTS "+table) {
			t.Fatalf("down migration missing drop of %s", table)
		}
	}
}

// Integración contra un Postgres real; se salta si no hay DSN.
func TestPetsRepo_Integration(t *testing.T) {
	dsn := os.Getenv("WELOVEPETS_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("WELOVEPETS_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	if _, err := Migrate(ctx, dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// Segunda corrida: ya está en la última versión.
	res, err := Migrate(ctx, dsn)
	if err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	if res.From != res.To || res.To != 1 {
		t.Fatalf("expected schema already at version 1, got %+v", res)
	}

	db, err := Open(ctx, dsn, DefaultPoolOptions())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	var version int32
	if err := db.QueryRowContext(ctx, `SELECT version FROM `+versionTable).Scan(&version); err != nil {
		t.Fatalf("read version table: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected recorded version 1, got %d", version)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	var petID, vacID int64
	if err := tx.QueryRowContext(ctx, `INSERT INTO pets (name, species, sex) VALUES ('Rex', 'Dog', 'M') RETURNING id`).Scan(&petID); err != nil {
		t.Fatalf("insert pet: %v", err)
	}
	if err := tx.QueryRowContext(ctx, `INSERT INTO vaccines (name) VALUES ('Rabies') RETURNING id`).Scan(&vacID); err != nil {
		t.Fatalf("insert vaccine: %v", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO pet_vaccinations (pet_id, vaccine_id) VALUES ($1, $2)`, petID, vacID); err != nil {
		t.Fatalf("insert vaccination: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), `DELETE FROM pets WHERE id = $1`, petID)
		_, _ = db.ExecContext(context.Background(), `DELETE FROM vaccines WHERE id = $1`, vacID)
	})

	repo := NewPetsRepo(db)

	p, err := repo.GetByID(ctx, petID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Rex" || len(p.Vaccinations) != 1 || p.Vaccinations[0].Name != "Rabies" {
		t.Fatalf("unexpected pet %+v", p)
	}

	if _, err := repo.GetByID(ctx, -1); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found := false
	for _, it := range all {
		if it.ID == petID {
			found = true
		}
	}
	if !found {
		t.Fatalf("inserted pet missing from ListAll")
	}
}
