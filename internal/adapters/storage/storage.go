// Package storage elige el adapter de pets.Repository según la config.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	mem "welovepets/internal/adapters/storage/memory"
	pg "welovepets/internal/adapters/storage/postgres"
	lite "welovepets/internal/adapters/storage/sqlite"
	"welovepets/internal/domain/pets"
	"welovepets/internal/platform/config"
	"welovepets/internal/platform/logger"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open devuelve el repo y un Closer que libera la conexión (no-op en memoria).
// Si cfg.Migrate está activo, aplica el schema en los drivers SQL.
func Open(ctx context.Context, cfg config.StoreConfig) (pets.Repository, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverMemory, "":
		var (
			repo *mem.PetRepo
			err  error
		)
		if strings.TrimSpace(cfg.Fixtures) == "" {
			repo, err = mem.NewPetRepo()
		} else {
			repo, err = mem.LoadFixtures(cfg.Fixtures)
		}
		if err != nil {
			return nil, nil, err
		}
		return repo, nopCloser{}, nil

	case DriverPostgres:
		if cfg.Migrate {
			if _, err := pg.Migrate(ctx, cfg.DSN); err != nil {
				return nil, nil, err
			}
		}
		db, err := pg.Open(ctx, cfg.DSN, pg.PoolOptions{
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxIdleTime: cfg.ConnMaxIdleTime,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return pg.NewPetsRepo(db), db, nil

	case DriverSQLite:
		db, err := lite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Migrate {
			if err := lite.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		return lite.NewPetsRepo(db), db, nil

	default:
		return nil, nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}

// Migrate aplica el schema del driver SQL configurado y cierra la conexión.
// En Postgres las migraciones son versionadas (tern); en SQLite el schema es idempotente.
func Migrate(ctx context.Context, cfg config.StoreConfig, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverPostgres:
		res, err := pg.Migrate(ctx, cfg.DSN)
		if err != nil {
			return err
		}
		if res.From == res.To {
			log.Info("database schema up to date", map[string]any{"version": res.To})
		} else {
			log.Info("migrated database schema", map[string]any{"from": res.From, "to": res.To})
		}
		return nil

	case DriverSQLite:
		cfg.Migrate = true
		_, closer, err := Open(ctx, cfg)
		if err != nil {
			return err
		}
		log.Info("database schema applied", map[string]any{"store": DriverSQLite})
		return closer.Close()

	default:
		return fmt.Errorf("storage: driver %q has no schema to migrate", cfg.Driver)
	}
}
