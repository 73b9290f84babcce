package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	tern "github.com/jackc/tern/v2/migrate"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Tabla donde tern guarda la versión aplicada.
const versionTable = "schema_version"

type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// DefaultPoolOptions son defaults razonables para un sitio chico.
func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxIdleTime: 5 * time.Minute,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string, opts PoolOptions) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return db, nil
}

// MigrateResult indica desde qué versión y hasta cuál se migró.
type MigrateResult struct {
	From int32
	To   int32
}

// Migrate lleva el schema a la última migración embebida usando tern.
// Usa una conexión pgx directa (no el pool) y es idempotente.
func Migrate(ctx context.Context, dsn string) (MigrateResult, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return MigrateResult{}, fmt.Errorf("postgres: migrate: connect: %w", err)
	}
	defer conn.Close(ctx)

	m, err := newMigrator(ctx, conn)
	if err != nil {
		return MigrateResult{}, err
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return MigrateResult{}, fmt.Errorf("postgres: migrate: current version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return MigrateResult{}, fmt.Errorf("postgres: migrate: %w", err)
	}

	return MigrateResult{From: from, To: int32(len(m.Migrations))}, nil
}

func newMigrator(ctx context.Context, conn *pgx.Conn) (*tern.Migrator, error) {
	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return nil, fmt.Errorf("postgres: migrate: new migrator: %w", err)
	}

	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, err
	}
	if err := m.LoadMigrations(sub); err != nil {
		return nil, fmt.Errorf("postgres: migrate: load migrations: %w", err)
	}
	return m, nil
}
