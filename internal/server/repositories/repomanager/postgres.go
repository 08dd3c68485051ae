// Package repomanager provides the RepositoryManager implementations of the
// tracking server: PostgreSQL with goose migrations, or an in-memory store
// seeded with the demo shipments.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/droplogistics/internal/server/migrations"
	"github.com/dmitrijs2005/droplogistics/internal/server/repositories/shipments"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories over a
// single connection pool.
type PostgresRepositoryManager struct {
	db        *sql.DB
	shipments *shipments.PostgresRepository
}

// seams for tests
var (
	sqlOpen        = sql.Open
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
)

// NewPostgresRepositoryManager opens dsn with the pgx driver, checks the
// connection and brings the schema up to date.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	m, err := newPostgresRepositoryManager(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

func newPostgresRepositoryManager(ctx context.Context, db *sql.DB) (*PostgresRepositoryManager, error) {
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	m := &PostgresRepositoryManager{db: db, shipments: shipments.NewPostgresRepository(db)}
	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return m, nil
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the managed connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Shipments() shipments.Repository {
	return m.shipments
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
