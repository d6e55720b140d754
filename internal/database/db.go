package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/portfolio-content-api/internal/config"
	"github.com/rs/zerolog"
)

// connectTimeout bounds the initial ping
const connectTimeout = 5 * time.Second

// DB is the connection pool backing the content mirror
type DB struct {
	*sql.DB
	migrationsPath string
	log            zerolog.Logger
}

// New opens the mirror database and verifies it answers a ping
func New(ctx context.Context, cfg *config.DatabaseConfig, log zerolog.Logger) (*DB, error) {
	pool, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.MaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Name, err)
	}

	db := &DB{
		DB:             pool,
		migrationsPath: cfg.MigrationsPath,
		log:            log.With().Str("component", "database").Logger(),
	}

	db.log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Mirror database connected")

	return db, nil
}

// RunMigrations applies every pending schema migration
func (db *DB) RunMigrations() error {
	return db.migrate("up", func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown rolls back the most recent schema migration
func (db *DB) MigrateDown() error {
	return db.migrate("down", func(m *migrate.Migrate) error { return m.Steps(-1) })
}

func (db *DB) migrate(direction string, step func(*migrate.Migrate) error) error {
	log := db.log.With().Str("direction", direction).Str("path", db.migrationsPath).Logger()
	log.Info().Msg("Running schema migrations")

	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+db.migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to load migrations from %s: %w", db.migrationsPath, err)
	}

	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate %s: %w", direction, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Schema migrations done")
	return nil
}

// Stats returns connection pool statistics
func (db *DB) Stats() sql.DBStats {
	return db.DB.Stats()
}
