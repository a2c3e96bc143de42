// Package store abre el almacén del catálogo según DB_DRIVER y expone sus puertos.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-web/internal/domain/repository"
	"github.com/jhoicas/catalog-web/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-web/internal/infrastructure/sqlite"
	"github.com/jhoicas/catalog-web/pkg/config"
	"github.com/jhoicas/catalog-web/pkg/logger"
)

// Store puertos del catálogo sobre el driver elegido.
type Store struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Seeder     repository.CatalogSeeder
	ping       func(ctx context.Context) error
	close      func()
}

// Ping verifica que el almacén responde. Lo usa /health.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close libera el pool o el handle SQLite.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open conecta con PostgreSQL (aplicando migraciones) o abre SQLite.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		version, err := postgres.RunMigrations(cfg.ConnectionString())
		if err != nil {
			return nil, fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Uint("version", version).Msg("migraciones aplicadas")

		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &Store{
			Categories: postgres.NewCategoryRepository(pool),
			Products:   postgres.NewProductRepository(pool),
			Seeder:     postgres.NewTxRunner(pool),
			ping:       pool.Ping,
			close:      pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("abrir SQLite: %w", err)
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("usando SQLite")
		return &Store{
			Categories: db,
			Products:   db,
			Seeder:     db,
			ping:       db.Ping,
			close:      func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("driver no soportado %q", cfg.Driver)
	}
}
