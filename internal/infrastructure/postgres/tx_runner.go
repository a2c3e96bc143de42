package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/catalog-web/internal/domain"
	"github.com/jhoicas/catalog-web/internal/domain/entity"
	"github.com/jhoicas/catalog-web/internal/domain/repository"
)

var _ repository.CatalogSeeder = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Seed inserta categorías, productos y traducciones en una única transacción y asigna los IDs generados.
// Una traducción repetida para el mismo idioma devuelve domain.ErrDuplicate.
func (r *TxRunner) Seed(ctx context.Context, categories []*entity.Category) error {
	return r.Run(ctx, func(tx pgx.Tx) error {
		for _, c := range categories {
			if err := insertCategory(ctx, tx, c); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset vacía las tablas del catálogo y reinicia las secuencias.
func (r *TxRunner) Reset(ctx context.Context) error {
	return r.Run(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `TRUNCATE product_translations, products, category_translations, categories RESTART IDENTITY`)
		if err != nil {
			return fmt.Errorf("truncate catalog: %w", err)
		}
		return nil
	})
}

func insertCategory(ctx context.Context, q Querier, c *entity.Category) error {
	if err := q.QueryRow(ctx, `INSERT INTO categories DEFAULT VALUES RETURNING id`).Scan(&c.ID); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	for lang, t := range c.Translations {
		_, err := q.Exec(ctx,
			`INSERT INTO category_translations (category_id, lang, name) VALUES ($1, $2, $3)`,
			c.ID, lang, t.Name,
		)
		if err != nil {
			return wrapInsert("insert category translation", err)
		}
	}
	for _, p := range c.Products {
		p.CategoryID = c.ID
		if err := insertProduct(ctx, q, p); err != nil {
			return err
		}
	}
	return nil
}

func insertProduct(ctx context.Context, q Querier, p *entity.Product) error {
	err := q.QueryRow(ctx,
		`INSERT INTO products (category_id, image) VALUES ($1, $2) RETURNING id`,
		p.CategoryID, p.Image,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	for lang, t := range p.Translations {
		_, err := q.Exec(ctx,
			`INSERT INTO product_translations (product_id, lang, name, description, specs) VALUES ($1, $2, $3, $4, $5)`,
			p.ID, lang, t.Name, t.Description, t.Specs,
		)
		if err != nil {
			return wrapInsert("insert product translation", err)
		}
	}
	return nil
}

func wrapInsert(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
