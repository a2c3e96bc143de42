package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/catalog-web/internal/domain"
	"github.com/jhoicas/catalog-web/internal/domain/entity"
	"github.com/jhoicas/catalog-web/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*Store)(nil)
	_ repository.ProductRepository  = (*Store)(nil)
	_ repository.CatalogSeeder      = (*Store)(nil)
)

// GetByID obtiene una categoría con sus traducciones. (nil, nil) si no existe.
func (s *Store) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := s.db.QueryRowContext(ctx, `SELECT id FROM categories WHERE id = ?`, id).Scan(&c.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT lang, name FROM category_translations WHERE category_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get category translations: %w", err)
	}
	defer rows.Close()

	c.Translations = entity.Translations[entity.CategoryTranslation]{}
	for rows.Next() {
		var t entity.CategoryTranslation
		if err := rows.Scan(&t.Lang, &t.Name); err != nil {
			return nil, fmt.Errorf("scan category translation: %w", err)
		}
		c.Translations[t.Lang] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category translations rows: %w", err)
	}
	return &c, nil
}

// List todas las categorías por id ascendente.
func (s *Store) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, t.lang, t.name
		FROM categories c
		LEFT JOIN category_translations t ON t.category_id = c.id
		ORDER BY c.id, t.lang`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	var current *entity.Category
	for rows.Next() {
		var (
			id         int64
			lang, name sql.NullString
		)
		if err := rows.Scan(&id, &lang, &name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if current == nil || current.ID != id {
			current = &entity.Category{ID: id, Translations: entity.Translations[entity.CategoryTranslation]{}}
			out = append(out, current)
		}
		if lang.Valid {
			current.Translations[lang.String] = entity.CategoryTranslation{Lang: lang.String, Name: name.String}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories rows: %w", err)
	}
	return out, nil
}

// ListByCategory productos de la categoría por id ascendente, con todas sus traducciones.
func (s *Store) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.category_id, p.image, t.lang, t.name, t.description, t.specs
		FROM products p
		LEFT JOIN product_translations t ON t.product_id = p.id
		WHERE p.category_id = ?
		ORDER BY p.id, t.lang`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	var current *entity.Product
	for rows.Next() {
		var (
			p                              entity.Product
			lang, name, description, specs sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Image, &lang, &name, &description, &specs); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if current == nil || current.ID != p.ID {
			p.Translations = entity.Translations[entity.ProductTranslation]{}
			current = &p
			out = append(out, current)
		}
		if lang.Valid {
			current.Translations[lang.String] = entity.ProductTranslation{
				Lang:        lang.String,
				Name:        name.String,
				Description: description.String,
				Specs:       specs.String,
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products rows: %w", err)
	}
	return out, nil
}

// Seed inserta el catálogo completo en una transacción y asigna los IDs generados.
func (s *Store) Seed(ctx context.Context, categories []*entity.Category) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range categories {
		if err := insertCategory(ctx, tx, c); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Reset borra todo el catálogo y reinicia los contadores de id.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		`DELETE FROM product_translations`,
		`DELETE FROM products`,
		`DELETE FROM category_translations`,
		`DELETE FROM categories`,
		`DELETE FROM sqlite_sequence WHERE name IN ('categories', 'category_translations', 'products', 'product_translations')`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset catalog: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertCategory(ctx context.Context, tx *sql.Tx, c *entity.Category) error {
	res, err := tx.ExecContext(ctx, `INSERT INTO categories DEFAULT VALUES`)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert category id: %w", err)
	}
	for lang, t := range c.Translations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO category_translations (category_id, lang, name) VALUES (?, ?, ?)`,
			c.ID, lang, t.Name,
		); err != nil {
			return wrapInsert("insert category translation", err)
		}
	}
	for _, p := range c.Products {
		p.CategoryID = c.ID
		if err := insertProduct(ctx, tx, p); err != nil {
			return err
		}
	}
	return nil
}

func insertProduct(ctx context.Context, tx *sql.Tx, p *entity.Product) error {
	res, err := tx.ExecContext(ctx, `INSERT INTO products (category_id, image) VALUES (?, ?)`, p.CategoryID, p.Image)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("insert product id: %w", err)
	}
	for lang, t := range p.Translations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO product_translations (product_id, lang, name, description, specs) VALUES (?, ?, ?, ?, ?)`,
			p.ID, lang, t.Name, t.Description, t.Specs,
		); err != nil {
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
