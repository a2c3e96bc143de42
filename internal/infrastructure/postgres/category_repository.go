package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalog-web/internal/domain/entity"
	"github.com/jhoicas/catalog-web/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetByID obtiene una categoría con sus traducciones. (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT id FROM categories WHERE id = $1`, id).Scan(&c.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	rows, err := r.q.Query(ctx, `SELECT lang, name FROM category_translations WHERE category_id = $1`, id)
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

// List obtiene todas las categorías (id ascendente) con sus traducciones.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `
		SELECT c.id, t.lang, t.name
		FROM categories c
		LEFT JOIN category_translations t ON t.category_id = c.id
		ORDER BY c.id, t.lang`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	var current *entity.Category
	for rows.Next() {
		var (
			id         int64
			lang, name *string
		)
		if err := rows.Scan(&id, &lang, &name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if current == nil || current.ID != id {
			current = &entity.Category{ID: id, Translations: entity.Translations[entity.CategoryTranslation]{}}
			out = append(out, current)
		}
		if lang != nil && name != nil {
			current.Translations[*lang] = entity.CategoryTranslation{Lang: *lang, Name: *name}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories rows: %w", err)
	}
	return out, nil
}
