package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-web/internal/domain/entity"
	"github.com/jhoicas/catalog-web/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListByCategory productos de la categoría en orden de id, con todas sus traducciones.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.category_id, p.image, t.lang, t.name, t.description, t.specs
		FROM products p
		LEFT JOIN product_translations t ON t.product_id = p.id
		WHERE p.category_id = $1
		ORDER BY p.id, t.lang`
	rows, err := r.q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	var current *entity.Product
	for rows.Next() {
		var (
			p                              entity.Product
			lang, name, description, specs *string
		)
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Image, &lang, &name, &description, &specs); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if current == nil || current.ID != p.ID {
			p.Translations = entity.Translations[entity.ProductTranslation]{}
			current = &p
			out = append(out, current)
		}
		if lang != nil {
			current.Translations[*lang] = entity.ProductTranslation{
				Lang:        *lang,
				Name:        deref(name),
				Description: deref(description),
				Specs:       deref(specs),
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products rows: %w", err)
	}
	return out, nil
}
