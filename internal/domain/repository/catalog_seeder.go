package repository

import (
	"context"

	"github.com/jhoicas/catalog-web/internal/domain/entity"
)

// CatalogSeeder persiste un catálogo completo (categorías, productos y traducciones) en una sola transacción.
// Asigna los IDs generados a las entidades recibidas.
type CatalogSeeder interface {
	Seed(ctx context.Context, categories []*entity.Category) error
	Reset(ctx context.Context) error
}
