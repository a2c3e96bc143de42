package repository

import (
	"context"

	"github.com/jhoicas/catalog-web/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos (DIP).
type ProductRepository interface {
	// ListByCategory devuelve los productos de la categoría en orden de almacenamiento (id ascendente),
	// cada uno con todas sus traducciones.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
}
