package repository

import (
	"context"

	"github.com/jhoicas/catalog-web/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura de categorías (DIP).
// GetByID devuelve (nil, nil) si la categoría no existe.
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}
