package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-web/internal/application/dto"
	"github.com/jhoicas/catalog-web/internal/domain"
	"github.com/jhoicas/catalog-web/internal/domain/entity"
	"github.com/jhoicas/catalog-web/internal/domain/repository"
)

// UseCase consultas de solo lectura sobre el catálogo traducido.
type UseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{categories: categories, products: products}
}

// ListProducts devuelve el nombre traducido de la categoría y sus productos traducidos a lang.
// El nombre siempre tiene valor (entity.UnknownName si falta la traducción);
// los productos sin traducción se omiten manteniendo el orden del resto.
func (uc *UseCase) ListProducts(ctx context.Context, categoryID int64, lang string) (*dto.CategoryProductsResponse, error) {
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", categoryID, err)
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	products, err := uc.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products of category %d: %w", categoryID, err)
	}

	out := &dto.CategoryProductsResponse{
		CategoryName: category.DisplayName(lang),
		Products:     make([]dto.ProductView, 0, len(products)),
	}
	for _, p := range products {
		tr, ok := p.Localized(lang)
		if !ok {
			continue
		}
		out.Products = append(out.Products, toProductView(p, tr))
	}
	return out, nil
}

// CategoryLinks enlaces de navegación para las categorías que tienen nombre en lang.
func (uc *UseCase) CategoryLinks(ctx context.Context, lang string) ([]dto.CategoryLink, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	links := make([]dto.CategoryLink, 0, len(categories))
	for _, c := range categories {
		if !c.HasTranslation(lang) {
			continue
		}
		links = append(links, dto.CategoryLink{
			ID:   c.ID,
			Name: c.DisplayName(lang),
			URL:  CategoryURL(lang, c.ID),
		})
	}
	return links, nil
}

// Categories lista todas las categorías con sus traducciones.
func (uc *UseCase) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CategoryURL ruta pública de la página de una categoría.
func CategoryURL(lang string, categoryID int64) string {
	return fmt.Sprintf("/%s/products/%d", lang, categoryID)
}

func toProductView(p *entity.Product, tr entity.ProductTranslation) dto.ProductView {
	return dto.ProductView{
		Name:        tr.Name,
		Description: tr.Description,
		Specs:       tr.Specs,
		Image:       p.Image,
	}
}
