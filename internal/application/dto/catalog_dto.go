package dto

// ProductView producto traducido para la capa de presentación (sin IDs).
type ProductView struct {
	Name        string
	Description string
	Specs       string
	Image       string
}

// CategoryProductsResponse salida de la página de una categoría.
type CategoryProductsResponse struct {
	CategoryName string
	Products     []ProductView
}

// CategoryLink enlace de navegación a una categoría traducida.
type CategoryLink struct {
	ID   int64
	Name string
	URL  string
}
