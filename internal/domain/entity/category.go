package entity

// UnknownName es el valor que se muestra cuando una categoría no tiene traducción en el idioma pedido.
const UnknownName = "Unknown"

// CategoryTranslation nombre visible de una categoría en un idioma.
type CategoryTranslation struct {
	Lang string
	Name string
}

// Category representa una categoría del catálogo.
// Products solo se llena al sembrar el catálogo; las consultas de productos van por ProductRepository.
type Category struct {
	ID           int64
	Translations Translations[CategoryTranslation]
	Products     []*Product
}

// DisplayName resuelve el nombre de la categoría en lang. Nunca falla: sin traducción devuelve UnknownName.
func (c *Category) DisplayName(lang string) string {
	if t, ok := c.Translations.Lookup(lang); ok {
		return t.Name
	}
	return UnknownName
}

// HasTranslation indica si la categoría tiene nombre en lang.
func (c *Category) HasTranslation(lang string) bool {
	_, ok := c.Translations.Lookup(lang)
	return ok
}
