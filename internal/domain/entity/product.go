package entity

// ProductTranslation textos de un producto en un idioma. Specs es texto libre (una línea por característica).
type ProductTranslation struct {
	Lang        string
	Name        string
	Description string
	Specs       string
}

// Product representa un producto del catálogo. Image es una ruta opaca relativa a /static/.
type Product struct {
	ID           int64
	CategoryID   int64
	Image        string
	Translations Translations[ProductTranslation]
}

// Localized devuelve la traducción del producto en lang.
// A diferencia de Category.DisplayName no hay valor por defecto: los productos sin traducción se omiten del listado.
func (p *Product) Localized(lang string) (ProductTranslation, bool) {
	return p.Translations.Lookup(lang)
}
