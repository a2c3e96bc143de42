package entity

// Translations indexa las traducciones de una entidad por código de idioma.
// Al ser un mapa, cada idioma tiene como máximo una traducción.
type Translations[T any] map[string]T

// Lookup devuelve la traducción para lang y si existe.
func (t Translations[T]) Lookup(lang string) (T, bool) {
	v, ok := t[lang]
	return v, ok
}
