package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDelivery          = errors.New("no se pudo entregar el mensaje")
	ErrUnsupportedLocale = errors.New("idioma no soportado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
)
