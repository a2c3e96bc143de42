// Package locale decide el idioma activo de una petición.
//
// Orden de resolución: primer segmento de la ruta → Accept-Language → idioma por defecto.
// El resultado siempre pertenece a la lista de idiomas soportados.
package locale

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/jhoicas/catalog-web/internal/domain"
)

// Idiomas del sitio.
const (
	English = "en"
	Polish  = "pl"
)

// DefaultSupported lista de idiomas soportados por defecto.
var DefaultSupported = []string{English, Polish}

// Selector resuelve el idioma activo contra una lista fija de idiomas soportados.
type Selector struct {
	supported []string
	fallback  string
}

// NewSelector valida la configuración: la lista no puede estar vacía y debe contener fallback.
func NewSelector(supported []string, fallback string) (*Selector, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("%w: lista de idiomas vacía", domain.ErrInvalidInput)
	}
	if !contains(supported, fallback) {
		return nil, fmt.Errorf("%w: idioma por defecto %q no está en %v", domain.ErrInvalidInput, fallback, supported)
	}
	s := make([]string, len(supported))
	copy(s, supported)
	return &Selector{supported: s, fallback: fallback}, nil
}

// Supported devuelve una copia de los idiomas soportados.
func (s *Selector) Supported() []string {
	out := make([]string, len(s.supported))
	copy(out, s.supported)
	return out
}

// Select resuelve el idioma activo de la petición.
func (s *Selector) Select(path string, accepted []language.Tag) string {
	return Select(path, accepted, s.supported, s.fallback)
}

// Negotiate elige el primer idioma aceptado por el cliente que esté soportado, o el de por defecto.
func (s *Selector) Negotiate(accepted []language.Tag) string {
	return negotiate(accepted, s.supported, s.fallback)
}

// Select es la versión sin estado de Selector.Select.
func Select(path string, accepted []language.Tag, supported []string, fallback string) string {
	if seg := FirstSegment(path); contains(supported, seg) {
		return seg
	}
	return negotiate(accepted, supported, fallback)
}

// FirstSegment devuelve el primer segmento de la ruta ("/pl/about" → "pl", "/" → "").
func FirstSegment(path string) string {
	seg, _, _ := strings.Cut(strings.Trim(path, "/"), "/")
	return seg
}

// ParseAcceptLanguage convierte la cabecera Accept-Language en etiquetas ordenadas por calidad.
// Una cabecera mal formada se trata como vacía.
func ParseAcceptLanguage(header string) []language.Tag {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}

func negotiate(accepted []language.Tag, supported []string, fallback string) string {
	for _, tag := range accepted {
		// und-PL y similares solo dan un idioma adivinado
		base, conf := tag.Base()
		if conf < language.High {
			continue
		}
		if code := base.String(); contains(supported, code) {
			return code
		}
	}
	return fallback
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

type ctxKey struct{}

// WithContext guarda el idioma resuelto en el contexto de la petición.
func WithContext(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// FromContext devuelve el idioma guardado con WithContext, o "" si no hay.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	lang, _ := ctx.Value(ctxKey{}).(string)
	return lang
}
