// Package i18n traduce los textos fijos de la interfaz (menús, formularios, páginas estáticas).
// Los datos del catálogo no pasan por aquí: tienen sus propias traducciones en el almacén.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/catalog-web/pkg/logger"
)

//go:embed active.*.toml
var localeFS embed.FS

// Translator envoltorio sobre Bundle/Localizer de go-i18n.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             *logger.Logger
}

// NewTranslator construye un Translator con los archivos active.*.toml embebidos.
// defaultLocale es el idioma de respaldo cuando falta un mensaje.
func NewTranslator(defaultLocale string, log *logger.Logger) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: idioma por defecto inválido %q: %w", defaultLocale, err)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("i18n: listar archivos: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: cargar %s: %w", file, err)
		}
	}

	return &Translator{bundle: bundle, defaultLanguage: tag, log: log}, nil
}

// Languages idiomas con archivo de mensajes cargado.
func (t *Translator) Languages() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}

// Missing devuelve los idiomas de supported que no tienen archivo de mensajes.
// Esos idiomas se muestran con los textos del idioma por defecto.
func (t *Translator) Missing(supported []string) []string {
	loaded := make(map[string]struct{})
	for _, l := range t.Languages() {
		loaded[l] = struct{}{}
	}
	var out []string
	for _, l := range supported {
		if _, ok := loaded[l]; !ok {
			out = append(out, l)
		}
	}
	return out
}

// T traduce el mensaje key al idioma locale.
// Si no existe cae al idioma por defecto y finalmente devuelve la propia key.
func (t *Translator) T(locale, key string, data map[string]any) string {
	return t.localize(t.localizer(locale), locale, key, data)
}

// Func devuelve una función de traducción ligada a locale, para usar en las plantillas: {{call .T "nav.home"}}.
// El Localizer se crea una sola vez y se reutiliza en cada llamada.
func (t *Translator) Func(locale string) func(key string) string {
	loc := t.localizer(locale)
	return func(key string) string {
		return t.localize(loc, locale, key, nil)
	}
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	if locale == "" {
		return i18n.NewLocalizer(t.bundle, t.defaultLanguage.String())
	}
	return i18n.NewLocalizer(t.bundle, locale, t.defaultLanguage.String())
}

func (t *Translator) localize(loc *i18n.Localizer, locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Debug().Err(err).Str("key", key).Str("locale", locale).Msg("i18n: mensaje no encontrado")
		return key
	}
	return msg
}
