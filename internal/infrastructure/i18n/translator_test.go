package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-web/pkg/logger"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator("en", logger.Nop())
	require.NoError(t, err)
	return tr
}

func TestT_TraduceSegunIdioma(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Contact", tr.T("en", "nav.contact", nil))
	assert.Equal(t, "Kontakt", tr.T("pl", "nav.contact", nil))
}

func TestT_IdiomaDesconocidoCaeAlDefault(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "About us", tr.T("fr", "nav.about", nil))
	assert.Equal(t, "About us", tr.T("", "nav.about", nil))
}

func TestT_KeyDesconocidaDevuelveKey(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "nav.missing", tr.T("pl", "nav.missing", nil))
	assert.Equal(t, "", tr.T("pl", "", nil))
}

func TestFunc_LigadaAlIdioma(t *testing.T) {
	tr := newTranslator(t)

	f := tr.Func("pl")
	assert.Equal(t, "O nas", f("nav.about"))
	assert.Equal(t, "Kontakt", f("nav.contact"))
	assert.Equal(t, "nav.missing", f("nav.missing"))
	assert.Equal(t, "", f(""))
}

// La misma función se usa muchas veces por página; cada llamada debe dar lo mismo que T.
func TestFunc_ReutilizadaCoincideConT(t *testing.T) {
	tr := newTranslator(t)

	for _, locale := range []string{"en", "pl", "fr", ""} {
		f := tr.Func(locale)
		for i := 0; i < 3; i++ {
			for _, key := range []string{"nav.home", "about.heading", "faq.q2"} {
				assert.Equal(t, tr.T(locale, key, nil), f(key), "locale=%q key=%s", locale, key)
			}
		}
	}
	assert.Equal(t, "About us", tr.Func("fr")("nav.about"))
}

func TestLanguages_ArchivosCargados(t *testing.T) {
	assert.ElementsMatch(t, []string{"en", "pl"}, newTranslator(t).Languages())
}

func TestMissing_IdiomasSinArchivo(t *testing.T) {
	tr := newTranslator(t)

	assert.Empty(t, tr.Missing([]string{"en", "pl"}))
	assert.Equal(t, []string{"de"}, tr.Missing([]string{"en", "de", "pl"}))
}

func TestNewTranslator_DefaultInvalido(t *testing.T) {
	_, err := NewTranslator("??", logger.Nop())
	assert.Error(t, err)
}

// Todas las keys del archivo en inglés deben existir también en polaco.
func TestCatalogos_MismasKeys(t *testing.T) {
	tr := newTranslator(t)
	for _, key := range []string{
		"site.title", "nav.home", "nav.products", "nav.about", "nav.contact", "nav.privacy",
		"home.heading", "products.specs", "products.ask", "products.empty",
		"contact.heading", "contact.submit", "contact_success.heading", "about.heading",
		"faq.heading", "privacy.heading", "notfound.heading", "error.heading",
	} {
		assert.NotEqual(t, key, tr.T("pl", key, nil), "falta %s en pl", key)
		assert.NotEqual(t, tr.T("en", key, nil), tr.T("pl", key, nil), "sin traducir %s", key)
	}
}
