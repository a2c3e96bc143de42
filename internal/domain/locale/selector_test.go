package locale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/catalog-web/internal/domain"
	"github.com/jhoicas/catalog-web/internal/domain/locale"
)

func tags(codes ...string) []language.Tag {
	out := make([]language.Tag, 0, len(codes))
	for _, c := range codes {
		out = append(out, language.MustParse(c))
	}
	return out
}

func newSelector(t *testing.T) *locale.Selector {
	t.Helper()
	s, err := locale.NewSelector(locale.DefaultSupported, locale.English)
	require.NoError(t, err)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Segmento de ruta
// ──────────────────────────────────────────────────────────────────────────────

func TestSelect_SegmentoDeRutaGana(t *testing.T) {
	s := newSelector(t)

	assert.Equal(t, "pl", s.Select("/pl/about", tags("en")))
	assert.Equal(t, "pl", s.Select("/pl/", nil))
	assert.Equal(t, "en", s.Select("/en/products/1", tags("pl", "fr")))
}

func TestSelect_SegmentoNoSoportadoNegocia(t *testing.T) {
	s := newSelector(t)

	assert.Equal(t, "pl", s.Select("/fr/about", tags("pl")))
	assert.Equal(t, "en", s.Select("/fr/about", nil))
}

func TestSelect_SegmentoSensibleAMayusculas(t *testing.T) {
	s := newSelector(t)

	assert.Equal(t, "en", s.Select("/PL/about", nil), "PL no coincide con pl")
}

// ──────────────────────────────────────────────────────────────────────────────
// Negociación con Accept-Language
// ──────────────────────────────────────────────────────────────────────────────

func TestSelect_RaizNegociaPrimerSoportado(t *testing.T) {
	s := newSelector(t)

	assert.Equal(t, "pl", s.Select("/", tags("fr", "pl", "en")))
}

func TestSelect_RaizSinCoincidenciaUsaDefault(t *testing.T) {
	s := newSelector(t)

	assert.Equal(t, "en", s.Select("/", tags("fr", "de")))
}

func TestSelect_RegionSeReduceAIdiomaBase(t *testing.T) {
	s := newSelector(t)

	assert.Equal(t, "pl", s.Select("/", tags("pl-PL")))
	assert.Equal(t, "en", s.Select("/", tags("en-GB", "pl")))
}

func TestSelect_IdiomaAdivinadoNoCuenta(t *testing.T) {
	s := newSelector(t)

	assert.Equal(t, "en", s.Select("/", tags("und-PL")))
	assert.Equal(t, "pl", s.Select("/", tags("und-PL", "pl")))
	assert.Equal(t, "en", s.Negotiate(locale.ParseAcceptLanguage("und-PL")))
}

func TestSelect_SiempreDevuelveIdiomaSoportado(t *testing.T) {
	s := newSelector(t)
	paths := []string{"/", "", "/xx", "/pl", "/en/faq", "//", "/de/contact"}
	accepted := [][]language.Tag{nil, tags("fr"), tags("pl"), tags("de", "en"), tags("zh-Hant")}

	for _, p := range paths {
		for _, a := range accepted {
			got := s.Select(p, a)
			assert.Contains(t, []string{"en", "pl"}, got, "path=%q accepted=%v", p, a)
		}
	}
}

func TestParseAcceptLanguage_OrdenaPorCalidad(t *testing.T) {
	got := locale.ParseAcceptLanguage("fr;q=0.9, pl;q=0.5, en;q=0.1")
	require.Len(t, got, 3)

	s := newSelector(t)
	assert.Equal(t, "pl", s.Negotiate(got))
	assert.Equal(t, "en", s.Negotiate(locale.ParseAcceptLanguage("en;q=0.8, pl;q=0.2")))
}

func TestParseAcceptLanguage_VaciaOMalFormada(t *testing.T) {
	assert.Empty(t, locale.ParseAcceptLanguage(""))
	assert.Empty(t, locale.ParseAcceptLanguage("   "))
	assert.Empty(t, locale.ParseAcceptLanguage("en;q=abc"))
}

func TestFirstSegment(t *testing.T) {
	assert.Equal(t, "pl", locale.FirstSegment("/pl/products/1"))
	assert.Equal(t, "en", locale.FirstSegment("en"))
	assert.Equal(t, "", locale.FirstSegment("/"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuración y contexto
// ──────────────────────────────────────────────────────────────────────────────

func TestNewSelector_ValidaConfiguracion(t *testing.T) {
	_, err := locale.NewSelector(nil, "en")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = locale.NewSelector([]string{"en", "pl"}, "de")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSelector_SupportedEsCopia(t *testing.T) {
	s := newSelector(t)
	got := s.Supported()
	got[0] = "xx"

	assert.Equal(t, []string{"en", "pl"}, s.Supported())
}

func TestContext_GuardaIdioma(t *testing.T) {
	ctx := locale.WithContext(context.Background(), "pl")
	assert.Equal(t, "pl", locale.FromContext(ctx))
	assert.Equal(t, "", locale.FromContext(context.Background()))
}
