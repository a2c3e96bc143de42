// Package seed carga el catálogo inicial desde TOML y lo convierte en entidades listas para CatalogSeeder.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jhoicas/catalog-web/internal/domain"
	"github.com/jhoicas/catalog-web/internal/domain/entity"
)

//go:embed catalog.toml
var defaultCatalog []byte

type fixtureFile struct {
	Categories []fixtureCategory `toml:"categories"`
}

type fixtureCategory struct {
	Translations map[string]categoryText `toml:"translations"`
	Products     []fixtureProduct        `toml:"products"`
}

type categoryText struct {
	Name string `toml:"name"`
}

type fixtureProduct struct {
	Image        string                 `toml:"image"`
	Translations map[string]productText `toml:"translations"`
}

type productText struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Specs       string `toml:"specs"`
}

// Default devuelve el catálogo embebido en el binario.
func Default(supported []string) ([]*entity.Category, error) {
	return Load(bytes.NewReader(defaultCatalog), supported)
}

// LoadFile lee un catálogo TOML desde disco.
func LoadFile(path string, supported []string) ([]*entity.Category, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return Load(f, supported)
}

// Load decodifica y valida el catálogo. Rechaza campos desconocidos, idiomas fuera de supported
// y nombres vacíos.
func Load(r io.Reader, supported []string) ([]*entity.Category, error) {
	var file fixtureFile
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	allowed := make(map[string]struct{}, len(supported))
	for _, l := range supported {
		allowed[l] = struct{}{}
	}

	out := make([]*entity.Category, 0, len(file.Categories))
	for i, fc := range file.Categories {
		c := &entity.Category{Translations: entity.Translations[entity.CategoryTranslation]{}}
		for _, lang := range sortedKeys(fc.Translations) {
			if err := checkText(allowed, lang, fc.Translations[lang].Name); err != nil {
				return nil, fmt.Errorf("category %d: %w", i+1, err)
			}
			c.Translations[lang] = entity.CategoryTranslation{Lang: lang, Name: strings.TrimSpace(fc.Translations[lang].Name)}
		}

		for j, fp := range fc.Products {
			p := &entity.Product{
				Image:        strings.TrimSpace(fp.Image),
				Translations: entity.Translations[entity.ProductTranslation]{},
			}
			for _, lang := range sortedKeys(fp.Translations) {
				text := fp.Translations[lang]
				if err := checkText(allowed, lang, text.Name); err != nil {
					return nil, fmt.Errorf("category %d product %d: %w", i+1, j+1, err)
				}
				p.Translations[lang] = entity.ProductTranslation{
					Lang:        lang,
					Name:        strings.TrimSpace(text.Name),
					Description: text.Description,
					Specs:       text.Specs,
				}
			}
			c.Products = append(c.Products, p)
		}
		out = append(out, c)
	}
	return out, nil
}

func checkText(allowed map[string]struct{}, lang, name string) error {
	if _, ok := allowed[lang]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, lang)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name for %q", domain.ErrInvalidInput, lang)
	}
	return nil
}

// sortedKeys para que los errores de validación sean deterministas.
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
