// Package sitemap genera sitemap.xml con enlaces alternativos por idioma (hreflang).
package sitemap

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

const (
	nsSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	nsXHTML   = "http://www.w3.org/1999/xhtml"
)

// Builder arma el documento para una URL base y una lista de idiomas.
type Builder struct {
	baseURL   string
	languages []string
}

// NewBuilder baseURL sin barra final, p. ej. https://example.com.
func NewBuilder(baseURL string, languages []string) *Builder {
	return &Builder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		languages: append([]string(nil), languages...),
	}
}

// URL devuelve la dirección absoluta de page en lang. page es relativa al prefijo de idioma ("" = inicio).
func (b *Builder) URL(lang, page string) string {
	return fmt.Sprintf("%s/%s/%s", b.baseURL, lang, strings.TrimLeft(page, "/"))
}

// Build genera un <url> por cada combinación página × idioma, cada uno con todas sus alternativas.
func (b *Builder) Build(pages []string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", nsSitemap)
	urlset.CreateAttr("xmlns:xhtml", nsXHTML)

	for _, page := range pages {
		for _, lang := range b.languages {
			u := urlset.CreateElement("url")
			u.CreateElement("loc").SetText(b.URL(lang, page))
			for _, alt := range b.languages {
				link := u.CreateElement("xhtml:link")
				link.CreateAttr("rel", "alternate")
				link.CreateAttr("hreflang", alt)
				link.CreateAttr("href", b.URL(alt, page))
			}
		}
	}
	doc.Indent(2)
	return doc
}

// Render serializa el documento de Build.
func (b *Builder) Render(pages []string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.Build(pages).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write sitemap: %w", err)
	}
	return buf.Bytes(), nil
}
