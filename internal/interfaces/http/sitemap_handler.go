package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-web/internal/infrastructure/sitemap"
)

// páginas fijas relativas al prefijo de idioma
var staticPages = []string{"", "contact", "about", "faq", "privacy-policy"}

// SitemapHandler GET /sitemap.xml
type SitemapHandler struct {
	catalog CatalogService
	builder *sitemap.Builder
}

// NewSitemapHandler construye el handler.
func NewSitemapHandler(catalog CatalogService, builder *sitemap.Builder) *SitemapHandler {
	return &SitemapHandler{catalog: catalog, builder: builder}
}

// Get lista las páginas fijas y una página por categoría, en todos los idiomas.
func (h *SitemapHandler) Get(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.UserContext())
	if err != nil {
		return err
	}
	pages := append([]string(nil), staticPages...)
	for _, cat := range categories {
		pages = append(pages, "products/"+strconv.FormatInt(cat.ID, 10))
	}

	out, err := h.builder.Render(pages)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}
