package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-web/internal/application/dto"
)

// PageHandler páginas públicas del sitio bajo /:lang.
type PageHandler struct {
	r       *renderer
	catalog CatalogService
	contact ContactService
}

// newPageHandler construye el handler.
func newPageHandler(r *renderer, catalog CatalogService, contact ContactService) *PageHandler {
	return &PageHandler{r: r, catalog: catalog, contact: contact}
}

// Home GET /:lang/
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return h.r.render(c, viewIndex, nil)
}

// Products GET /:lang/products/:id
// El id no numérico no llega aquí (restricción <int> en la ruta → 404).
func (h *PageHandler) Products(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}
	out, err := h.catalog.ListProducts(c.UserContext(), int64(id), GetLang(c))
	if err != nil {
		return err
	}
	return h.r.render(c, viewProducts, fiber.Map{
		"CategoryName": out.CategoryName,
		"Products":     out.Products,
	})
}

// ContactForm GET /:lang/contact. ?product_name= rellena el campo del producto.
func (h *PageHandler) ContactForm(c *fiber.Ctx) error {
	return h.r.render(c, viewContact, fiber.Map{
		"ProductName": c.Query("product_name"),
	})
}

// ContactSubmit POST /:lang/contact
// Sin validación: los campos ausentes se envían vacíos. Un fallo del correo termina en 500.
func (h *PageHandler) ContactSubmit(c *fiber.Ctx) error {
	in := dto.ContactRequest{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Message:     c.FormValue("message"),
		ProductName: c.FormValue("product_name"),
	}
	if err := h.contact.Submit(c.UserContext(), in); err != nil {
		return err
	}
	return h.r.render(c, viewContactSuccess, fiber.Map{
		"ProductName": in.ProductName,
	})
}

// ContactSuccess GET /:lang/contact_success
func (h *PageHandler) ContactSuccess(c *fiber.Ctx) error {
	return h.r.render(c, viewContactSuccess, nil)
}

// Static páginas sin datos propios (about, faq, privacy-policy).
func (h *PageHandler) Static(view string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h.r.render(c, view, nil)
	}
}
