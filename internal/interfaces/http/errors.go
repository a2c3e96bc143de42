package http

import (
	"errors"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-web/internal/domain"
)

// errorHandler traduce errores a páginas: ErrNotFound y rutas inexistentes → not_found (404);
// cualquier otro error se registra y pinta la página de error (500).
func errorHandler(r *renderer) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		view := viewError

		var fe *fiber.Error
		switch {
		case errors.Is(err, domain.ErrNotFound):
			status, view = fiber.StatusNotFound, viewNotFound
		case errors.As(err, &fe):
			status = fe.Code
			if fe.Code == fiber.StatusNotFound {
				view = viewNotFound
			}
		}

		if status >= fiber.StatusInternalServerError {
			r.log.Error().Err(err).
				Str("request_id", GetRequestID(c)).
				Str("path", c.Path()).
				Msg("error procesando la petición")
		}

		c.Status(status)
		if renderErr := r.page(c, view, nil, false); renderErr != nil {
			r.log.Error().Err(renderErr).Str("view", view).Msg("no se pudo pintar la página de error")
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(status).SendString(nethttp.StatusText(status))
		}
		return nil
	}
}
