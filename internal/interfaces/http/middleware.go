package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/catalog-web/internal/domain/locale"
	"github.com/jhoicas/catalog-web/pkg/logger"
)

// Locals keys usadas por los middlewares.
const (
	LocalLang      = "lang"       // segmento de idioma tal como llega en la ruta
	LocalRequestID = "request_id" // id de la petición
)

// HeaderRequestID cabecera con el id de la petición (entrante o generado).
const HeaderRequestID = "X-Request-ID"

// LocaleMiddleware resuelve el idioma de la interfaz y lo guarda en el UserContext (locale.FromContext).
// El segmento crudo queda en c.Locals: el catálogo se consulta con él aunque no esté soportado.
func LocaleMiddleware(sel *locale.Selector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		ui := sel.Select(path, locale.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage)))

		c.Locals(LocalLang, locale.FirstSegment(path))
		c.SetUserContext(locale.WithContext(c.UserContext(), ui))
		c.Set(fiber.HeaderContentLanguage, ui)
		return c.Next()
	}
}

// RequestLogger registra cada petición con su id, estado y latencia.
// Los errores del handler se resuelven aquí con el ErrorHandler de la app para poder registrar el estado final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("lang", locale.FromContext(c.UserContext())).
			Msg("http request")
		return nil
	}
}

// GetLang devuelve el segmento de idioma de la ruta (después de LocaleMiddleware).
func GetLang(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalLang).(string)
	return s
}

// GetRequestID devuelve el id asignado por RequestLogger.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
