package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/catalog-web/internal/application/dto"
	"github.com/jhoicas/catalog-web/internal/domain/entity"
	"github.com/jhoicas/catalog-web/internal/domain/locale"
	"github.com/jhoicas/catalog-web/internal/infrastructure/sitemap"
	"github.com/jhoicas/catalog-web/pkg/logger"
)

// CatalogService lo implementa *catalog.UseCase.
type CatalogService interface {
	ListProducts(ctx context.Context, categoryID int64, lang string) (*dto.CategoryProductsResponse, error)
	CategoryLinks(ctx context.Context, lang string) ([]dto.CategoryLink, error)
	Categories(ctx context.Context) ([]*entity.Category, error)
}

// ContactService lo implementa *contact.UseCase.
type ContactService interface {
	Submit(ctx context.Context, in dto.ContactRequest) error
}

// Translator lo implementa *i18n.Translator.
type Translator interface {
	Func(locale string) func(key string) string
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	BaseURL    string // URL pública para sitemap.xml
	Catalog    CatalogService
	Contact    ContactService
	Translator Translator
	Selector   *locale.Selector
	Logger     *logger.Logger
	Health     func(ctx context.Context) error // comprobación del almacén; nil = solo liveness
}

// NewApp crea la aplicación Fiber con vistas, middlewares y rutas registradas.
func NewApp(deps RouterDeps) (*fiber.App, error) {
	if deps.Catalog == nil || deps.Contact == nil || deps.Translator == nil || deps.Selector == nil {
		return nil, fmt.Errorf("http: dependencias incompletas")
	}
	engine, err := newEngine()
	if err != nil {
		return nil, err
	}
	static, err := staticRoot()
	if err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	r := &renderer{
		catalog:    deps.Catalog,
		translator: deps.Translator,
		selector:   deps.Selector,
		log:        deps.Logger.Named("http"),
	}

	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		Views:        engine,
		ViewsLayout:  layout,
		ErrorHandler: errorHandler(r),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(RequestLogger(deps.Logger.Named("access")))
	app.Use(recover.New())

	routes(app, deps, r, static)
	return app, nil
}

// routes registra las rutas del sitio. Las rutas fijas van antes del grupo /:lang
// para que el parámetro no las capture.
func routes(app *fiber.App, deps RouterDeps, r *renderer, static nethttp.FileSystem) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Health != nil {
			if err := deps.Health(c.UserContext()); err != nil {
				r.log.Error().Err(err).Msg("health: almacén no disponible")
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": deps.AppName})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   static,
		MaxAge: 3600,
	}))

	sitemapHandler := NewSitemapHandler(deps.Catalog, sitemap.NewBuilder(deps.BaseURL, deps.Selector.Supported()))
	app.Get("/sitemap.xml", sitemapHandler.Get)

	// Raíz: redirige al idioma negociado con Accept-Language
	app.Get("/", func(c *fiber.Ctx) error {
		lang := deps.Selector.Negotiate(locale.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage)))
		return c.Redirect("/"+lang+"/", fiber.StatusFound)
	})

	// Páginas por idioma. El segmento no se valida: el selector decide el idioma de la interfaz.
	pages := app.Group("/:lang", LocaleMiddleware(deps.Selector))
	pageHandler := newPageHandler(r, deps.Catalog, deps.Contact)
	pages.Get("/", pageHandler.Home)
	pages.Get("/products/:id<int>", pageHandler.Products)
	pages.Get("/contact", pageHandler.ContactForm)
	pages.Post("/contact", pageHandler.ContactSubmit)
	pages.Get("/contact_success", pageHandler.ContactSuccess)
	pages.Get("/about", pageHandler.Static(viewAbout))
	pages.Get("/faq", pageHandler.Static(viewFAQ))
	pages.Get("/privacy-policy", pageHandler.Static(viewPrivacyPolicy))
}
