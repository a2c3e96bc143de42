package http

import (
	"embed"
	"fmt"
	"io/fs"
	nethttp "net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/catalog-web/internal/application/dto"
	"github.com/jhoicas/catalog-web/internal/domain/locale"
	"github.com/jhoicas/catalog-web/pkg/logger"
)

//go:embed views
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

const layout = "layouts/main"

// Nombres de las vistas.
const (
	viewIndex          = "index"
	viewProducts       = "products"
	viewContact        = "contact"
	viewContactSuccess = "contact_success"
	viewAbout          = "about"
	viewFAQ            = "faq"
	viewPrivacyPolicy  = "privacy_policy"
	viewNotFound       = "not_found"
	viewError          = "error"
)

// newEngine carga las plantillas embebidas. Falla al arrancar si alguna no compila.
func newEngine() (*html.Engine, error) {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, fmt.Errorf("views: %w", err)
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("lines", specLines)
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("views: %w", err)
	}
	return engine, nil
}

func staticRoot() (nethttp.FileSystem, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static: %w", err)
	}
	return nethttp.FS(sub), nil
}

// specLines parte las especificaciones (una por línea) descartando líneas vacías.
func specLines(specs string) []string {
	var out []string
	for _, l := range strings.Split(specs, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// LanguageOption entrada del selector de idioma.
type LanguageOption struct {
	Code   string
	URL    string
	Active bool
}

// languageOptions la misma página en cada idioma soportado.
func languageOptions(path, current string, supported []string) []LanguageOption {
	rest := strings.TrimPrefix(strings.TrimPrefix(path, "/"), locale.FirstSegment(path))
	if rest == "" {
		rest = "/"
	}
	out := make([]LanguageOption, 0, len(supported))
	for _, code := range supported {
		out = append(out, LanguageOption{Code: code, URL: "/" + code + rest, Active: code == current})
	}
	return out
}

// renderer arma los datos comunes a todas las páginas.
type renderer struct {
	catalog    CatalogService
	translator Translator
	selector   *locale.Selector
	log        *logger.Logger
}

// render pinta view con la plantilla base. lang es el segmento de la ruta (datos del catálogo),
// ui el idioma resuelto (textos de la interfaz).
func (r *renderer) render(c *fiber.Ctx, view string, data fiber.Map) error {
	return r.page(c, view, data, true)
}

// page con strict=false un fallo al leer las categorías deja la navegación vacía en lugar de fallar.
func (r *renderer) page(c *fiber.Ctx, view string, data fiber.Map, strict bool) error {
	lang, ui := GetLang(c), locale.FromContext(c.UserContext())
	if ui == "" {
		// rutas sin LocaleMiddleware (p. ej. 404 fuera del grupo /:lang)
		lang = locale.FirstSegment(c.Path())
		ui = r.selector.Select(c.Path(), locale.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage)))
	}

	links, err := r.catalog.CategoryLinks(c.UserContext(), lang)
	if err != nil {
		if strict {
			return err
		}
		r.log.Warn().Err(err).Msg("navegación sin categorías")
	}
	if links == nil {
		links = []dto.CategoryLink{}
	}

	bind := fiber.Map{
		"Lang":          lang,
		"UILang":        ui,
		"T":             r.translator.Func(ui),
		"CategoryLinks": links,
		"Languages":     languageOptions(c.Path(), lang, r.selector.Supported()),
	}
	for k, v := range data {
		bind[k] = v
	}
	return c.Render(view, bind)
}
