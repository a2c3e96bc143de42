package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/catalog-web/internal/application/catalog"
	"github.com/jhoicas/catalog-web/internal/application/contact"
	"github.com/jhoicas/catalog-web/internal/domain/locale"
	"github.com/jhoicas/catalog-web/internal/infrastructure/i18n"
	"github.com/jhoicas/catalog-web/internal/infrastructure/mail"
	"github.com/jhoicas/catalog-web/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/catalog-web/internal/interfaces/http"
	"github.com/jhoicas/catalog-web/pkg/config"
	"github.com/jhoicas/catalog-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Strs("languages", cfg.I18n.Supported).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén del catálogo")
	}
	defer st.Close()

	translator, err := i18n.NewTranslator(cfg.I18n.Default, log.Named("i18n"))
	if err != nil {
		log.Fatal().Err(err).Msg("cargar traducciones")
	}
	if missing := translator.Missing(cfg.I18n.Supported); len(missing) > 0 {
		log.Warn().Strs("languages", missing).Msg("idiomas sin textos de interfaz, se usará el idioma por defecto")
	}
	selector, err := locale.NewSelector(cfg.I18n.Supported, cfg.I18n.Default)
	if err != nil {
		log.Fatal().Err(err).Msg("idiomas soportados")
	}

	// Sin MAIL_HOST los correos solo se registran en el log.
	var mailer contact.Mailer
	if cfg.Mail.Enabled() {
		mailer = mail.NewSMTPMailer(cfg.Mail)
	} else {
		log.Warn().Msg("MAIL_HOST vacío: el formulario de contacto no enviará correos")
		mailer = mail.NewLogMailer(log.Named("mail"))
	}

	catalogUC := catalog.NewUseCase(st.Categories, st.Products)
	contactUC := contact.NewUseCase(mailer, contact.Config{
		Recipient: cfg.Mail.Recipient,
		Sender:    cfg.Mail.From,
	})

	app, err := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		BaseURL:    cfg.HTTP.BaseURL,
		Catalog:    catalogUC,
		Contact:    contactUC,
		Translator: translator,
		Selector:   selector,
		Logger:     log,
		Health:     st.Ping,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar servidor HTTP")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
