// seed carga el catálogo inicial (categorías, productos y traducciones) en el almacén configurado.
//
// Uso: go run ./cmd/seed [-fixture ruta/catalogo.toml] [-reset]
// Sin -fixture usa el catálogo embebido. -reset vacía las tablas antes de sembrar.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/catalog-web/internal/domain/entity"
	"github.com/jhoicas/catalog-web/internal/infrastructure/seed"
	"github.com/jhoicas/catalog-web/internal/infrastructure/store"
	"github.com/jhoicas/catalog-web/pkg/config"
	"github.com/jhoicas/catalog-web/pkg/logger"
)

func main() {
	fixture := flag.String("fixture", "", "archivo TOML con el catálogo (por defecto el embebido)")
	reset := flag.Bool("reset", false, "vaciar el catálogo antes de sembrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	var categories []*entity.Category
	if *fixture == "" {
		categories, err = seed.Default(cfg.I18n.Supported)
	} else {
		categories, err = seed.LoadFile(*fixture, cfg.I18n.Supported)
	}
	if err != nil {
		log.Fatal().Err(err).Str("fixture", *fixture).Msg("leer catálogo")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := store.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén del catálogo")
	}
	defer st.Close()

	if *reset {
		if err := st.Seeder.Reset(ctx); err != nil {
			log.Fatal().Err(err).Msg("vaciar catálogo")
		}
		log.Info().Msg("catálogo vaciado")
	}

	if err := st.Seeder.Seed(ctx, categories); err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo")
	}

	products := 0
	for _, c := range categories {
		products += len(c.Products)
	}
	log.Info().Int("categories", len(categories)).Int("products", products).Msg("catálogo sembrado")
}
