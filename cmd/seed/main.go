// Command seed carga el catálogo de referencia (marcas A a I) en PostgreSQL.
// Las marcas existentes se omiten, así que puede ejecutarse varias veces.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/brand-catalog-api/internal/application/catalog"
	"github.com/jhoicas/brand-catalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/brand-catalog-api/pkg/config"
	"github.com/jhoicas/brand-catalog-api/pkg/logger"
)

func main() {
	parallelism := flag.Int("parallel", 4, "altas de marca concurrentes")
	migrate := flag.Bool("migrate", true, "aplicar el esquema antes de cargar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
	}

	brandUC := catalog.NewBrandUseCase(catalog.Deps{Tx: postgres.NewTxRunner(pool), Log: log})
	res, err := catalog.Seed(ctx, brandUC, catalog.ReferenceCatalog(), *parallelism)
	if err != nil {
		log.Fatal().Err(err).Int("created", res.Created).Msg("carga interrumpida")
	}
	log.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("catálogo de referencia cargado")
}
