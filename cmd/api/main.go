package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/swaggo/swag"

	"github.com/jhoicas/brand-catalog-api/docs"
	"github.com/jhoicas/brand-catalog-api/internal/application/catalog"
	"github.com/jhoicas/brand-catalog-api/internal/application/dto"
	"github.com/jhoicas/brand-catalog-api/internal/application/pricing"
	"github.com/jhoicas/brand-catalog-api/internal/infrastructure/events"
	"github.com/jhoicas/brand-catalog-api/internal/infrastructure/memory"
	"github.com/jhoicas/brand-catalog-api/internal/infrastructure/metrics"
	"github.com/jhoicas/brand-catalog-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/brand-catalog-api/internal/interfaces/http"
	"github.com/jhoicas/brand-catalog-api/pkg/config"
	"github.com/jhoicas/brand-catalog-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("replace_policy", cfg.Catalog.ReplacePolicy).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacenamiento: PostgreSQL o memoria.
	var tx catalog.TxRunner
	switch cfg.Store.Driver {
	case "memory":
		tx = memory.NewStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.Store.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migración del esquema")
			}
		}
		tx = postgres.NewTxRunner(pool)
	}

	// Eventos: Redis si REDIS_ADDR está definido; si no, no-op.
	var publisher catalog.EventPublisher = catalog.NoopPublisher{}
	if cfg.Redis.Addr != "" {
		rp, err := events.NewRedisPublisher(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, eventos desactivados")
		} else {
			defer rp.Close()
			publisher = rp
			log.Info().Str("channel", cfg.Redis.Channel).Msg("publicación de eventos en redis")
		}
	}

	var m *metrics.Metrics
	var observer catalog.Observer
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Prefix)
		observer = m
	}

	policy, err := catalog.ParseReplaceMode(cfg.Catalog.ReplacePolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("política de reemplazo")
	}

	deps := catalog.Deps{Tx: tx, Events: publisher, Log: log.Component("catalog"), Observer: observer}
	brandUC := catalog.NewBrandUseCase(deps)
	productUC := catalog.NewProductUseCase(deps)
	var pricingObs pricing.Observer
	if m != nil {
		pricingObs = m
	}
	pricingUC := pricing.NewPricingUseCase(tx, pricingObs)

	if cfg.Catalog.Seed {
		res, err := catalog.Seed(ctx, brandUC, catalog.ReferenceCatalog(), 4)
		if err != nil {
			log.Fatal().Err(err).Msg("carga del catálogo de referencia")
		}
		log.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("catálogo de referencia cargado")
	}

	app := httpRouter.NewApp(cfg.App.Name)
	app.Use(httpRouter.RequestObserver(log.Component("http"), m))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.DocsEnabled {
		if _, err := os.Stat(swaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: swaggerFile,
				Path:     "docs",
				Title:    "Brand Catalog API",
			}))
		}
		app.Get("/openapi.json", func(c *fiber.Ctx) error {
			doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
			if err != nil {
				return err
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.SendString(doc)
		})
	}

	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name, Store: cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BrandUC:       brandUC,
		ProductUC:     productUC,
		PricingUC:     pricingUC,
		ReplacePolicy: policy,
		Log:           log.Component("http"),
	})

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
