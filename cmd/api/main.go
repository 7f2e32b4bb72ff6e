package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pakoelda-code/wom-partes/internal/application/inventory"
	"github.com/pakoelda-code/wom-partes/internal/application/reports"
	"github.com/pakoelda-code/wom-partes/internal/application/usecase"
	"github.com/pakoelda-code/wom-partes/internal/infrastructure/excel"
	"github.com/pakoelda-code/wom-partes/internal/infrastructure/postgres"
	httpRouter "github.com/pakoelda-code/wom-partes/internal/interfaces/http"
	"github.com/pakoelda-code/wom-partes/pkg/config"
	"github.com/pakoelda-code/wom-partes/pkg/logger"
)

// runMigrations aplica las migraciones numeradas una sola vez al arranque.
// El esquema es versionado y explícito: nada de introspección en runtime.
func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	locationRepo := postgres.NewLocationRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.Inventory.LockTimeout)

	locationUC := usecase.NewLocationUseCase(locationRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, locationRepo, cfg.Inventory.SearchLimit)
	engine := inventory.NewMovementEngine(txRunner)
	movementQuery := inventory.NewMovementQuery(itemRepo, movementRepo, cfg.Inventory.ReportRowLimit)
	reportUC := reports.NewReportUseCase(reportRepo, excel.NewExporter(), cfg.Inventory.ReportRowLimit)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		LocationUC: locationUC,
		ItemUC:     itemUC,
		Engine:     engine,
		Movements:  movementQuery,
		ReportUC:   reportUC,
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
