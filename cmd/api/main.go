package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	apptally "github.com/jhoicas/stocktally-api/internal/application/tally"
	"github.com/jhoicas/stocktally-api/internal/application/usecase"
	"github.com/jhoicas/stocktally-api/internal/infrastructure/excel"
	"github.com/jhoicas/stocktally-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stocktally-api/internal/interfaces/http"
	"github.com/jhoicas/stocktally-api/pkg/config"
	"github.com/jhoicas/stocktally-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Component("postgres").Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	itemUC := usecase.NewItemUseCase(itemRepo, adjustmentRepo)
	exportUC := apptally.NewExportUseCase(itemRepo, excel.NewSnapshotWriter())
	previewUC := apptally.NewPreviewUseCase(excel.NewSnapshotReader(), itemRepo)
	commitUC := apptally.NewCommitUseCase(txRunner)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Export y commit hacen trabajo remoto; el parse de archivos grandes
		// también tarda. Timeouts holgados sobre los de lectura/escritura.
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // archivos de conteo subidos
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Tally API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:    itemUC,
		ExportUC:  exportUC,
		PreviewUC: previewUC,
		CommitUC:  commitUC,
		JWTSecret: cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		httpLog.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
