package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nikiya/zaiko-api/internal/application/inventory"
	"github.com/nikiya/zaiko-api/internal/application/query"
	"github.com/nikiya/zaiko-api/internal/application/report"
	"github.com/nikiya/zaiko-api/internal/application/usecase"
	infraexcel "github.com/nikiya/zaiko-api/internal/infrastructure/excel"
	infrapdf "github.com/nikiya/zaiko-api/internal/infrastructure/pdf"
	"github.com/nikiya/zaiko-api/internal/infrastructure/state"
	"github.com/nikiya/zaiko-api/internal/infrastructure/storage"
	httpRouter "github.com/nikiya/zaiko-api/internal/interfaces/http"
	"github.com/nikiya/zaiko-api/pkg/config"
	"github.com/nikiya/zaiko-api/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := newBlobStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer closeStore()

	container := state.NewContainer(ctx, store, log)

	engine := query.NewEngine(container.Products(), container.Transactions(), container.Categories())
	productUC := usecase.NewProductUseCase(container.Products(), container.Transactions())
	categoryUC := usecase.NewCategoryUseCase(container.Categories())
	referenceUC := usecase.NewReferenceUseCase(container.Staff(), container.Destinations())
	updateStockUC := inventory.NewUpdateStockUseCase(container.Products(), container.Transactions(), log)
	reportBuilder := report.NewBuilder(engine)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	excelWriter := infraexcel.NewExcelizeReportWriter()

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

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		ReferenceUC: referenceUC,
		UpdateStock: updateStockUC,
		Engine:      engine,
		Reports:     reportBuilder,
		PDF:         pdfGenerator,
		Excel:       excelWriter,
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

// newBlobStore abre el backend de persistencia según STORAGE_DRIVER. La función
// de cierre devuelta siempre es segura de llamar.
func newBlobStore(ctx context.Context, cfg config.StorageConfig) (storage.BlobStore, func(), error) {
	switch cfg.Driver {
	case "file":
		store, err := storage.NewFileStore(cfg.Path)
		if err != nil {
			return nil, func() {}, err
		}
		return store, func() {}, nil
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	case "redis":
		store, err := storage.NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, func() {}, err
		}
		return store, func() { _ = store.Close() }, nil
	case "postgres":
		store, err := storage.NewPostgresStore(ctx, cfg.DB.ConnectionString())
		if err != nil {
			return nil, func() {}, err
		}
		return store, store.Close, nil
	default:
		// config.Load ya valida el driver; esto cubre construcción directa.
		return nil, func() {}, fmt.Errorf("storage: driver desconocido: %q", cfg.Driver)
	}
}
