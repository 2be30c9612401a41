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

	"github.com/jhoicas/taller-api/internal/application/auth"
	"github.com/jhoicas/taller-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/taller-api/internal/infrastructure/pdf"
	"github.com/jhoicas/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/taller-api/internal/interfaces/http"
	"github.com/jhoicas/taller-api/pkg/config"
	"github.com/jhoicas/taller-api/pkg/logger"
)

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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	workerRepo := postgres.NewWorkerRepository(pool)
	assistenceRepo := postgres.NewAssistenceRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	factoryRepo := postgres.NewFactoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	workerUC := usecase.NewWorkerUseCase(workerRepo)
	assistenceUC := usecase.NewAssistenceUseCase(workerRepo, assistenceRepo)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo)
	factoryUC := usecase.NewFactoryUseCase(factoryRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	costingUC := usecase.NewCostingUseCase(workerRepo, cfg.Costeo)

	// PDF: reporte de producción descargable
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, factoryRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WorkerUC:     workerUC,
		AssistenceUC: assistenceUC,
		DeliveryUC:   deliveryUC,
		FactoryUC:    factoryUC,
		UserUC:       userUC,
		CostingUC:    costingUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
