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
	appanalytics "github.com/tu-usuario/pos-api/internal/application/analytics"
	"github.com/tu-usuario/pos-api/internal/application/auth"
	"github.com/tu-usuario/pos-api/internal/application/inventory"
	"github.com/tu-usuario/pos-api/internal/application/sales"
	"github.com/tu-usuario/pos-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/pos-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/pos-api/internal/interfaces/http"
	"github.com/tu-usuario/pos-api/pkg/config"
	"github.com/tu-usuario/pos-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	logRepo := postgres.NewInventoryLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, cfg.POS.LowStockThreshold)
	userUC := usecase.NewUserUseCase(userRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo)
	restockUC := inventory.NewRestockUseCase(txRunner, logRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(reportRepo, cfg.POS.LowStockThreshold)

	// PDF: recibo de venta descargable
	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptUseCase(saleRepo, receiptGen, sales.StoreInfo{
		Name:  cfg.POS.StoreName,
		Phone: cfg.POS.StorePhone,
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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		UserUC:      userUC,
		SaleUC:      saleUC,
		ReceiptUC:   receiptUC,
		RestockUC:   restockUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
