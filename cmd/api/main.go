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
	"github.com/tu-usuario/inventrack-api/internal/application/activity"
	"github.com/tu-usuario/inventrack-api/internal/application/auth"
	"github.com/tu-usuario/inventrack-api/internal/application/order"
	"github.com/tu-usuario/inventrack-api/internal/application/usecase"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
	"github.com/tu-usuario/inventrack-api/internal/infrastructure/postgres"
	infraredis "github.com/tu-usuario/inventrack-api/internal/infrastructure/redis"
	httpRouter "github.com/tu-usuario/inventrack-api/internal/interfaces/http"
	"github.com/tu-usuario/inventrack-api/pkg/config"
	"github.com/tu-usuario/inventrack-api/pkg/logger"
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
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	itemRepo := postgres.NewOrderItemRepository(pool)

	// Caché Redis opcional: si REDIS_ADDR está vacío se trabaja directo
	// contra PostgreSQL.
	var productRepo repository.ProductRepository = postgres.NewProductRepository(pool)
	var cacheInvalidator order.CacheInvalidator
	if cfg.Redis.Enabled() {
		redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		cached := infraredis.NewCachedProductRepo(productRepo, redisClient, log)
		productRepo = cached
		cacheInvalidator = cached
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de productos habilitado")
	}

	txRunner := postgres.NewTxRunner(pool)
	recorder := activity.NewRecorder(activityRepo, log)

	placeOrderUC := order.NewPlaceOrderUseCase(txRunner, recorder, cacheInvalidator)
	updateStatusUC := order.NewUpdateStatusUseCase(orderRepo, recorder)
	orderQueryUC := order.NewQueryUseCase(orderRepo, itemRepo)
	productUC := usecase.NewProductUseCase(productRepo, recorder)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	feedUC := activity.NewFeedUseCase(activityRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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
		Title:    "InvenTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PlaceOrder:   placeOrderUC,
		UpdateStatus: updateStatusUC,
		OrderQuery:   orderQueryUC,
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		SupplierUC:   supplierUC,
		CategoryUC:   categoryUC,
		ActivityFeed: feedUC,
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
