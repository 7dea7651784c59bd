package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/motor-mingle/server/internal/api/http"
	"github.com/motor-mingle/server/internal/api/http/handlers"
	"github.com/motor-mingle/server/internal/auth"
	"github.com/motor-mingle/server/internal/cache"
	"github.com/motor-mingle/server/internal/config"
	"github.com/motor-mingle/server/internal/events"
	"github.com/motor-mingle/server/internal/observability"
	"github.com/motor-mingle/server/internal/persistence"
	"github.com/motor-mingle/server/internal/repository"
	"github.com/motor-mingle/server/internal/service"
	"github.com/motor-mingle/server/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	readiness := map[string]handlers.Pinger{"postgres": pg}

	var responseCache *cache.Cache
	if cfg.Cache.Enabled {
		redis := persistence.NewRedis(ctx, cfg.Redis, logger)
		defer redis.Close()
		responseCache = cache.New(redis.Client, cfg.Cache.TTL(), logger)
		readiness["redis"] = redis
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	brandRepo := repository.NewBrandRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	listingRepo := repository.NewListingRepository(pool)
	savedAdRepo := repository.NewSavedAdRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.Start(ctx, worker.Background{
		Notifications:  service.NewNotificationService(dispatcher, logger, cfg.Notification),
		Metrics:        metrics,
		Logger:         logger,
		ReportInterval: cfg.Logger.MetricsReportInterval(),
	})

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(productRepo, brandRepo, responseCache)
	cartService := service.NewCartService(cartRepo, productRepo)
	listingService := service.NewListingService(service.ListingDependencies{
		ListingRepo: listingRepo,
		UserRepo:    userRepo,
		Cache:       responseCache,
		Dispatcher:  dispatcher,
		Tx:          repository.NewTransactor(pool),
	})
	savedAdService := service.NewSavedAdService(savedAdRepo, listingRepo)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), auth.NewGate(userRepo), logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger, metrics),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readiness),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Cart:           handlers.NewCartHandler(cartService),
		Listings:       handlers.NewListingsHandler(listingService),
		SavedAds:       handlers.NewSavedAdsHandler(savedAdService),
		Metrics:        handlers.NewMetricsHandler(metrics),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
