package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "coffeehouse/coffee-svc/internal/api/http"
	"coffeehouse/coffee-svc/internal/service"
	"coffeehouse/coffee-svc/internal/storage"
	"coffeehouse/config"

	"go.uber.org/zap"
)

func main() {
	config.Load()

	logger := config.MustInitLogger("coffee-svc")
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo service.CatalogRepository
	if config.PostgresConfigured() {
		db := config.MustInitPostgres(logger)
		defer db.Close()

		pg := storage.NewPostgresRepository(db)
		if err := pg.EnsureSchema(); err != nil {
			logger.Fatal("failed to ensure schema", zap.Error(err))
		}
		if err := pg.Seed(storage.SeedItems()); err != nil {
			logger.Fatal("failed to seed catalog", zap.Error(err))
		}
		repo = pg
	} else {
		logger.Info("DB_HOST not set, serving the built-in catalog")
		repo = storage.NewStaticCatalog()
	}

	rdb := config.MustInitRedis(logger)
	defer rdb.Close()

	var publisher service.OrderPublisher
	if config.KafkaConfigured() {
		writer := config.NewKafkaWriter(config.GetEnv("ORDERS_TOPIC", "coffee-orders"))
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		logger.Info("KAFKA_BROKER not set, submitted orders stay in Redis only")
	}

	sessionTTL := config.GetDuration("SESSION_TTL", 30*time.Minute)

	catalog := service.NewCatalogService(
		repo,
		storage.NewRedisCache(rdb, config.GetDuration("CATALOG_CACHE_TTL", 10*time.Minute)),
		logger,
	)
	sessions := service.NewSessionManager(
		catalog,
		storage.NewRedisOrderState(rdb, config.GetDuration("CHECKOUT_TTL", 24*time.Hour)),
		storage.NewRedisFlashStore(rdb, sessionTTL, logger),
		publisher,
		sessionTTL,
		logger,
	)
	go sessions.RunJanitor(ctx, time.Minute)

	handler := httpapi.NewHandler(catalog, sessions, logger)
	addr := ":" + config.GetEnv("PORT", "8081")
	if err := httpapi.StartServer(ctx, addr, httpapi.NewRouter(handler), logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	sessions.WaitPublished()
}
