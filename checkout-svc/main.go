package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	httpapi "coffeehouse/checkout-svc/internal/api/http"
	"coffeehouse/checkout-svc/internal/service"
	"coffeehouse/checkout-svc/internal/storage"
	"coffeehouse/config"

	"go.uber.org/zap"
)

func main() {
	config.Load()

	logger := config.MustInitLogger("checkout-svc")
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(logger)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	rdb := config.MustInitRedis(logger)
	defer rdb.Close()

	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("BASE_URL", "http://localhost:8080")}
	orders := service.NewOrderService(repo, qr, storage.NewPopularityStore(rdb), logger)

	if config.KafkaConfigured() {
		reader := config.NewKafkaReader(config.GetEnv("ORDERS_TOPIC", "coffee-orders"), "checkout-svc-consumer")
		defer reader.Close()
		go service.NewConsumer(reader, orders, logger).Start(ctx)
	} else {
		logger.Warn("KAFKA_BROKER not set, only direct order creation is available")
	}

	addr := ":" + config.GetEnv("PORT", "8082")
	if err := httpapi.StartServer(ctx, addr, httpapi.NewRouter(httpapi.NewHandler(orders, logger)), logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
