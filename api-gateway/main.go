package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeehouse/api-gateway/internal/gateway"
	"coffeehouse/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	config.Load()

	logger := config.MustInitLogger("api-gateway")
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		CoffeeSvcURL:   config.GetEnv("COFFEE_SVC_URL", "http://localhost:8081"),
		CheckoutSvcURL: config.GetEnv("CHECKOUT_SVC_URL", "http://localhost:8082"),
		FrontendDir:    config.GetEnv("FRONTEND_DIR", "./frontend"),
	}, &http.Client{Timeout: config.GetDuration("UPSTREAM_TIMEOUT", 15*time.Second)}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + config.GetEnv("PORT", "8080"),
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("API Gateway starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("gateway stopped", zap.Error(err))
	}
}
