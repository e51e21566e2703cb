package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcourt/config"
	httpapi "foodcourt/internal/api/http"
	"foodcourt/internal/service"
	"foodcourt/internal/storage"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := repo.Seed(); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	var cache service.PaymentMethodCache
	if config.RedisConfigured() {
		cache = storage.NewPaymentMethodCache(config.MustInitRedis(), 5*time.Minute)
	}

	var publisher service.OrderEventPublisher
	if config.KafkaConfigured() {
		publisher = storage.NewOrderEventPublisher(config.NewKafkaWriter("order-events"))
	}

	secret := config.JWTSecret()
	authSvc := service.NewAuthService(repo, secret)
	restSvc := service.NewRestaurantService(repo, repo)
	menuSvc := service.NewMenuService(repo, repo)
	paySvc := service.NewPaymentService(repo, cache)
	orderSvc := service.NewOrderService(repo, repo, repo, paySvc, service.QRReceipt{}, publisher)

	handler := httpapi.NewHandler(authSvc, restSvc, menuSvc, orderSvc, paySvc, secret)

	httpServer := &http.Server{
		Addr:    config.HTTPAddr(),
		Handler: httpapi.NewRouter(handler),
	}

	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
