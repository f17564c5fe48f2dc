package main

import (
	"context"
	"net/http"

	"order-service/internal/adapters/web"
	"order-service/internal/app"
	"order-service/internal/config"
	"order-service/internal/core"
	"order-service/internal/db"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	statusService := core.NewStatusService(pool)
	catalogService := core.NewCatalogService(pool)
	orderService := core.NewOrderService(pool, statusService, catalogService)
	profitService := core.NewProfitService(orderService)

	svc := app.NewAppService(orderService, profitService)
	handler := web.NewHandler(svc, log, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Infof("server starting on :%s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
