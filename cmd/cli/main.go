package main

import (
	"context"
	"log"
	"os"

	"order-service/internal/adapters/cli"
	"order-service/internal/app"
	"order-service/internal/config"
	"order-service/internal/core"
	"order-service/internal/db"
)

func main() {
	cfg := config.Load()

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
	cli.Run(ctx, svc, os.Args[1:])
}
