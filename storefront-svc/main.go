package main

import (
	"log"
	"time"

	"botfactory-miniapp/config"
	httpapi "botfactory-miniapp/storefront-svc/internal/api/http"
	"botfactory-miniapp/storefront-svc/internal/cart"
	"botfactory-miniapp/storefront-svc/internal/service"
	"botfactory-miniapp/storefront-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	catalogCache := storage.NewCatalogCache(rdb, 10*time.Minute)

	publisher := storage.NewKafkaPublisher(config.NewKafkaWriter("orders"))

	businessSvc := service.NewBusinessService(repo)
	catalogSvc := service.NewCatalogService(repo, catalogCache)
	orderSvc := service.NewOrderService(repo, publisher, service.DefaultQRGenerator{
		BaseURL: config.GetEnv("MINIAPP_BASE_URL", "http://localhost:8080"),
	})

	handler := httpapi.NewHandler(businessSvc, catalogSvc, orderSvc, cart.NewStore())
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), router)
}
