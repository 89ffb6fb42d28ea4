package main

import (
	"log"
	"net/http"

	"botfactory-miniapp/api-gateway/internal/gateway"
	"botfactory-miniapp/config"

	"github.com/rs/cors"
)

func main() {
	cfg := gateway.Config{
		StorefrontSvcURL: config.GetEnv("STOREFRONT_SVC_URL", "http://localhost:8081"),
		StaticDir:        config.GetEnv("STATIC_DIR", "./static/miniapp"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	log.Println("API Gateway starting on port 8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
