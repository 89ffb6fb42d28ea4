package main

import (
	"context"
	"net/http"

	"botfactory-miniapp/config"
	"botfactory-miniapp/notifier-svc/internal/service"
	"botfactory-miniapp/notifier-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	reader := config.NewKafkaReader("orders", "notifier-svc")
	defer reader.Close()

	consumer := service.NewConsumer(
		reader,
		storage.NewStore(db),
		service.NewTelegramSender(&http.Client{}),
	)
	consumer.Start(context.Background())
}
