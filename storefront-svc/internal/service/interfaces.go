package service

import (
	"context"

	"botfactory-miniapp/storefront-svc/internal/domain"
)

type BotRepository interface {
	GetBot(id int) (*domain.Bot, error)
}

type CatalogRepository interface {
	ListProductRows(botID int) ([]domain.ProductRow, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type CatalogCache interface {
	Get(ctx context.Context, botID int) ([]domain.CatalogItem, error)
	Set(ctx context.Context, botID int, items []domain.CatalogItem) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, evt domain.OrderEvent) error
}

type BusinessServiceInterface interface {
	Get(id int) (*domain.Business, error)
	Contact(id int) (*domain.ContactInfo, error)
}

type CatalogServiceInterface interface {
	List(ctx context.Context, botID int) ([]domain.CatalogItem, error)
	Search(ctx context.Context, botID int, query string) ([]domain.CatalogItem, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	GetQRCode(orderID int) ([]byte, error)
}
