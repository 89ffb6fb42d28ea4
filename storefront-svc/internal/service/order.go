package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"botfactory-miniapp/storefront-svc/internal/domain"
)

var ErrInvalidOrder = errors.New("invalid order")

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

// Create validates and persists the order. The Kafka notification and the
// QR code are best-effort: once the insert commits the order stands, and
// a failed side effect never rolls it back.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrder(ctx, domain.OrderEvent{
			Type:            "new_order",
			OrderID:         order.ID,
			BotID:           order.BotID,
			CustomerName:    order.CustomerName,
			CustomerPhone:   order.CustomerPhone,
			CustomerAddress: order.CustomerAddress,
			Note:            order.Note,
			Items:           order.Items,
			Total:           order.Total,
			Timestamp:       time.Now(),
		})
	}

	return nil
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func validateOrder(order *domain.Order) error {
	if order.BotID <= 0 {
		return fmt.Errorf("%w: bot_id is required", ErrInvalidOrder)
	}
	if order.CustomerName == "" {
		return fmt.Errorf("%w: customer_name is required", ErrInvalidOrder)
	}
	if order.CustomerPhone == "" {
		return fmt.Errorf("%w: customer_phone is required", ErrInvalidOrder)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: items are required", ErrInvalidOrder)
	}
	return nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
