package tests

import (
	"context"
	"errors"
	"testing"

	"botfactory-miniapp/storefront-svc/internal/domain"
	"botfactory-miniapp/storefront-svc/internal/mocks"
	"botfactory-miniapp/storefront-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type staticQR struct{}

func (staticQR) Generate(orderID int) ([]byte, error) {
	return []byte{0x89, 0x50, 0x4e, 0x47}, nil
}

func validOrder() *domain.Order {
	return &domain.Order{
		BotID:         7,
		CustomerName:  "Akmal",
		CustomerPhone: "+998901234567",
		Items: []domain.OrderItem{
			{ID: 1, Name: "Choy", Price: 1000, Quantity: 2},
		},
		Total: 2000,
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		mutate        func(*domain.Order)
		prepareMocks  func(*mocks.OrderRepository, *mocks.OrderPublisher)
		expectedError error
	}{
		{
			name:   "success_persists_and_publishes",
			mutate: func(*domain.Order) {},
			prepareMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				repo.On("SaveQRCode", mock.Anything, mock.Anything).Return(nil).Once()
				pub.On("PublishOrder", ctx, mock.AnythingOfType("domain.OrderEvent")).Return(nil).Once()
			},
		},
		{
			name:          "missing_bot_id",
			mutate:        func(o *domain.Order) { o.BotID = 0 },
			prepareMocks:  func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			expectedError: service.ErrInvalidOrder,
		},
		{
			name:          "missing_customer_name",
			mutate:        func(o *domain.Order) { o.CustomerName = "" },
			prepareMocks:  func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			expectedError: service.ErrInvalidOrder,
		},
		{
			name:          "missing_customer_phone",
			mutate:        func(o *domain.Order) { o.CustomerPhone = "" },
			prepareMocks:  func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			expectedError: service.ErrInvalidOrder,
		},
		{
			name:          "empty_items",
			mutate:        func(o *domain.Order) { o.Items = nil },
			prepareMocks:  func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			expectedError: service.ErrInvalidOrder,
		},
		{
			name:   "publish_failure_does_not_fail_order",
			mutate: func(*domain.Order) {},
			prepareMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
				repo.On("SaveQRCode", mock.Anything, mock.Anything).Return(nil).Once()
				pub.On("PublishOrder", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			pub := mocks.NewOrderPublisher(t)
			svc := service.NewOrderService(repo, pub, staticQR{})

			order := validOrder()
			testCase.mutate(order)
			testCase.prepareMocks(repo, pub)

			err := svc.Create(ctx, order)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_CreateRepoFailure(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	pub := mocks.NewOrderPublisher(t)
	svc := service.NewOrderService(repo, pub, nil)

	dbErr := errors.New("db down")
	repo.On("CreateOrder", mock.Anything).Return(dbErr).Once()

	err := svc.Create(context.Background(), validOrder())
	assert.ErrorIs(t, err, dbErr)
}

func TestOrderService_GetQRCodeRegeneratesWhenEmpty(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repo, nil, staticQR{})

	repo.On("GetQRCode", 42).Return([]byte{}, nil).Once()
	repo.On("SaveQRCode", 42, mock.Anything).Return(nil).Once()

	qr, err := svc.GetQRCode(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, qr)
}
