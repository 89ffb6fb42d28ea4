package service

import (
	"context"

	"botfactory-miniapp/notifier-svc/internal/domain"
	"botfactory-miniapp/notifier-svc/internal/storage"
)

type TargetStore interface {
	NotifyTarget(botID int) (*domain.NotifyTarget, error)
}

type MessageSender interface {
	Send(token, chatID, text string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(evt domain.OrderEvent)
}

var _ TargetStore = (*storage.Store)(nil)
