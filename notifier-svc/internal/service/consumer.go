package service

import (
	"context"
	"encoding/json"
	"log"

	"botfactory-miniapp/notifier-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  TargetStore
	Sender MessageSender
}

func NewConsumer(reader *kafka.Reader, store TargetStore, sender MessageSender) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Sender: sender,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Notifier Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if evt.Type == "new_order" {
			c.ProcessOrder(evt)
		}
	}
}

// ProcessOrder relays one order event to the owning bot's admin chat.
// Missing tokens or chat IDs skip the event; send failures are logged
// and never retried.
func (c *Consumer) ProcessOrder(evt domain.OrderEvent) {
	if evt.Type != "new_order" {
		return
	}
	log.Printf("Processing order: OrderID=%d, BotID=%d", evt.OrderID, evt.BotID)

	target, err := c.Store.NotifyTarget(evt.BotID)
	if err != nil {
		log.Printf("Error looking up notify target for bot %d: %v", evt.BotID, err)
		return
	}
	if target == nil || target.BotToken == "" || target.ChatID == "" {
		return
	}

	if err := c.Sender.Send(target.BotToken, target.ChatID, FormatOrderMessage(evt)); err != nil {
		log.Printf("Error sending notification for order %d: %v", evt.OrderID, err)
		return
	}

	log.Printf("Successfully notified owner about order %d", evt.OrderID)
}
