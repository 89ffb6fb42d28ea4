package domain

import "time"

type OrderEvent struct {
	Type            string      `json:"type"`
	OrderID         int         `json:"order_id"`
	BotID           int         `json:"bot_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Note            string      `json:"note"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Timestamp       time.Time   `json:"timestamp"`
}

type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// NotifyTarget is where a bot owner receives order notifications.
type NotifyTarget struct {
	BotToken string
	ChatID   string
}
