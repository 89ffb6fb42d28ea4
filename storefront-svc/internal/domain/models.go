package domain

import "time"

// Bot is the raw storefront configuration row for a single business bot.
type Bot struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	BusinessDescription string `json:"business_description"`
	BusinessLogo        string `json:"business_logo"`
	BusinessType        string `json:"business_type"`
	WorkingHours        string `json:"working_hours"`
	OwnerName           string `json:"owner_name"`
	OwnerPhone          string `json:"owner_phone"`
	OwnerTelegramID     string `json:"owner_telegram_id"`
	TelegramToken       string `json:"-"`
}

// Business is the public view of a bot served to the mini app.
type Business struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Logo         string `json:"logo"`
	BusinessType string `json:"business_type"`
	OwnerName    string `json:"owner_name"`
}

type ContactInfo struct {
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours"`
	Telegram     string `json:"telegram"`
}

type CatalogItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// ProductRow is an unparsed knowledge-base product entry.
type ProductRow struct {
	ID         int
	SourceName string
	Content    string
}

type CartEntry struct {
	Item     CatalogItem `json:"item"`
	Quantity int         `json:"quantity"`
}

type CartSummary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type Order struct {
	ID              int         `json:"id"`
	BotID           int         `json:"bot_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Note            string      `json:"note"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	TelegramUserID  string      `json:"telegram_user_id"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

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
