package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"botfactory-miniapp/storefront-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) GetBot(id int) (*domain.Bot, error) {
	var bot domain.Bot
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), COALESCE(business_description, ''),
		       COALESCE(business_logo, ''), COALESCE(business_type, 'product'),
		       COALESCE(working_hours, ''), COALESCE(owner_name, ''),
		       COALESCE(owner_phone, ''), COALESCE(owner_telegram_id, ''),
		       COALESCE(telegram_token, '')
		FROM bot
		WHERE id = $1`, id).
		Scan(&bot.ID, &bot.Name, &bot.Description, &bot.BusinessDescription,
			&bot.BusinessLogo, &bot.BusinessType, &bot.WorkingHours, &bot.OwnerName,
			&bot.OwnerPhone, &bot.OwnerTelegramID, &bot.TelegramToken)
	if err != nil {
		return nil, err
	}
	return &bot, nil
}

func (r *PostgresRepository) ListProductRows(botID int) ([]domain.ProductRow, error) {
	rows, err := r.DB.Query(`
		SELECT id, COALESCE(source_name, ''), content
		FROM knowledge_base
		WHERE bot_id = $1 AND content_type = 'product'
		ORDER BY id`, botID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.ProductRow
	for rows.Next() {
		var row domain.ProductRow
		if err := rows.Scan(&row.ID, &row.SourceName, &row.Content); err != nil {
			continue
		}
		products = append(products, row)
	}
	return products, nil
}

// CreateOrder persists the order header and its item snapshot in one
// transaction. Items are stored denormalized as JSON, matching the
// mini_app_order schema.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO mini_app_order
			(bot_id, customer_name, customer_phone, customer_address, note,
			 items, total_amount, telegram_user_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending')
		RETURNING id, created_at
	`, order.BotID, order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.Note, items, order.Total, order.TelegramUserID).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	order.Status = "pending"
	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE mini_app_order SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM mini_app_order WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS mini_app_order (
			id SERIAL PRIMARY KEY,
			bot_id INTEGER NOT NULL REFERENCES bot(id),
			customer_name VARCHAR(200) NOT NULL,
			customer_phone VARCHAR(50) NOT NULL,
			customer_address VARCHAR(500),
			note TEXT,
			items TEXT NOT NULL,
			total_amount FLOAT DEFAULT 0,
			telegram_user_id VARCHAR(50),
			status VARCHAR(20) DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		"ALTER TABLE IF EXISTS mini_app_order ADD COLUMN IF NOT EXISTS qr_code BYTEA",
		"ALTER TABLE IF EXISTS bot ADD COLUMN IF NOT EXISTS working_hours VARCHAR(100)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
