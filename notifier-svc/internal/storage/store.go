package storage

import (
	"database/sql"
	"errors"
	"os"

	"botfactory-miniapp/notifier-svc/internal/domain"
)

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// NotifyTarget resolves the bot token and the owner's Telegram chat ID
// for a bot. When the owner has no chat ID on file, ADMIN_TELEGRAM_ID is
// used as a fallback. A bot without a token yields a nil target.
func (s *Store) NotifyTarget(botID int) (*domain.NotifyTarget, error) {
	var token, chatID string
	err := s.DB.QueryRow(`
		SELECT COALESCE(telegram_token, ''), COALESCE(owner_telegram_id, '')
		FROM bot
		WHERE id = $1`, botID).Scan(&token, &chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if token == "" {
		return nil, nil
	}
	if chatID == "" {
		chatID = os.Getenv("ADMIN_TELEGRAM_ID")
	}

	return &domain.NotifyTarget{BotToken: token, ChatID: chatID}, nil
}
