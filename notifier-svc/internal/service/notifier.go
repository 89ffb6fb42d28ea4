package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"botfactory-miniapp/notifier-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TelegramSender delivers owner notifications through the Telegram Bot API.
type TelegramSender struct {
	Client  HTTPClient
	BaseURL string
}

func NewTelegramSender(client HTTPClient) *TelegramSender {
	return &TelegramSender{
		Client:  client,
		BaseURL: "https://api.telegram.org",
	}
}

func (s *TelegramSender) Send(token, chatID, text string) error {
	payload, _ := json.Marshal(map[string]string{
		"chat_id": chatID,
		"text":    text,
	})

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.BaseURL, token)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API responded with status %d", resp.StatusCode)
	}
	return nil
}

var _ MessageSender = (*TelegramSender)(nil)

// FormatOrderMessage renders the plain-text notification shown to the
// bot owner, one line per ordered item.
func FormatOrderMessage(evt domain.OrderEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order #%d\n\n", evt.OrderID)
	fmt.Fprintf(&b, "Customer: %s\n", evt.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", evt.CustomerPhone)

	address := evt.CustomerAddress
	if address == "" {
		address = "-"
	}
	fmt.Fprintf(&b, "Address: %s\n\n", address)

	b.WriteString("Items:\n")
	for _, item := range evt.Items {
		fmt.Fprintf(&b, "- %s x%d - %.0f\n", item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(&b, "\nTotal: %.0f\n", evt.Total)

	note := evt.Note
	if note == "" {
		note = "-"
	}
	fmt.Fprintf(&b, "Note: %s", note)

	return b.String()
}
