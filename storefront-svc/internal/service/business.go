package service

import (
	"database/sql"
	"errors"

	"botfactory-miniapp/config"
	"botfactory-miniapp/storefront-svc/internal/domain"
)

var ErrBotNotFound = errors.New("bot not found")

const (
	defaultLogo    = "/static/images/default-logo.png"
	defaultAddress = "Ko'rsatilmagan"
	defaultHours   = "09:00 - 18:00"
)

type BusinessService struct {
	repo BotRepository
}

func NewBusinessService(repo BotRepository) *BusinessService {
	return &BusinessService{repo: repo}
}

func (s *BusinessService) Get(id int) (*domain.Business, error) {
	bot, err := s.repo.GetBot(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBotNotFound
	}
	if err != nil {
		return nil, err
	}

	description := bot.BusinessDescription
	if description == "" {
		description = bot.Description
	}
	logo := bot.BusinessLogo
	if logo == "" {
		logo = defaultLogo
	}
	businessType := bot.BusinessType
	if businessType == "" {
		businessType = "product"
	}

	return &domain.Business{
		ID:           bot.ID,
		Name:         bot.Name,
		Description:  description,
		Logo:         logo,
		BusinessType: businessType,
		OwnerName:    bot.OwnerName,
	}, nil
}

// Contact assembles contact details from the bot row with environment
// fallbacks for the shared support line.
func (s *BusinessService) Contact(id int) (*domain.ContactInfo, error) {
	bot, err := s.repo.GetBot(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBotNotFound
	}
	if err != nil {
		return nil, err
	}

	phone := config.GetEnv("SUPPORT_PHONE", "+998996448444")
	if bot.OwnerPhone != "" {
		phone = bot.OwnerPhone
	}
	hours := bot.WorkingHours
	if hours == "" {
		hours = defaultHours
	}

	return &domain.ContactInfo{
		Phone:        phone,
		Address:      defaultAddress,
		WorkingHours: hours,
		Telegram:     config.GetEnv("SUPPORT_TELEGRAM", "https://t.me/akramjon0011"),
	}, nil
}

var _ BusinessServiceInterface = (*BusinessService)(nil)
