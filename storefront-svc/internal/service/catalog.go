package service

import (
	"context"
	"log"
	"strconv"
	"strings"

	"botfactory-miniapp/storefront-svc/internal/domain"
)

const placeholderImage = "/static/images/placeholder.png"

type CatalogService struct {
	repo  CatalogRepository
	cache CatalogCache
}

func NewCatalogService(repo CatalogRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// List returns the full catalog for a bot in knowledge-base order,
// cache-aside through Redis when a cache is configured.
func (s *CatalogService) List(ctx context.Context, botID int) ([]domain.CatalogItem, error) {
	if s.cache != nil {
		if items, err := s.cache.Get(ctx, botID); err == nil {
			return items, nil
		}
	}

	rows, err := s.repo.ListProductRows(botID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.CatalogItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ParseProductContent(row.Content, row.ID, row.SourceName))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, botID, items); err != nil {
			log.Printf("[storefront-svc] catalog cache set error: %v", err)
		}
	}
	return items, nil
}

func (s *CatalogService) Search(ctx context.Context, botID int, query string) ([]domain.CatalogItem, error) {
	items, err := s.List(ctx, botID)
	if err != nil {
		return nil, err
	}
	return FilterCatalog(items, query), nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

// ParseProductContent decodes one knowledge-base product entry. The
// content is a line-oriented format with Uzbek field labels:
//
//	Mahsulot: <name>
//	Narx: <price, digits extracted>
//	Tavsif: <description>
//	Rasm: <image URL>
//
// Missing fields fall back to the source name and a placeholder image.
func ParseProductContent(content string, productID int, sourceName string) domain.CatalogItem {
	item := domain.CatalogItem{
		ID:   productID,
		Name: sourceName,
	}
	if item.Name == "" {
		item.Name = "Mahsulot"
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Mahsulot:"):
			item.Name = strings.TrimSpace(strings.TrimPrefix(line, "Mahsulot:"))
		case strings.HasPrefix(line, "Narx:"):
			var digits strings.Builder
			for _, c := range strings.TrimPrefix(line, "Narx:") {
				if c >= '0' && c <= '9' {
					digits.WriteRune(c)
				}
			}
			if digits.Len() > 0 {
				price, _ := strconv.Atoi(digits.String())
				item.Price = float64(price)
			}
		case strings.HasPrefix(line, "Tavsif:"):
			item.Description = strings.TrimSpace(strings.TrimPrefix(line, "Tavsif:"))
		case strings.HasPrefix(line, "Rasm:"):
			item.Image = strings.TrimSpace(strings.TrimPrefix(line, "Rasm:"))
		}
	}

	if item.Image == "" {
		item.Image = placeholderImage
	}
	return item
}

// FilterCatalog returns the items whose name or description contains the
// query as a case-insensitive substring, preserving catalog order. A
// blank or whitespace-only query returns a copy of the full catalog.
func FilterCatalog(items []domain.CatalogItem, query string) []domain.CatalogItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]domain.CatalogItem, len(items))
		copy(out, items)
		return out
	}

	filtered := []domain.CatalogItem{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Description), query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
