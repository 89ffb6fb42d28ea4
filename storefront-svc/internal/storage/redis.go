package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"botfactory-miniapp/storefront-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("catalog not in cache")

// CatalogCache keeps the assembled per-bot catalog in Redis so repeated
// mini-app loads skip the knowledge-base parse.
type CatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{Client: client, TTL: ttl}
}

func (c *CatalogCache) Key(botID int) string {
	return "catalog:" + strconv.Itoa(botID)
}

func (c *CatalogCache) Get(ctx context.Context, botID int) ([]domain.CatalogItem, error) {
	payload, err := c.Client.Get(ctx, c.Key(botID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var items []domain.CatalogItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *CatalogCache) Set(ctx context.Context, botID int, items []domain.CatalogItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.Key(botID), payload, c.TTL).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context, botID int) error {
	return c.Client.Del(ctx, c.Key(botID)).Err()
}
