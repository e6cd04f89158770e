package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/travelbook/config"
	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the unfiltered default-order resource lists. Filtered
// queries always go to the database; admin writes invalidate the list key.
type RedisCache struct {
	client  *redis.Client
	listTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, listTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		listTTL: listTTL,
	}
}

const (
	hotelsKey  = "cache:hotels"
	flightsKey = "cache:flights"
	taxisKey   = "cache:taxis"
)

func getList[T any](ctx context.Context, client *redis.Client, key string) ([]T, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *RedisCache) setList(ctx context.Context, key string, items any) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.listTTL).Err()
}

func (c *RedisCache) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	return getList[domain.Hotel](ctx, c.client, hotelsKey)
}

func (c *RedisCache) SetHotels(ctx context.Context, hotels []domain.Hotel) error {
	return c.setList(ctx, hotelsKey, hotels)
}

func (c *RedisCache) InvalidateHotels(ctx context.Context) error {
	return c.client.Del(ctx, hotelsKey).Err()
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	return getList[domain.Flight](ctx, c.client, flightsKey)
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	return c.setList(ctx, flightsKey, flights)
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey).Err()
}

func (c *RedisCache) GetTaxis(ctx context.Context) ([]domain.Taxi, error) {
	return getList[domain.Taxi](ctx, c.client, taxisKey)
}

func (c *RedisCache) SetTaxis(ctx context.Context, taxis []domain.Taxi) error {
	return c.setList(ctx, taxisKey, taxis)
}

func (c *RedisCache) InvalidateTaxis(ctx context.Context) error {
	return c.client.Del(ctx, taxisKey).Err()
}
