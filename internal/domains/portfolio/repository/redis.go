package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"portfolio-backend/internal/domains/portfolio"
)

const registryKeyPrefix = "portfolio:registry:"

// RedisRegistry stores registry entries as JSON values in redis so several
// API instances can share one registry.
type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client}
}

func (r *RedisRegistry) Put(ctx context.Context, entry *portfolio.RegistryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal registry entry: %w", err)
	}
	if err := r.client.Set(ctx, registryKeyPrefix+entry.PortfolioID, data, 0).Err(); err != nil {
		return fmt.Errorf("store registry entry: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Get(ctx context.Context, portfolioID string) (*portfolio.RegistryEntry, error) {
	data, err := r.client.Get(ctx, registryKeyPrefix+portfolioID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, portfolio.ErrPortfolioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load registry entry: %w", err)
	}
	var entry portfolio.RegistryEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode registry entry: %w", err)
	}
	return &entry, nil
}
