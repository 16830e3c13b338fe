// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

const (
	cardKeyPrefix = "storefront:card:"

	// cardTombstone marks a deleted card. Card ids are never reused, so a
	// tombstone only has to outlive reads that started before the delete.
	cardTombstone = "deleted"
)

// cardCache is a read-through Redis cache in front of a card repository.
// Single cards are cached on read. A delete replaces the entry with a
// tombstone, and reads only populate keys that do not exist yet, so a read
// racing a delete cannot bring the card back. Cache failures are logged and
// never fail the request; the repository stays the source of truth.
type cardCache struct {
	ResourceRepository[models.Card]
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to the Redis server described by cfg and pings it.
func NewRedisClient(ctx context.Context, cfg config.Cache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// NewCardCache wraps repository with a Redis cache whose entries expire
// after ttl.
func NewCardCache(repository ResourceRepository[models.Card], client *redis.Client, ttl time.Duration) ResourceRepository[models.Card] {
	return &cardCache{
		ResourceRepository: repository,
		client:             client,
		ttl:                ttl,
	}
}

func (c *cardCache) GetByID(ctx context.Context, id string) (models.Card, error) {
	log := logger.FromContext(ctx)
	key := cardKeyPrefix + id

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == cardTombstone {
			return models.Card{}, ErrNotFound
		}
		var card models.Card
		if jsonErr := json.Unmarshal(data, &card); jsonErr == nil {
			return card, nil
		}
		log.Warn().Str("func", "cardCache.GetByID").Str("key", key).Msg("dropping malformed cache entry")
		if delErr := c.client.Del(ctx, key).Err(); delErr != nil {
			log.Err(delErr).Str("func", "cardCache.GetByID").Str("key", key).Msg("failed to delete value from redis")
		}
	case !errors.Is(err, redis.Nil):
		log.Err(err).Str("func", "cardCache.GetByID").Str("key", key).Msg("failed to get value from redis")
	}

	card, err := c.ResourceRepository.GetByID(ctx, id)
	if err != nil {
		return models.Card{}, err
	}

	data, err = json.Marshal(card)
	if err == nil {
		err = c.client.SetNX(ctx, key, data, c.ttl).Err()
	}
	if err != nil {
		log.Err(err).Str("func", "cardCache.GetByID").Str("key", key).Msg("failed to set value in redis")
	}

	return card, nil
}

func (c *cardCache) DeleteByID(ctx context.Context, id string) error {
	if err := c.ResourceRepository.DeleteByID(ctx, id); err != nil {
		return err
	}

	key := cardKeyPrefix + id
	if err := c.client.Set(ctx, key, cardTombstone, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "cardCache.DeleteByID").
			Str("key", key).
			Msg("failed to write tombstone to redis")
	}

	return nil
}
