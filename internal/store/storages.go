package store

import (
	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

// Storages groups the repositories injected into the service layer.
type Storages struct {
	UserRepository  UserRepository
	CardRepository  ResourceRepository[models.Card]
	OrderRepository ResourceRepository[models.Order]
}

// NewStorages builds every repository over db. When cache is non-nil the
// card repository is wrapped with the Redis card cache.
func NewStorages(db *DB, cache *redis.Client, cfg config.Cache, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	cards := NewCardRepository(db, ids, log)
	if cache != nil {
		log.Info().Dur("ttl", cfg.TTL).Msg("card cache enabled")
		cards = NewCardCache(cards, cache, cfg.TTL)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, ids, log),
		CardRepository:  cards,
		OrderRepository: NewOrderRepository(db, ids, log),
	}
}
