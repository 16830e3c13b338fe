package service

import (
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/crypto"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/validators"
)

// Services groups the services injected into the handlers. Every service
// that accepts client payloads is wrapped with its validation decorator.
type Services struct {
	AuthService    AuthService
	CardService    CardService
	OrderService   OrderService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewStructValidator()
	codec := crypto.NewBcryptCodec(cfg.App.HashCost)

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, codec, logger)),
		CardService: NewCardValidationService(validator).
			Wrap(NewCardService(storages.CardRepository, logger)),
		OrderService: NewOrderValidationService(validator).
			Wrap(NewOrderService(storages.OrderRepository, cfg.App, logger)),
		AppInfoService: appInfoService,
	}, nil
}
