package service

import (
	"context"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
)

type appInfoService struct {
	greeting string

	logger *logger.Logger
}

// NewAppInfoService returns the service behind GET /.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Greeting == "" {
		return nil, ErrGreetingIsNotSpecified
	}

	return &appInfoService{
		greeting: cfg.Greeting,
		logger:   logger,
	}, nil
}

func (s *appInfoService) Greeting(ctx context.Context) string {
	return s.greeting
}
