package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

type orderService struct {
	orders store.ResourceRepository[models.Order]

	// dateLayout and timeLayout format the human-readable stamps of new
	// orders, in the server's local time zone.
	dateLayout string
	timeLayout string
	now        Clock

	logger *logger.Logger
}

// NewOrderService constructs an OrderService stamping orders with the
// layouts from cfg.
func NewOrderService(orders store.ResourceRepository[models.Order], cfg config.App, logger *logger.Logger) OrderService {
	return &orderService{
		orders:     orders,
		dateLayout: cfg.OrderDateLayout,
		timeLayout: cfg.OrderTimeLayout,
		now:        time.Now,
		logger:     logger,
	}
}

// AddOrder stores order. User and card identifiers are copied as given.
func (s *orderService) AddOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	order.ID = ""
	order.Date = now.Format(s.dateLayout)
	order.Time = now.Format(s.timeLayout)

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		log.Err(err).Str("user", order.User).Str("card", order.Card).Msg("order creation ended with error")
		return models.Order{}, fmt.Errorf("order creation ended with error: %w", err)
	}

	log.Info().Str("order_id", created.ID).Msg("order placed")
	return created, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders failed: %w", err)
	}

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("order search by id failed: %w", err)
	}

	return order, nil
}
