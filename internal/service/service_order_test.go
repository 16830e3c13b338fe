package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

func newTestOrderSvc(t *testing.T, now time.Time) (*orderService, *mock.MockResourceRepository[models.Order]) {
	t.Helper()
	repo := mock.NewMockResourceRepository[models.Order](gomock.NewController(t))

	svc := NewOrderService(repo, config.App{
		OrderDateLayout: "1/2/2006",
		OrderTimeLayout: "3:04:05 PM",
	}, logger.Nop()).(*orderService)
	svc.now = func() time.Time { return now }

	return svc, repo
}

func TestOrderService_AddOrder_StampsDateAndTime(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 4, 5, 0, time.Local)
	svc, repo := newTestOrderSvc(t, now)

	order := models.Order{
		ID:       "client-supplied",
		User:     "u1",
		Card:     "c1",
		Quantity: 2,
		Address:  "1 Main St",
		Total:    19,
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o models.Order) (models.Order, error) {
			assert.Empty(t, o.ID, "ids are assigned by the store")
			o.ID = "order-1"
			return o, nil
		},
	)

	created, err := svc.AddOrder(context.Background(), order)
	require.NoError(t, err)

	assert.Equal(t, "order-1", created.ID)
	assert.Equal(t, "10/19/2026", created.Date)
	assert.Equal(t, "3:04:05 PM", created.Time)
	assert.Equal(t, "u1", created.User)
	assert.Equal(t, "c1", created.Card)
	assert.Equal(t, 2, created.Quantity)
	assert.Equal(t, 19.0, created.Total)
}

func TestOrderService_AddOrder_StoreError(t *testing.T) {
	svc, repo := newTestOrderSvc(t, time.Now())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Order{}, store.ErrExecutingStatement)

	_, err := svc.AddOrder(context.Background(), models.Order{User: "u", Card: "c", Address: "a"})
	require.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestOrderService_ListAndGet(t *testing.T) {
	svc, repo := newTestOrderSvc(t, time.Now())
	ctx := context.Background()

	orders := []models.Order{{ID: "o1"}, {ID: "o2"}}
	repo.EXPECT().List(ctx).Return(orders, nil)
	repo.EXPECT().GetByID(ctx, "o3").Return(models.Order{}, store.ErrNotFound)

	got, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders, got)

	_, err = svc.GetOrder(ctx, "o3")
	require.ErrorIs(t, err, store.ErrNotFound)
}
