package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "storefront.db"),
	}
	db, err := NewDB(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	return NewStorages(db, nil, config.Cache{}, logger.Nop())
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	ann, err := s.UserRepository.CreateUser(ctx, models.User{
		Name: "Ann", Username: "ann", Email: "ann@x", Password: "c1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ann.ID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Name: "Ann 2", Username: "ann", Password: "c2"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	byName, err := s.UserRepository.GetUserByUsername(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, byName.ID)
	assert.True(t, ann.CreatedAt.Equal(byName.CreatedAt))

	require.ErrorIs(t, s.UserRepository.SwapCredential(ctx, ann.ID, "stale", "c3"), ErrCredentialConflict)
	require.NoError(t, s.UserRepository.SwapCredential(ctx, ann.ID, "c1", "c3"))

	stored, err := s.UserRepository.GetUserByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "c3", stored.Password)

	require.NoError(t, s.UserRepository.UpdateCredential(ctx, ann.ID, "c4"))
	stored, err = s.UserRepository.GetUserByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "c4", stored.Password)

	users, err := s.UserRepository.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSQLite_MissingUser(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.UserRepository.GetUserByID(ctx, testID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.UserRepository.GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.UserRepository.UpdateCredential(ctx, testID, "x"), ErrNotFound)
	require.ErrorIs(t, s.UserRepository.SwapCredential(ctx, testID, "x", "y"), ErrNotFound)
}

func TestSQLite_CardDeleteThenGet(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	card, err := s.CardRepository.Create(ctx, models.Card{
		Name: "Mug", Description: "Blue", Image: "data:image/png;base64,AA==", Price: 9.5, Quantity: 3,
	})
	require.NoError(t, err)

	got, err := s.CardRepository.GetByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.Image, got.Image)
	assert.InDelta(t, 9.5, got.Price, 1e-9)

	require.NoError(t, s.CardRepository.DeleteByID(ctx, card.ID))
	_, err = s.CardRepository.GetByID(ctx, card.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.CardRepository.DeleteByID(ctx, card.ID), ErrNotFound)
}

func TestSQLite_Orders(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	order, err := s.OrderRepository.Create(ctx, models.Order{
		User: "any-user", Card: "any-card", Quantity: 1, Address: "Main St 1", Total: 9.5,
		Date: "10/19/2026", Time: "3:04:05 PM",
	})
	require.NoError(t, err)

	orders, err := s.OrderRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, "any-user", orders[0].User)
	assert.Equal(t, "3:04:05 PM", orders[0].Time)
}
