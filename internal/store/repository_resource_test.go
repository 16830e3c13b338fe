// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

var cardColumns = []string{"id", "name", "description", "image", "price", "quantity", "created_at"}

func newTestCardRepo(t *testing.T, driver string) (*resourceRepository[models.Card], sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, driver)
	return NewCardRepository(db, staticIDs(testID), logger.Nop()).(*resourceRepository[models.Card]), mock
}

func TestResourceCreate_SQLitePlaceholders(t *testing.T) {
	repo, mock := newTestCardRepo(t, config.DriverSQLite)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO cards (id,name,description,image,price,quantity,created_at) VALUES (?,?,?,?,?,?,?)",
	)).
		WithArgs(testID, "Mug", "Blue", "data:image/png;base64,AA==", 9.5, 3, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	card, err := repo.Create(context.Background(), models.Card{
		Name: "Mug", Description: "Blue", Image: "data:image/png;base64,AA==", Price: 9.5, Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, testID, card.ID)
	assert.Equal(t, now, card.CreatedAt)
}

func TestResourceCreate_Duplicate(t *testing.T) {
	repo, mock := newTestCardRepo(t, config.DriverSQLite)

	mock.ExpectExec("INSERT INTO cards").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey})

	_, err := repo.Create(context.Background(), models.Card{Name: "Mug"})
	require.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestResourceList_Cards(t *testing.T) {
	repo, mock := newTestCardRepo(t, config.DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, description, image, price, quantity, created_at FROM cards ORDER BY created_at, id",
	)).
		WillReturnRows(sqlmock.NewRows(cardColumns).
			AddRow("a", "Mug", "Blue", "data:,", 9.5, 3, time.Now()).
			AddRow("b", "Cup", "Red", "data:,", 4.0, 1, time.Now()))

	cards, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Mug", cards[0].Name)
	assert.Equal(t, 1, cards[1].Quantity)
}

func TestResourceList_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newTestCardRepo(t, config.DriverPostgres)
		mock.ExpectQuery("SELECT (.+) FROM cards").WillReturnError(errors.New("timeout"))

		_, err := repo.List(context.Background())
		require.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		repo, mock := newTestCardRepo(t, config.DriverPostgres)
		mock.ExpectQuery("SELECT (.+) FROM cards").
			WillReturnRows(sqlmock.NewRows(cardColumns).
				AddRow("a", "Mug", "Blue", "data:,", "not a number", 3, time.Now()))

		_, err := repo.List(context.Background())
		require.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration", func(t *testing.T) {
		repo, mock := newTestCardRepo(t, config.DriverPostgres)
		mock.ExpectQuery("SELECT (.+) FROM cards").
			WillReturnRows(sqlmock.NewRows(cardColumns).
				AddRow("a", "Mug", "Blue", "data:,", 9.5, 3, time.Now()).
				RowError(0, errors.New("connection lost")))

		_, err := repo.List(context.Background())
		require.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestResourceDeleteByID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			id:   testID,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cards WHERE id = $1")).
					WithArgs(testID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "nothing deleted",
			id:   testID,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM cards").
					WithArgs(testID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
		{
			name:    "invalid id",
			id:      "123",
			setup:   func(sqlmock.Sqlmock) {},
			wantErr: ErrNotFound,
		},
		{
			name: "exec error",
			id:   testID,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM cards").
					WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCardRepo(t, config.DriverPostgres)
			tt.setup(mock)

			err := repo.DeleteByID(context.Background(), tt.id)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderRepository_Create(t *testing.T) {
	db, mock := newMockDB(t, config.DriverPostgres)
	repo := NewOrderRepository(db, staticIDs(testID), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO orders (id,user_id,card_id,quantity,address,total,order_date,order_time,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)",
	)).
		WithArgs(testID, "u1", "c1", 2, "Main St 1", 19.0, "10/19/2026", "3:04:05 PM", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	order, err := repo.Create(context.Background(), models.Order{
		User: "u1", Card: "c1", Quantity: 2, Address: "Main St 1", Total: 19,
		Date: "10/19/2026", Time: "3:04:05 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, testID, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
}
