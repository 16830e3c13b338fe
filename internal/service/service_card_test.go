// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

// pngHeader is the 8-byte PNG signature followed by an IHDR chunk start,
// enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newTestCardSvc(t *testing.T) (CardService, *mock.MockResourceRepository[models.Card]) {
	t.Helper()
	repo := mock.NewMockResourceRepository[models.Card](gomock.NewController(t))
	return NewCardService(repo, logger.Nop()), repo
}

func TestCardService_AddCard_EncodesImage(t *testing.T) {
	svc, repo := newTestCardSvc(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Card) (models.Card, error) {
			c.ID = "card-1"
			return c, nil
		},
	)

	card, err := svc.AddCard(context.Background(), models.CardUpload{
		Name:        "Mug",
		Description: "A mug",
		Price:       9.5,
		Quantity:    3,
		Image:       pngHeader,
		ImageType:   "image/png",
	})
	require.NoError(t, err)

	assert.Equal(t, "card-1", card.ID)
	assert.Equal(t, 9.5, card.Price)
	assert.Equal(t, 3, card.Quantity)

	mediaType, data, err := DecodeDataURI(card.Image)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, pngHeader, data)
}

func TestCardService_AddCard_StoreError(t *testing.T) {
	svc, repo := newTestCardSvc(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Card{}, store.ErrExecutingStatement)

	_, err := svc.AddCard(context.Background(), models.CardUpload{Name: "n", Image: []byte("x")})
	require.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestCardService_DeleteThenGet(t *testing.T) {
	svc, repo := newTestCardSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().DeleteByID(ctx, "card-1").Return(nil),
		repo.EXPECT().GetByID(ctx, "card-1").Return(models.Card{}, store.ErrNotFound),
	)

	res, err := svc.DeleteCard(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, models.DeleteResult{ID: "card-1", Deleted: true}, res)

	_, err = svc.GetCard(ctx, "card-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCardService_DeleteCard_NotFound(t *testing.T) {
	svc, repo := newTestCardSvc(t)

	repo.EXPECT().DeleteByID(gomock.Any(), "missing").Return(store.ErrNotFound)

	res, err := svc.DeleteCard(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.False(t, res.Deleted)
}

func TestCardService_ListCards(t *testing.T) {
	svc, repo := newTestCardSvc(t)

	cards := []models.Card{{ID: "1"}, {ID: "2"}}
	repo.EXPECT().List(gomock.Any()).Return(cards, nil)

	got, err := svc.ListCards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cards, got)
}
