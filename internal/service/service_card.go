package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

type cardService struct {
	cards  store.ResourceRepository[models.Card]
	logger *logger.Logger
}

// NewCardService constructs a CardService over the card repository.
func NewCardService(cards store.ResourceRepository[models.Card], logger *logger.Logger) CardService {
	return &cardService{
		cards:  cards,
		logger: logger,
	}
}

func (s *cardService) AddCard(ctx context.Context, upload models.CardUpload) (models.Card, error) {
	log := logger.FromContext(ctx)

	card, err := s.cards.Create(ctx, models.Card{
		Name:        upload.Name,
		Description: upload.Description,
		Image:       EncodeDataURI(upload.ImageType, upload.Image),
		Price:       upload.Price,
		Quantity:    upload.Quantity,
	})
	if err != nil {
		log.Err(err).Str("name", upload.Name).Msg("card creation ended with error")
		return models.Card{}, fmt.Errorf("card creation ended with error: %w", err)
	}

	log.Info().Str("card_id", card.ID).Int("image_size", len(upload.Image)).Msg("card added")
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context) ([]models.Card, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cards failed: %w", err)
	}

	return cards, nil
}

func (s *cardService) GetCard(ctx context.Context, id string) (models.Card, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return models.Card{}, fmt.Errorf("card search by id failed: %w", err)
	}

	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, id string) (models.DeleteResult, error) {
	if err := s.cards.DeleteByID(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("card_id", id).Msg("card deletion failed")
		return models.DeleteResult{}, fmt.Errorf("card deletion failed: %w", err)
	}

	return models.DeleteResult{ID: id, Deleted: true}, nil
}
