package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
)

// AuthValidationService rejects incomplete account requests before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *AuthValidationService) GetUser(ctx context.Context, id string) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *AuthValidationService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Signup(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, request models.ChangePasswordRequest) (models.UpdateResult, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ChangePassword(ctx, request)
}

// CardValidationService rejects incomplete card uploads.
type CardValidationService struct {
	CardService
	validator validators.Validator
}

func NewCardValidationService(validator validators.Validator) CardServiceWrapper {
	return &CardValidationService{validator: validator}
}

func (v *CardValidationService) Wrap(inner CardService) CardService {
	v.CardService = inner
	return v
}

func (v *CardValidationService) AddCard(ctx context.Context, upload models.CardUpload) (models.Card, error) {
	if err := v.validator.Validate(ctx, upload); err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.CardService.AddCard(ctx, upload)
}

// OrderValidationService rejects orders without a user, card or address.
type OrderValidationService struct {
	OrderService
	validator validators.Validator
}

func NewOrderValidationService(validator validators.Validator) OrderServiceWrapper {
	return &OrderValidationService{validator: validator}
}

func (v *OrderValidationService) Wrap(inner OrderService) OrderService {
	v.OrderService = inner
	return v
}

func (v *OrderValidationService) AddOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if err := v.validator.Validate(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.OrderService.AddOrder(ctx, order)
}
