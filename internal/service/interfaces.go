package service

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages user accounts: signup, login and password changes,
// plus read access to the account list.
type AuthService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)

	// Signup hashes the password and creates the account.
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Login returns the account whose credential matches the password.
	// It fails with store.ErrNotFound for an unknown username and
	// ErrWrongPassword for a mismatch.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// ChangePassword replaces the credential after verifying the current
	// password.
	ChangePassword(ctx context.Context, request models.ChangePasswordRequest) (models.UpdateResult, error)
}

// CardService manages the catalog.
type CardService interface {
	// AddCard stores a new card with the upload's image encoded as a data URI.
	AddCard(ctx context.Context, upload models.CardUpload) (models.Card, error)
	ListCards(ctx context.Context) ([]models.Card, error)
	GetCard(ctx context.Context, id string) (models.Card, error)
	DeleteCard(ctx context.Context, id string) (models.DeleteResult, error)
}

// OrderService records purchases.
type OrderService interface {
	// AddOrder stamps the order with the current date and time and stores it.
	AddOrder(ctx context.Context, order models.Order) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
}

// AppInfoService serves static application information.
type AppInfoService interface {
	Greeting(ctx context.Context) string
}
